package database

import (
	"fmt"
	"strings"
	"testing"

	"codebook/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 4,
		DBSchemaMode:   SchemaModeAuto,
		Env:            "test",
	}
}

// newTestDB opens a named shared-cache in-memory SQLite database private to t.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := Open(sqlite.Open(dsn), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
