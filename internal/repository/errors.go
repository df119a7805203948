package repository

import (
	"errors"

	"codebook/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes recognised by classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify turns a driver error into an AppError. Errors that are already
// classified pass through unchanged.
func classify(err error, msgs failureMessages) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case msgs.conflict != "" && isUniqueViolation(err):
		return models.NewConflictError(msgs.conflict)
	case msgs.foreignKey != "" && isForeignKeyViolation(err):
		return models.NewValidationError(msgs.foreignKey)
	}

	internal := models.NewInternalError(err)
	if msgs.internal != "" {
		internal.Message = msgs.internal
	}
	return internal
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasPgCode(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasPgCode(err, pgForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
