package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Pool hands out pinned connections from the shared GORM pool. Every data
// access operation acquires one connection for its lifetime and releases it
// on every exit path.
type Pool struct {
	db *gorm.DB
}

// Conn is one pinned pooled connection. DB is a GORM session bound to it, so
// every statement issued through DB runs on the same physical connection.
type Conn struct {
	DB   *gorm.DB
	raw  *sql.Conn
	once sync.Once
	err  error
}

// NewPool wraps an opened GORM handle.
func NewPool(db *gorm.DB) *Pool {
	return &Pool{db: db}
}

// DB returns the underlying handle for schema management and shutdown.
func (p *Pool) DB() *gorm.DB {
	return p.db
}

// Acquire blocks until a connection is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	sqlDB, err := p.db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql.DB: %w", err)
	}

	raw, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	session := p.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	session.Statement.ConnPool = raw

	return &Conn{DB: session, raw: raw}, nil
}

// Release returns the connection to the pool. It is safe to call more than once and on nil.
func (p *Pool) Release(c *Conn) error {
	if c == nil {
		return nil
	}
	c.once.Do(func() {
		c.err = c.raw.Close()
	})
	return c.err
}

// WithConn acquires a connection, runs fn on it and releases it afterwards,
// including when fn panics.
func (p *Pool) WithConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = p.Release(conn) }()

	return fn(conn.DB)
}

// HealthCheck acquires and releases one connection, pinging it in between.
func (p *Pool) HealthCheck(ctx context.Context) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = p.Release(conn) }()

	if err := conn.raw.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Stats reports the pool counters.
func (p *Pool) Stats() sql.DBStats {
	sqlDB, err := p.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// Close closes the pool.
func (p *Pool) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
