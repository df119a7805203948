// Package repository provides the data access operations. Every operation pins
// one pooled connection, runs its statements on it and releases it on every
// exit path, returning either a value or a classified *models.AppError.
package repository

import (
	"context"

	"codebook/internal/database"
	"codebook/internal/models"
	"codebook/internal/observability"

	"gorm.io/gorm"
)

// failureMessages are the client-facing messages an operation reports per failure class.
type failureMessages struct {
	internal   string
	conflict   string
	foreignKey string
}

// run executes fn on a pinned connection inside a span, records latency and
// classifies any failure with msgs.
func run(ctx context.Context, pool *database.Pool, op, table string, msgs failureMessages, fn func(tx *gorm.DB) error) (err error) {
	ctx, span := observability.StartQuerySpan(ctx, op, table)
	defer func() { observability.EndQuerySpan(span, err) }()
	defer observability.TrackQuery(op, table)()

	err = classify(pool.WithConn(ctx, fn), msgs)
	if err != nil {
		observability.DatabaseErrors.WithLabelValues(op, errorCode(err)).Inc()
	}
	return err
}

func errorCode(err error) string {
	for _, code := range []string{models.CodeValidation, models.CodeNotFound, models.CodeConflict} {
		if models.IsCode(err, code) {
			return code
		}
	}
	return models.CodeInternal
}

// nonNil keeps empty collections serialized as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
