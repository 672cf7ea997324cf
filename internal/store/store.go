// Package store persists audit logs, the algorithm catalogue and generated vectors.
package store

import (
	"context"
	"errors"

	"aethervault/internal/models"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Store is implemented by the gorm-backed store and by the in-memory store used in tests
// and when no database is configured.
type Store interface {
	RecordAudit(ctx context.Context, entry *models.AuditLog) error
	ListAudit(ctx context.Context, limit int) ([]models.AuditLog, error)

	SeedAlgorithms(ctx context.Context, rows []models.Algorithm) error
	ListAlgorithms(ctx context.Context) ([]models.Algorithm, error)

	SaveVectors(ctx context.Context, rows []models.Vector) error
	ListVectors(ctx context.Context, batchID string) ([]models.Vector, error)

	Ping(ctx context.Context) error
}

// DefaultAuditLimit caps ListAudit when the caller passes zero or less.
const DefaultAuditLimit = 200
