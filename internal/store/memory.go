package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"aethervault/internal/models"

	"github.com/google/uuid"
)

// Memory keeps everything in process. It is safe for concurrent use.
type Memory struct {
	mu         sync.RWMutex
	nextLogID  int64
	logs       []models.AuditLog
	algorithms map[string]models.Algorithm
	vectors    []models.Vector
}

func NewMemory() *Memory {
	return &Memory{algorithms: make(map[string]models.Algorithm)}
}

func (m *Memory) RecordAudit(_ context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextLogID++
	entry.ID = m.nextLogID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.logs = append(m.logs, *entry)
	return nil
}

// ListAudit returns the newest entries first.
func (m *Memory) ListAudit(_ context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.AuditLog, 0, min(limit, len(m.logs)))
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.logs[i])
	}
	return out, nil
}

func (m *Memory) SeedAlgorithms(_ context.Context, rows []models.Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for _, row := range rows {
		if prev, ok := m.algorithms[row.Slug]; ok {
			row.ID = prev.ID
			row.CreatedAt = prev.CreatedAt
		}
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		row.UpdatedAt = now
		m.algorithms[row.Slug] = row
	}
	return nil
}

func (m *Memory) ListAlgorithms(_ context.Context) ([]models.Algorithm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Algorithm, 0, len(m.algorithms))
	for _, row := range m.algorithms {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (m *Memory) SaveVectors(_ context.Context, rows []models.Vector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		m.vectors = append(m.vectors, rows[i])
	}
	return nil
}

func (m *Memory) ListVectors(_ context.Context, batchID string) ([]models.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Vector
	for _, v := range m.vectors {
		if v.BatchID == batchID {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (m *Memory) Ping(context.Context) error { return nil }
