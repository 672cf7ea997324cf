package store

import (
	"context"
	"fmt"
	"time"

	"aethervault/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm stores everything in Postgres.
type Gorm struct {
	db *gorm.DB
}

// Open connects to dsn and migrates the schema.
func Open(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return NewGorm(db)
}

// NewGorm wraps an open connection and migrates the schema.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.AuditLog{}, &models.Algorithm{}, &models.Vector{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) RecordAudit(ctx context.Context, entry *models.AuditLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *Gorm) ListAudit(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	var logs []models.AuditLog
	err := g.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

// SeedAlgorithms upserts catalogue rows by slug.
func (g *Gorm) SeedAlgorithms(ctx context.Context, rows []models.Algorithm) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = uuid.NewString()
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "category", "description", "params", "traceable", "updated_at"}),
			}).Create(&rows[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Gorm) ListAlgorithms(ctx context.Context) ([]models.Algorithm, error) {
	var rows []models.Algorithm
	err := g.db.WithContext(ctx).Order("category, slug").Find(&rows).Error
	return rows, err
}

func (g *Gorm) SaveVectors(ctx context.Context, rows []models.Vector) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = uuid.NewString()
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Gorm) ListVectors(ctx context.Context, batchID string) ([]models.Vector, error) {
	var rows []models.Vector
	err := g.db.WithContext(ctx).Where("batch_id = ?", batchID).Order("direction desc, count").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
