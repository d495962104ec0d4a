package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoloc/internal/domain"
)

// ConsentRepository is append-only: consent records are never updated
// or deleted.
type ConsentRepository struct {
	db *gorm.DB
}

func NewConsentRepository(db *gorm.DB) *ConsentRepository {
	return &ConsentRepository{db: db}
}

type consentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	Type      string    `gorm:"column:type"`
	Version   string    `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (consentModel) TableName() string { return "consents" }

func (r *ConsentRepository) Create(ctx context.Context, c *domain.Consent) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	m := consentModel{
		ID:      c.ID,
		UserID:  c.UserID,
		Type:    string(c.Type),
		Version: c.Version,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *ConsentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Consent, error) {
	var rows []consentModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Consent, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Consent{
			ID:        m.ID,
			UserID:    m.UserID,
			Type:      domain.ConsentType(m.Type),
			Version:   m.Version,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
