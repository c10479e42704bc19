package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
)

type ShowRepository interface {
	ListUpcoming(ctx context.Context, now time.Time) ([]db_models.Show, error)
	Create(ctx context.Context, show *db_models.Show) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) ListUpcoming(ctx context.Context, now time.Time) ([]db_models.Show, error) {
	var shows []db_models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Where("start_time >= ?", now).
		Order("start_time, id").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) Create(ctx context.Context, show *db_models.Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Artist", "Venue").Create(show).Error
	})
}
