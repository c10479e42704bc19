package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fyyurtrivia/internal/models/db_models"
)

type VenueRepository interface {
	Summaries(ctx context.Context, filter SummaryFilter, now time.Time) ([]Summary, error)
	GetByIDWithShows(ctx context.Context, id uint) (*db_models.Venue, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Venue, error)
	Create(ctx context.Context, venue *db_models.Venue, genres []string) error
	Update(ctx context.Context, venue *db_models.Venue, genres []string) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Summaries(ctx context.Context, filter SummaryFilter, now time.Time) ([]Summary, error) {
	return listSummaries(r.db.WithContext(ctx), "venues", "venue_id", filter, now)
}

// GetByIDWithShows returns nil, nil when the venue does not exist.
func (r *venueRepository) GetByIDWithShows(ctx context.Context, id uint) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name") }).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("shows.start_time") }).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Venue{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *venueRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *db_models.Venue, genres []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, err := ResolveGenres(tx, genres)
		if err != nil {
			return err
		}
		venue.Genres = resolved
		return tx.Create(venue).Error
	})
}

func (r *venueRepository) Update(ctx context.Context, venue *db_models.Venue, genres []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
			return err
		}
		resolved, err := ResolveGenres(tx, genres)
		if err != nil {
			return err
		}
		return tx.Model(venue).Association("Genres").Replace(resolved)
	})
}

// Delete removes the venue together with its shows and genre links.
func (r *venueRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&db_models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&db_models.Venue{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&db_models.Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
