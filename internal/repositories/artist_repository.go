package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fyyurtrivia/internal/models/db_models"
)

type ArtistRepository interface {
	List(ctx context.Context) ([]db_models.Artist, error)
	Summaries(ctx context.Context, filter SummaryFilter, now time.Time) ([]Summary, error)
	GetByIDWithShows(ctx context.Context, id uint) (*db_models.Artist, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Artist, error)
	Create(ctx context.Context, artist *db_models.Artist, genres []string) error
	Update(ctx context.Context, artist *db_models.Artist, genres []string) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) List(ctx context.Context) ([]db_models.Artist, error) {
	var artists []db_models.Artist
	if err := r.db.WithContext(ctx).Select("id", "name").Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Summaries(ctx context.Context, filter SummaryFilter, now time.Time) ([]Summary, error) {
	return listSummaries(r.db.WithContext(ctx), "artists", "artist_id", filter, now)
}

// GetByIDWithShows returns nil, nil when the artist does not exist.
func (r *artistRepository) GetByIDWithShows(ctx context.Context, id uint) (*db_models.Artist, error) {
	var artist db_models.Artist
	err := r.db.WithContext(ctx).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name") }).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("shows.start_time") }).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Artist{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *artistRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Artist, error) {
	var artists []db_models.Artist
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *db_models.Artist, genres []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolved, err := ResolveGenres(tx, genres)
		if err != nil {
			return err
		}
		artist.Genres = resolved
		return tx.Create(artist).Error
	})
}

func (r *artistRepository) Update(ctx context.Context, artist *db_models.Artist, genres []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(artist).Error; err != nil {
			return err
		}
		resolved, err := ResolveGenres(tx, genres)
		if err != nil {
			return err
		}
		return tx.Model(artist).Association("Genres").Replace(resolved)
	})
}
