package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id uint) (*db_models.Category, error)
	Create(ctx context.Context, category *db_models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns nil, nil when the category does not exist.
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
