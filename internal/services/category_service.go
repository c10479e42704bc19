package services

import (
	"context"

	"go.uber.org/zap"

	"fyyurtrivia/internal/repositories"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) (map[uint]string, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, log: log}
}

// ListCategories returns category names keyed by id.
func (s *CategoryService) ListCategories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, storeError(s.log, "list categories", err)
	}

	byID := make(map[uint]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Name
	}
	return byID, nil
}
