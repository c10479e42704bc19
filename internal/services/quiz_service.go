package services

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"fyyurtrivia/internal/models/response_models"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/pkg/utils"
)

// AllCategories selects the quiz pool across every category.
const AllCategories uint = 0

type QuizServiceInterface interface {
	// NextQuestion returns a random question from the category that is not in
	// asked, or nil when the pool is exhausted.
	NextQuestion(ctx context.Context, categoryID uint, asked []uint) (*response_models.Question, error)
}

type QuizService struct {
	questionRepo repositories.QuestionRepository
	categoryRepo repositories.CategoryRepository
	pick         func(n int) int
	log          *zap.Logger
}

func NewQuizService(
	questionRepo repositories.QuestionRepository,
	categoryRepo repositories.CategoryRepository,
	log *zap.Logger,
) QuizServiceInterface {
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pick:         rand.Intn,
		log:          log,
	}
}

func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, asked []uint) (*response_models.Question, error) {
	if categoryID != AllCategories {
		category, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, storeError(s.log, "get category", err)
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
	}

	pool, err := s.questionRepo.ListIDs(ctx, categoryID)
	if err != nil {
		return nil, storeError(s.log, "list quiz pool", err)
	}

	seen := make(map[uint]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}
	remaining := make([]uint, 0, len(pool))
	for _, id := range pool {
		if _, ok := seen[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	question, err := s.questionRepo.GetByID(ctx, remaining[s.pick(len(remaining))])
	if err != nil {
		return nil, storeError(s.log, "get quiz question", err)
	}
	if question == nil {
		// Deleted between the pool read and this lookup.
		return nil, utils.ErrQuestionNotFound
	}

	resp := toQuestionResponse(*question)
	return &resp, nil
}
