package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/models/response_models"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/pkg/utils"
)

type QuestionServiceInterface interface {
	ListQuestions(ctx context.Context, page int) (response_models.QuestionPage, error)
	QuestionsByCategory(ctx context.Context, categoryID uint, page int) (response_models.CategoryQuestions, error)
	SearchQuestions(ctx context.Context, term string) ([]response_models.Question, error)
	AddQuestion(ctx context.Context, input request_models.NewQuestion) (uint, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type QuestionService struct {
	questionRepo repositories.QuestionRepository
	categoryRepo repositories.CategoryRepository
	pageSize     int
	log          *zap.Logger
}

func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	categoryRepo repositories.CategoryRepository,
	pageSize int,
	log *zap.Logger,
) QuestionServiceInterface {
	if pageSize <= 0 {
		pageSize = utils.DefaultPageSize
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     pageSize,
		log:          log,
	}
}

func (s *QuestionService) ListQuestions(ctx context.Context, page int) (response_models.QuestionPage, error) {
	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return response_models.QuestionPage{}, storeError(s.log, "count questions", err)
	}

	offset, err := utils.PageOffset(int(total), page, s.pageSize)
	if err != nil {
		return response_models.QuestionPage{}, err
	}

	questions, err := s.questionRepo.ListPage(ctx, offset, s.pageSize)
	if err != nil {
		return response_models.QuestionPage{}, storeError(s.log, "list questions", err)
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return response_models.QuestionPage{}, storeError(s.log, "list categories", err)
	}
	byID := make(map[uint]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Name
	}

	return response_models.QuestionPage{
		Questions:      toQuestionResponses(questions),
		TotalQuestions: total,
		Categories:     byID,
	}, nil
}

func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID uint, page int) (response_models.CategoryQuestions, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return response_models.CategoryQuestions{}, storeError(s.log, "get category", err)
	}
	if category == nil {
		return response_models.CategoryQuestions{}, utils.ErrCategoryNotFound
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return response_models.CategoryQuestions{}, storeError(s.log, "list category questions", err)
	}

	pageItems, err := utils.Paginate(questions, page, s.pageSize)
	if err != nil {
		return response_models.CategoryQuestions{}, err
	}

	return response_models.CategoryQuestions{
		Questions:       toQuestionResponses(pageItems),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Name,
	}, nil
}

func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]response_models.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, storeError(s.log, "search questions", err)
	}
	return toQuestionResponses(questions), nil
}

func (s *QuestionService) AddQuestion(ctx context.Context, input request_models.NewQuestion) (uint, error) {
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if err := validateInput(input); err != nil {
		return 0, err
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return 0, storeError(s.log, "get category", err)
	}
	if category == nil {
		return 0, utils.ErrCategoryNotFound
	}

	question := &db_models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		CategoryID: input.CategoryID,
		Difficulty: input.Difficulty,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return 0, storeError(s.log, "create question", err)
	}
	return question.ID, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	deleted, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return storeError(s.log, "delete question", err)
	}
	if !deleted {
		return utils.ErrQuestionNotFound
	}
	return nil
}

func toQuestionResponse(q db_models.Question) response_models.Question {
	return response_models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func toQuestionResponses(questions []db_models.Question) []response_models.Question {
	out := make([]response_models.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionResponse(q))
	}
	return out
}
