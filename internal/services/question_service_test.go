package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/pkg/utils"
)

func triviaFixture(n int) (*fakeQuestionRepo, *fakeCategoryRepo) {
	categories := &fakeCategoryRepo{categories: []db_models.Category{{ID: 1, Name: "Science"}, {ID: 2, Name: "Art"}}}
	questions := make([]db_models.Question, 0, n)
	for i := 1; i <= n; i++ {
		category := uint(1)
		if i > 12 {
			category = 2
		}
		questions = append(questions, db_models.Question{
			ID:         uint(i),
			Question:   fmt.Sprintf("question %d", i),
			Answer:     "answer",
			CategoryID: category,
			Difficulty: 1,
		})
	}
	return newFakeQuestionRepo(questions...), categories
}

func TestListQuestions(t *testing.T) {
	questions, categories := triviaFixture(19)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	first, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.EqualValues(t, 19, first.TotalQuestions)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, first.Categories)

	second, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, second.Questions, 9)
	assert.EqualValues(t, 11, second.Questions[0].ID)

	_, err = svc.ListQuestions(context.Background(), 100)
	assert.ErrorIs(t, err, utils.ErrPageOutOfRange)
}

func TestListQuestionsStoreFailure(t *testing.T) {
	questions, categories := triviaFixture(3)
	questions.err = errStoreDown
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestQuestionsByCategory(t *testing.T) {
	questions, categories := triviaFixture(19)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	page, err := svc.QuestionsByCategory(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 12, page.TotalQuestions)
	assert.Equal(t, "Science", page.CurrentCategory)

	page, err = svc.QuestionsByCategory(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 2)

	_, err = svc.QuestionsByCategory(context.Background(), 1, 3)
	assert.ErrorIs(t, err, utils.ErrPageOutOfRange)

	_, err = svc.QuestionsByCategory(context.Background(), 42, 1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSearchQuestions(t *testing.T) {
	questions, categories := triviaFixture(19)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	found, err := svc.SearchQuestions(context.Background(), "QUESTION 1")
	require.NoError(t, err)
	// question 1 and 10..19
	assert.Len(t, found, 11)
}

func TestAddQuestion(t *testing.T) {
	questions, categories := triviaFixture(19)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	id, err := svc.AddQuestion(context.Background(), request_models.NewQuestion{
		Question:   "  Who painted the Mona Lisa? ",
		Answer:     "Leonardo",
		CategoryID: 2,
		Difficulty: 2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 20, id)

	stored, err := questions.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Who painted the Mona Lisa?", stored.Question)
}

func TestAddQuestionValidation(t *testing.T) {
	questions, categories := triviaFixture(1)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	invalid := []request_models.NewQuestion{
		{Answer: "a", CategoryID: 1, Difficulty: 1},
		{Question: "q", Answer: "   ", CategoryID: 1, Difficulty: 1},
		{Question: "q", Answer: "a", Difficulty: 1},
		{Question: "q", Answer: "a", CategoryID: 1},
	}
	for _, input := range invalid {
		_, err := svc.AddQuestion(context.Background(), input)
		assert.ErrorIs(t, err, utils.ErrValidation, "%+v", input)
	}
	assert.Len(t, questions.questions, 1)
}

func TestAddQuestionUnknownCategory(t *testing.T) {
	questions, categories := triviaFixture(1)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	_, err := svc.AddQuestion(context.Background(), request_models.NewQuestion{
		Question: "q", Answer: "a", CategoryID: 99, Difficulty: 1,
	})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	questions, categories := triviaFixture(3)
	svc := NewQuestionService(questions, categories, 10, zap.NewNop())

	require.NoError(t, svc.DeleteQuestion(context.Background(), 2))
	assert.Len(t, questions.questions, 2)

	err := svc.DeleteQuestion(context.Background(), 2)
	assert.ErrorIs(t, err, utils.ErrQuestionNotFound)
}

func TestStoreErrorMapsDuplicates(t *testing.T) {
	err := storeError(zap.NewNop(), "create venue", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, utils.ErrConflict)

	err = storeError(zap.NewNop(), "create venue", errStoreDown)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.NotErrorIs(t, err, utils.ErrConflict)
}

func TestListCategories(t *testing.T) {
	_, categories := triviaFixture(0)
	svc := NewCategoryService(categories, zap.NewNop())

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, got)

	categories.err = errStoreDown
	_, err = svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
