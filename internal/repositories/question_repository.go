package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
)

type QuestionRepository interface {
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, offset, limit int) ([]db_models.Question, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]db_models.Question, error)
	ListIDs(ctx context.Context, categoryID uint) ([]uint, error)
	Search(ctx context.Context, term string) ([]db_models.Question, error)
	GetByID(ctx context.Context, id uint) (*db_models.Question, error)
	Create(ctx context.Context, question *db_models.Question) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Question{}).Count(&total).Error
	return total, err
}

func (r *questionRepository) ListPage(ctx context.Context, offset, limit int) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID uint) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListIDs returns the ids of every question in categoryID, or of all
// questions when categoryID is zero.
func (r *questionRepository) ListIDs(ctx context.Context, categoryID uint) ([]uint, error) {
	var ids []uint
	query := r.db.WithContext(ctx).Model(&db_models.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if err := query.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *questionRepository) Search(ctx context.Context, term string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, containsPattern(term)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID returns nil, nil when the question does not exist.
func (r *questionRepository) GetByID(ctx context.Context, id uint) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Create(ctx context.Context, question *db_models.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

// Delete reports whether a row was removed.
func (r *questionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&db_models.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere, with LIKE
// metacharacters in term taken literally. Callers fold case in SQL on both
// sides so the column and the pattern go through the same LOWER.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
