package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// ListBySubject возвращает все вопросы предмета
func (r *QuestionRepo) ListBySubject(ctx context.Context, subject string) ([]entity.Question, error) {
	questions := make([]entity.Question, 0)
	err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateBatch создает пакет вопросов. Существующий вопрос предмета с тем же ID перезаписывается.
func (r *QuestionRepo) CreateBatch(ctx context.Context, subject string, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	for i := range questions {
		questions[i].Subject = subject
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		if questions[i].Fields == nil {
			questions[i].Fields = entity.Document{}
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}, {Name: "subject"}},
			DoUpdates: clause.AssignmentColumns([]string{"fields"}),
		}).Create(&questions).Error
		if err != nil {
			return fmt.Errorf("failed to save questions for %s: %w", subject, err)
		}
		return nil
	})
}
