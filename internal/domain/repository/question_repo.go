package repository

import (
	"context"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// ListBySubject возвращает все вопросы предмета (quizzes/{subject}/questions)
	ListBySubject(ctx context.Context, subject string) ([]entity.Question, error)
	// CreateBatch сохраняет пакет вопросов предмета. Используется только для наполнения хранилища.
	CreateBatch(ctx context.Context, subject string, questions []entity.Question) error
}
