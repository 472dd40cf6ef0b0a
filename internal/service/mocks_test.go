package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListBySubject(ctx context.Context, subject string) ([]entity.Question, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) CreateBatch(ctx context.Context, subject string, questions []entity.Question) error {
	args := m.Called(ctx, subject, questions)
	return args.Error(0)
}

// MockResultRepository реализует repository.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *entity.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) ListByUser(ctx context.Context, userID string) ([]entity.Result, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

// makeQuestions создает n вопросов предмета с ответом "A"
func makeQuestions(subject string, ids ...string) []entity.Question {
	questions := make([]entity.Question, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, entity.Question{
			ID:      id,
			Subject: subject,
			Fields:  entity.Document{"question": "Question " + id, "answer": "A"},
		})
	}
	return questions
}
