package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/yourusername/shagird-api/internal/config"
	"github.com/yourusername/shagird-api/internal/domain/entity"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	"github.com/yourusername/shagird-api/internal/service/recommendation"
)

// DefaultSampleSize - сколько вопросов выдается за одну викторину
const DefaultSampleSize = 4

// QuizService предоставляет методы для выдачи вопросов
type QuizService struct {
	questionRepo repository.QuestionRepository
	sampleSize   int
	hideAnswers  bool
	shuffle      func(n int, swap func(i, j int))
}

// NewQuizService создает новый сервис викторин
func NewQuizService(questionRepo repository.QuestionRepository, cfg config.QuizConfig) *QuizService {
	sampleSize := cfg.SampleSize
	if sampleSize < 1 {
		sampleSize = DefaultSampleSize
	}
	return &QuizService{
		questionRepo: questionRepo,
		sampleSize:   sampleSize,
		hideAnswers:  cfg.HideAnswers,
		shuffle:      rand.Shuffle,
	}
}

// GetQuiz возвращает случайную выборку вопросов предмета без повторов.
// Если вопросов меньше размера выборки, возвращаются все в случайном порядке.
func (s *QuizService) GetQuiz(ctx context.Context, subject string) ([]entity.Question, error) {
	questions, err := s.questionRepo.ListBySubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for %q: %w", subject, err)
	}

	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	n := len(questions)
	if n > s.sampleSize {
		n = s.sampleSize
	}
	sample := make([]entity.Question, 0, n)
	for _, q := range questions[:n] {
		if s.hideAnswers {
			q = q.WithoutAnswer()
		}
		sample = append(sample, q)
	}
	return sample, nil
}

// Subjects возвращает предметы, для которых есть таблица рекомендаций
func (s *QuizService) Subjects() []string {
	return recommendation.Subjects()
}
