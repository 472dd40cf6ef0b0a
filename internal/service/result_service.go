package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/shagird-api/internal/domain/entity"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	"github.com/yourusername/shagird-api/internal/handler/dto"
	"github.com/yourusername/shagird-api/internal/service/recommendation"
)

// ResultService подсчитывает результаты, сохраняет их и отдает историю пользователя
type ResultService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	location     *time.Location
	logger       *zap.Logger
}

// NewResultService создает новый сервис результатов.
// location задает часовой пояс отображения времени в истории (nil - UTC).
func NewResultService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	location *time.Location,
	logger *zap.Logger,
) *ResultService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		location:     location,
		logger:       logger,
	}
}

// Submit оценивает ответы по ключу из хранилища, подбирает рекомендацию и сохраняет результат.
// Ответ клиенту полностью собирается до записи: после успешной записи ошибок уже не бывает.
func (s *ResultService) Submit(ctx context.Context, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Ключ ответов всегда берется из хранилища, ответам клиента не доверяем
	questions, err := s.questionRepo.ListBySubject(ctx, req.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer key for %q: %w", req.Subject, err)
	}
	key := entity.NewAnswerKey(questions)

	score, total := key.Score(req.AnswerStrings())
	rec := recommendation.Recommend(score, total, req.Subject)
	response := dto.NewSubmitResponse(req.UserID, req.Subject, score, total, rec)

	if err := s.resultRepo.Create(ctx, response.Record()); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	s.logger.Info("submission scored",
		zap.String("user_id", req.UserID),
		zap.String("subject", req.Subject),
		zap.Int("score", score),
		zap.Int("total", total),
		zap.String("level", rec.Level),
	)
	return response, nil
}

// GetProgress возвращает все результаты пользователя, новые первыми.
// Записи без времени идут в конце.
func (s *ResultService) GetProgress(ctx context.Context, userID string) ([]dto.ProgressEntry, error) {
	results, err := s.resultRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for %q: %w", userID, err)
	}

	SortNewestFirst(results)

	entries := make([]dto.ProgressEntry, 0, len(results))
	for i := range results {
		entries = append(entries, dto.NewProgressEntry(&results[i], s.location))
	}
	return entries, nil
}

// SortNewestFirst сортирует результаты по убыванию времени создания.
// Нулевое время считается минимальным, поэтому такие записи оказываются в конце.
func SortNewestFirst(results []entity.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
}
