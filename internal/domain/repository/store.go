package repository

import (
	"context"

	"github.com/yourusername/shagird-api/internal/domain/entity"
	apperrors "github.com/yourusername/shagird-api/internal/pkg/errors"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store объединяет все возможности хранилища, которые использует сервис
type Store interface {
	QuestionRepository
	ResultRepository
	Pinger
	Close() error
}

// Unavailable - хранилище, которое не удалось инициализировать при старте.
// Любая операция возвращает ErrStoreUnavailable.
type Unavailable struct {
	// Cause - причина, по которой хранилище недоступно
	Cause error
}

func (Unavailable) ListBySubject(context.Context, string) ([]entity.Question, error) {
	return nil, apperrors.ErrStoreUnavailable
}

func (Unavailable) CreateBatch(context.Context, string, []entity.Question) error {
	return apperrors.ErrStoreUnavailable
}

func (Unavailable) Create(context.Context, *entity.Result) error {
	return apperrors.ErrStoreUnavailable
}

func (Unavailable) ListByUser(context.Context, string) ([]entity.Result, error) {
	return nil, apperrors.ErrStoreUnavailable
}

func (Unavailable) Ping(context.Context) error {
	return apperrors.ErrStoreUnavailable
}

func (Unavailable) Close() error {
	return nil
}
