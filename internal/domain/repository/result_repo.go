package repository

import (
	"context"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами
type ResultRepository interface {
	// Create добавляет новую запись. Время создания назначает хранилище.
	Create(ctx context.Context, result *entity.Result) error
	// ListByUser возвращает все результаты пользователя без пагинации и без сортировки
	ListByUser(ctx context.Context, userID string) ([]entity.Result, error)
}
