package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат. Время создания проставляет GORM (autoCreateTime).
func (r *ResultRepo) Create(ctx context.Context, result *entity.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(result).Error
}

// ListByUser возвращает все результаты пользователя
func (r *ResultRepo) ListByUser(ctx context.Context, userID string) ([]entity.Result, error) {
	results := make([]entity.Result, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
