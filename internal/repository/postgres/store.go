package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store объединяет репозитории PostgreSQL в repository.Store
type Store struct {
	*QuestionRepo
	*ResultRepo
	db *gorm.DB
}

// NewStore создает хранилище поверх подключения GORM
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm DB cannot be nil")
	}
	return &Store{
		QuestionRepo: NewQuestionRepo(db),
		ResultRepo:   NewResultRepo(db),
		db:           db,
	}, nil
}

// Ping проверяет подключение к базе данных
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close закрывает пул соединений
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
