package handler

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// memoryStore - хранилище в памяти для тестов обработчиков.
// Create назначает записи время так же, как это делает настоящее хранилище.
type memoryStore struct {
	mu        sync.Mutex
	questions map[string][]entity.Question
	results   []entity.Result
	now       time.Time
	err       error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		questions: make(map[string][]entity.Question),
		now:       time.Date(2024, 3, 7, 15, 45, 0, 0, time.UTC),
	}
}

func (s *memoryStore) ListBySubject(_ context.Context, subject string) ([]entity.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entity.Question, len(s.questions[subject]))
	copy(out, s.questions[subject])
	return out, nil
}

func (s *memoryStore) CreateBatch(_ context.Context, subject string, questions []entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, q := range questions {
		q.Subject = subject
		s.questions[subject] = append(s.questions[subject], q)
	}
	return nil
}

func (s *memoryStore) Create(_ context.Context, result *entity.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.now = s.now.Add(time.Minute)
	stored := *result
	stored.Timestamp = s.now
	s.results = append(s.results, stored)
	return nil
}

func (s *memoryStore) ListByUser(_ context.Context, userID string) ([]entity.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []entity.Result{}
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memoryStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *memoryStore) Close() error { return nil }
