package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// Имена коллекций в Firestore
const (
	quizzesCollection   = "quizzes"
	questionsCollection = "questions"
	resultsCollection   = "results"
)

// Store реализует repository.Store поверх Firestore.
// Клиент Firestore безопасен для конкурентного использования.
type Store struct {
	client *firestore.Client
}

// NewStore создает хранилище поверх уже инициализированного клиента
func NewStore(client *firestore.Client) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("firestore client cannot be nil")
	}
	return &Store{client: client}, nil
}

func (s *Store) questions(subject string) *firestore.CollectionRef {
	return s.client.Collection(quizzesCollection).Doc(subject).Collection(questionsCollection)
}

// ListBySubject читает все документы подколлекции quizzes/{subject}/questions
func (s *Store) ListBySubject(ctx context.Context, subject string) ([]entity.Question, error) {
	iter := s.questions(subject).Documents(ctx)
	defer iter.Stop()

	questions := make([]entity.Question, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		questions = append(questions, entity.Question{
			ID:      doc.Ref.ID,
			Subject: subject,
			Fields:  entity.Document(doc.Data()),
		})
	}
	return questions, nil
}

// CreateBatch записывает вопросы предмета. Вопросы без ID получают идентификатор от Firestore.
func (s *Store) CreateBatch(ctx context.Context, subject string, questions []entity.Question) error {
	coll := s.questions(subject)
	for i := range questions {
		data := map[string]interface{}(questions[i].Fields)
		if questions[i].ID == "" {
			ref, _, err := coll.Add(ctx, data)
			if err != nil {
				return fmt.Errorf("failed to add question #%d: %w", i+1, err)
			}
			questions[i].ID = ref.ID
		} else if _, err := coll.Doc(questions[i].ID).Set(ctx, data); err != nil {
			return fmt.Errorf("failed to set question %s: %w", questions[i].ID, err)
		}
		questions[i].Subject = subject
	}
	return nil
}

// Create добавляет результат в коллекцию results.
// Метка времени назначается сервером (тег serverTimestamp у entity.Result).
func (s *Store) Create(ctx context.Context, result *entity.Result) error {
	ref, _, err := s.client.Collection(resultsCollection).Add(ctx, result)
	if err != nil {
		return err
	}
	result.ID = ref.ID
	return nil
}

// ListByUser возвращает все результаты пользователя (фильтр по равенству userId)
func (s *Store) ListByUser(ctx context.Context, userID string) ([]entity.Result, error) {
	iter := s.client.Collection(resultsCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	results := make([]entity.Result, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var result entity.Result
		if err := doc.DataTo(&result); err != nil {
			return nil, fmt.Errorf("failed to decode result %s: %w", doc.Ref.ID, err)
		}
		result.ID = doc.Ref.ID
		results = append(results, result)
	}
	return results, nil
}

// Ping выполняет минимальный запрос, чтобы убедиться в доступности Firestore
func (s *Store) Ping(ctx context.Context) error {
	iter := s.client.Collection(quizzesCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

// Close закрывает клиент Firestore
func (s *Store) Close() error {
	return s.client.Close()
}
