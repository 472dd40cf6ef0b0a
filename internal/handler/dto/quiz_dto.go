package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yourusername/shagird-api/internal/domain/entity"
	apperrors "github.com/yourusername/shagird-api/internal/pkg/errors"
	"github.com/yourusername/shagird-api/internal/service/recommendation"
)

// ProgressTimeLayout - формат отображения времени в истории, например "07 Mar 2024, 03:45 PM"
const ProgressTimeLayout = "02 Jan 2006, 03:04 PM"

// SubmitRequest представляет отправку ответов на викторину.
// Значения ответов принимаются любого JSON типа и сравниваются в строковом виде.
type SubmitRequest struct {
	Answers map[string]interface{} `json:"answers"`
	Subject string                 `json:"subject"`
	UserID  string                 `json:"userId"`
}

// Validate проверяет, что все три поля заданы и не пусты.
// Строка из пробелов считается непустой.
func (r *SubmitRequest) Validate() error {
	if len(r.Answers) == 0 || r.Subject == "" || r.UserID == "" {
		return fmt.Errorf("%w: answers, subject and userId are required", apperrors.ErrValidation)
	}
	return nil
}

// UnmarshalJSON декодирует числа в ответах как json.Number, чтобы 4 и 4.0 различались
func (r *SubmitRequest) UnmarshalJSON(data []byte) error {
	type plain SubmitRequest
	var decoded plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return err
	}
	*r = SubmitRequest(decoded)
	return nil
}

// AnswerStrings приводит присланные ответы к строкам так же, как сохраненные (entity.AnswerString)
func (r *SubmitRequest) AnswerStrings() map[string]string {
	answers := make(map[string]string, len(r.Answers))
	for questionID, answer := range r.Answers {
		answers[questionID] = entity.AnswerString(answer)
	}
	return answers
}

// SubmitResponse - результат отправки, возвращаемый клиенту вместе со ссылкой на видео
type SubmitResponse struct {
	UserID               string `json:"userId"`
	Subject              string `json:"subject"`
	Score                int    `json:"score"`
	Total                int    `json:"total"`
	Level                string `json:"level"`
	RecommendationTopic  string `json:"recommendation_topic"`
	RecommendationReason string `json:"recommendation_reason"`
	VideoURL             string `json:"video_url"`
}

// NewSubmitResponse собирает ответ из результата подсчета и рекомендации
func NewSubmitResponse(userID, subject string, score, total int, rec recommendation.Recommendation) *SubmitResponse {
	return &SubmitResponse{
		UserID:               userID,
		Subject:              subject,
		Score:                score,
		Total:                total,
		Level:                rec.Level,
		RecommendationTopic:  rec.Topic,
		RecommendationReason: rec.Reason,
		VideoURL:             rec.VideoURL,
	}
}

// Record возвращает запись для сохранения: без ссылки на видео и без времени,
// время назначает хранилище
func (r *SubmitResponse) Record() *entity.Result {
	return &entity.Result{
		UserID:               r.UserID,
		Subject:              r.Subject,
		Score:                r.Score,
		Total:                r.Total,
		Level:                r.Level,
		RecommendationTopic:  r.RecommendationTopic,
		RecommendationReason: r.RecommendationReason,
	}
}

// ProgressEntry - сохраненный результат в истории пользователя.
// Ссылки на видео в истории нет. Timestamp отсутствует, если у записи нет времени.
type ProgressEntry struct {
	UserID               string  `json:"userId"`
	Subject              string  `json:"subject"`
	Score                int     `json:"score"`
	Total                int     `json:"total"`
	Level                string  `json:"level"`
	RecommendationTopic  string  `json:"recommendation_topic"`
	RecommendationReason string  `json:"recommendation_reason"`
	Timestamp            *string `json:"timestamp,omitempty"`
}

// NewProgressEntry создает DTO истории, форматируя время в заданном часовом поясе
func NewProgressEntry(r *entity.Result, loc *time.Location) ProgressEntry {
	entry := ProgressEntry{
		UserID:               r.UserID,
		Subject:              r.Subject,
		Score:                r.Score,
		Total:                r.Total,
		Level:                r.Level,
		RecommendationTopic:  r.RecommendationTopic,
		RecommendationReason: r.RecommendationReason,
	}
	if r.HasTimestamp() {
		formatted := r.Timestamp.In(loc).Format(ProgressTimeLayout)
		entry.Timestamp = &formatted
	}
	return entry
}
