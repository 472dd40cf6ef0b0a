package entity

import (
	"time"
)

// Result представляет сохраненный результат прохождения викторины.
// Ссылка на видео в запись не попадает, время создания назначает хранилище.
type Result struct {
	ID                   string    `gorm:"primaryKey;size:36" firestore:"-" json:"-"`
	UserID               string    `gorm:"column:user_id;size:128;not null;index" firestore:"userId" json:"userId"`
	Subject              string    `gorm:"size:64;not null" firestore:"subject" json:"subject"`
	Score                int       `gorm:"not null;default:0" firestore:"score" json:"score"`
	Total                int       `gorm:"not null;default:0" firestore:"total" json:"total"`
	Level                string    `gorm:"size:32;not null" firestore:"level" json:"level"`
	RecommendationTopic  string    `gorm:"column:recommendation_topic;size:255" firestore:"recommendation_topic" json:"recommendation_topic"`
	RecommendationReason string    `gorm:"column:recommendation_reason;size:500" firestore:"recommendation_reason" json:"recommendation_reason"`
	Timestamp            time.Time `gorm:"column:timestamp;autoCreateTime;index" firestore:"timestamp,serverTimestamp" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}

// HasTimestamp сообщает, назначено ли записи время создания
func (r *Result) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}
