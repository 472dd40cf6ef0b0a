package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// AnswerField - имя поля документа вопроса, в котором хранится правильный ответ
const AnswerField = "answer"

// Document - произвольный набор полей документа в хранилище
// В Postgres хранится как JSONB, в Firestore - как обычные поля документа
type Document map[string]interface{}

// Scan реализует интерфейс sql.Scanner для Document
// Используется GORM для чтения JSONB данных из базы
func (d *Document) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*d = Document{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*d = Document{}
		return nil
	}

	// Числа остаются json.Number: целые и вещественные ответы не смешиваются
	dec := json.NewDecoder(strings.NewReader(string(bytes)))
	dec.UseNumber()
	return dec.Decode(d)
}

// Value реализует интерфейс driver.Valuer для Document
func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("{}"), nil // Пустой JSON объект вместо null
	}
	return json.Marshal(d)
}

// Question представляет вопрос викторины по предмету.
// Схема полей (текст, варианты ответа) не навязывается сервисом и передается как есть.
type Question struct {
	ID      string   `gorm:"primaryKey;size:128" json:"id"`
	Subject string   `gorm:"primaryKey;size:64;index" json:"-"` // идентификатор уникален в пределах предмета
	Fields  Document `gorm:"type:jsonb;not null" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Answer возвращает сохраненный правильный ответ и признак его наличия
func (q *Question) Answer() (interface{}, bool) {
	if q.Fields == nil {
		return nil, false
	}
	answer, ok := q.Fields[AnswerField]
	if !ok || answer == nil {
		return nil, false
	}
	return answer, true
}

// WithoutAnswer возвращает копию вопроса без поля с правильным ответом
func (q Question) WithoutAnswer() Question {
	fields := make(Document, len(q.Fields))
	for k, v := range q.Fields {
		if k == AnswerField {
			continue
		}
		fields[k] = v
	}
	q.Fields = fields
	return q
}

// MarshalJSON сериализует вопрос плоским объектом: идентификатор плюс все сохраненные поля.
// Поля документа перекрывают id, если документ сам содержит такое поле.
func (q Question) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(q.Fields)+1)
	flat["id"] = q.ID
	for k, v := range q.Fields {
		flat[k] = v
	}
	return json.Marshal(flat)
}
