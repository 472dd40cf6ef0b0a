package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AnswerKey - правильные ответы, ключ - идентификатор вопроса
type AnswerKey map[string]interface{}

// NewAnswerKey собирает ключ ответов из вопросов, у которых задано поле answer
func NewAnswerKey(questions []Question) AnswerKey {
	key := make(AnswerKey, len(questions))
	for i := range questions {
		if answer, ok := questions[i].Answer(); ok {
			key[questions[i].ID] = answer
		}
	}
	return key
}

// IsCorrect проверяет ответ на вопрос. Значения сравниваются в каноническом строковом виде (AnswerString).
// Неизвестный вопрос никогда не считается отвеченным верно.
func (k AnswerKey) IsCorrect(questionID, submitted string) bool {
	correct, ok := k[questionID]
	if !ok {
		return false
	}
	return AnswerString(correct) == submitted
}

// Score подсчитывает количество верных ответов.
// total всегда равен числу присланных ответов, включая ответы на неизвестные вопросы.
func (k AnswerKey) Score(submitted map[string]string) (score, total int) {
	for questionID, answer := range submitted {
		if k.IsCorrect(questionID, answer) {
			score++
		}
	}
	return score, len(submitted)
}

// AnswerString приводит значение ответа к строке. Одинаково применяется к сохраненным
// и присланным ответам: целые без дробной части ("4"), вещественные всегда с ней ("2.0", "2.5"),
// логические как "True"/"False", отсутствующее значение как "None".
func AnswerString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case json.Number:
		return numberString(x)
	case float64:
		return floatString(x, 64)
	case float32:
		return floatString(float64(x), 32)
	default:
		return fmt.Sprint(x)
	}
}

// numberString сохраняет целые литералы JSON как есть, остальные приводит через floatString
func numberString(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return floatString(f, 64)
}

func floatString(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
