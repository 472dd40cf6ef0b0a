package helper

import (
	"strconv"

	"github.com/yourusername/shagird-api/internal/handler/dto"
)

// ProgressExportHeaders - заголовки таблицы экспорта истории
var ProgressExportHeaders = []string{"Date", "Subject", "Score", "Total", "Level", "Recommended topic", "Reason"}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// ProgressRow возвращает строку экспорта для записи истории
func ProgressRow(e *dto.ProgressEntry) []string {
	timestamp := ""
	if e.Timestamp != nil {
		timestamp = *e.Timestamp
	}
	return []string{
		timestamp,
		SanitizeForExcel(e.Subject),
		strconv.Itoa(e.Score),
		strconv.Itoa(e.Total),
		e.Level,
		SanitizeForExcel(e.RecommendationTopic),
		SanitizeForExcel(e.RecommendationReason),
	}
}

// SanitizeFilename оставляет в имени файла только безопасные символы
func SanitizeFilename(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			out = append(out, ch)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
