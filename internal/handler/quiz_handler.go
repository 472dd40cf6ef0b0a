package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/shagird-api/internal/handler/dto"
	"github.com/yourusername/shagird-api/internal/handler/helper"
	apperrors "github.com/yourusername/shagird-api/internal/pkg/errors"
	"github.com/yourusername/shagird-api/internal/service"
)

// WelcomeMessage возвращается на GET /
const WelcomeMessage = "Welcome to Project Shagird's Backend API! The server is live."

// Сообщения об ошибках, которые видит клиент
const (
	msgInvalidSubmission = "Invalid submission data"
	msgNotConnected      = "Database not connected"
	msgFetchQuestions    = "Could not fetch questions"
	msgProcessSubmission = "Could not process submission"
	msgFetchProgress     = "Could not fetch progress"
)

// SubmissionObserver получает уведомление о каждой оцененной отправке
type SubmissionObserver interface {
	ObserveSubmission(subject, level string)
}

// QuizHandler обрабатывает запросы викторин, отправки ответов и истории
type QuizHandler struct {
	quizService   *service.QuizService
	resultService *service.ResultService
	observer      SubmissionObserver
	logger        *zap.Logger
}

// NewQuizHandler создает новый обработчик викторин. observer может быть nil.
func NewQuizHandler(
	quizService *service.QuizService,
	resultService *service.ResultService,
	observer SubmissionObserver,
	logger *zap.Logger,
) *QuizHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizHandler{
		quizService:   quizService,
		resultService: resultService,
		observer:      observer,
		logger:        logger.Named("quiz_handler"),
	}
}

// Home возвращает приветственное сообщение
func (h *QuizHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

// ListSubjects возвращает предметы, для которых есть рекомендации
func (h *QuizHandler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subjects": h.quizService.Subjects()})
}

// GetQuiz возвращает до четырех случайных вопросов предмета
// GET /quiz/:subject
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	subject := c.Param("subject")

	questions, err := h.quizService.GetQuiz(c.Request.Context(), subject)
	if err != nil {
		h.handleError(c, msgFetchQuestions, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// Submit оценивает ответы, сохраняет результат и возвращает его со ссылкой на видео
// POST /submit
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid submission body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidSubmission})
		return
	}

	response, err := h.resultService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, msgProcessSubmission, err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveSubmission(response.Subject, response.Level)
	}
	c.JSON(http.StatusOK, response)
}

// GetProgress возвращает историю результатов пользователя, новые первыми
// GET /my-progress/:userId
func (h *QuizHandler) GetProgress(c *gin.Context) {
	entries, err := h.resultService.GetProgress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, msgFetchProgress, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ExportProgress выгружает историю пользователя в CSV или XLSX
// GET /my-progress/:userId/export?format=csv|xlsx
func (h *QuizHandler) ExportProgress(c *gin.Context) {
	userID := c.Param("userId")
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported export format: %s", format)})
		return
	}

	entries, err := h.resultService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, msgFetchProgress, err)
		return
	}

	filename := fmt.Sprintf("progress_%s_%s", helper.SanitizeFilename(userID), time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, entries, filename)
	default:
		h.exportCSV(c, entries, filename)
	}
}

// exportCSV экспортирует историю в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, entries []dto.ProgressEntry, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.logger.Debug("failed to write csv bom", zap.Error(err))
		return
	}

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(helper.ProgressExportHeaders); err != nil {
		h.logger.Debug("failed to write csv headers", zap.Error(err))
		return
	}
	for i := range entries {
		if err := writer.Write(helper.ProgressRow(&entries[i])); err != nil {
			h.logger.Debug("failed to write csv row", zap.Int("row", i+1), zap.Error(err))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("failed to write csv export", zap.Error(err))
	}
}

// exportXLSX экспортирует историю в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, entries []dto.ProgressEntry, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Progress"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		h.logger.Error("failed to rename sheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		h.logger.Error("failed to create stream writer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	if err := sw.SetRow("A1", toCells(helper.ProgressExportHeaders)); err != nil {
		h.logger.Error("failed to write xlsx headers", zap.Error(err))
	}
	for i := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // строка 1 - заголовки
		if err != nil {
			h.logger.Error("invalid xlsx cell", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		if err := sw.SetRow(cell, toCells(helper.ProgressRow(&entries[i]))); err != nil {
			h.logger.Error("failed to write xlsx row", zap.Int("row", i+2), zap.Error(err))
		}
	}
	if err := sw.Flush(); err != nil {
		h.logger.Error("failed to flush xlsx", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("failed to write xlsx response", zap.Error(err))
	}
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// handleError отправляет ошибку сервиса в виде {"error": "..."}.
// Недоступное хранилище и ошибки запроса отличаются только текстом, статус у обоих 500.
func (h *QuizHandler) handleError(c *gin.Context, prefix string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidSubmission})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		h.logger.Warn("store unavailable", zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNotConnected})
	default:
		h.logger.Error(prefix, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%s: %v", prefix, err)})
	}
}
