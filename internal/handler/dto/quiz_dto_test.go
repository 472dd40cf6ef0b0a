package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shagird-api/internal/domain/entity"
	apperrors "github.com/yourusername/shagird-api/internal/pkg/errors"
	"github.com/yourusername/shagird-api/internal/service/recommendation"
)

func TestSubmitRequest_Validate(t *testing.T) {
	valid := SubmitRequest{UserID: "u1", Subject: "maths", Answers: map[string]interface{}{"q1": "B"}}
	assert.NoError(t, valid.Validate())

	emptyUser := valid
	emptyUser.UserID = ""
	err := emptyUser.Validate()
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	// Пробелы - непустое значение
	spaces := valid
	spaces.UserID = "  "
	spaces.Subject = " "
	assert.NoError(t, spaces.Validate())

	noAnswers := valid
	noAnswers.Answers = nil
	assert.True(t, errors.Is(noAnswers.Validate(), apperrors.ErrValidation))
}

func TestSubmitRequest_UnmarshalKeepsNumberLiterals(t *testing.T) {
	var req SubmitRequest
	require.NoError(t, json.Unmarshal([]byte(
		`{"answers":{"q1":"B","q2":4,"q3":2.0,"q4":2.5,"q5":true,"q6":null},"subject":"maths","userId":"u1"}`,
	), &req))

	assert.Equal(t, "maths", req.Subject)
	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, map[string]string{
		"q1": "B",
		"q2": "4",
		"q3": "2.0",
		"q4": "2.5",
		"q5": "True",
		"q6": "None",
	}, req.AnswerStrings())
}

func TestSubmitRequest_UnmarshalInvalid(t *testing.T) {
	var req SubmitRequest
	assert.Error(t, json.Unmarshal([]byte(`{"answers": [1, 2]}`), &req))
}

func TestSubmitResponse_RecordHasNoVideo(t *testing.T) {
	rec := recommendation.Recommend(1, 2, "maths")
	resp := NewSubmitResponse("u1", "maths", 1, 2, rec)

	record := resp.Record()
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, rec.Topic, record.RecommendationTopic)
	assert.False(t, record.HasTimestamp())

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"video_url":"https://www.youtube.com/embed/5n_hI1gM3-k"`)
}

func TestNewProgressEntry(t *testing.T) {
	withTime := NewProgressEntry(&entity.Result{
		UserID:    "u1",
		Subject:   "maths",
		Timestamp: time.Date(2024, 3, 7, 15, 45, 0, 0, time.UTC),
	}, time.UTC)
	require.NotNil(t, withTime.Timestamp)
	assert.Equal(t, "07 Mar 2024, 03:45 PM", *withTime.Timestamp)

	withoutTime := NewProgressEntry(&entity.Result{UserID: "u1", Subject: "maths"}, time.UTC)
	data, err := json.Marshal(withoutTime)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "timestamp")
	assert.NotContains(t, string(data), "video_url")
}
