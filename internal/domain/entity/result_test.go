package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult_HasTimestamp(t *testing.T) {
	assert.False(t, (&Result{}).HasTimestamp())
	assert.True(t, (&Result{Timestamp: time.Date(2024, 3, 7, 15, 45, 0, 0, time.UTC)}).HasTimestamp())
}
