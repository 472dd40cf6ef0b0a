package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_Bands(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		total     int
		subject   string
		wantLevel string
		wantTopic string
		wantVideo string
	}{
		{"maths zero total", 0, 0, "maths", LevelFoundation, "Basics of Numbers & Operations", "https://www.youtube.com/embed/5n_hI1gM3-k"},
		{"maths exactly quarter", 1, 4, "maths", LevelFoundation, "Basics of Numbers & Operations", "https://www.youtube.com/embed/5n_hI1gM3-k"},
		{"maths just above quarter", 2, 7, "maths", LevelBeginner, "Introduction to Algebra", "https://www.youtube.com/embed/5n_hI1gM3-k"},
		{"maths exactly half", 1, 2, "maths", LevelBeginner, "Introduction to Algebra", "https://www.youtube.com/embed/5n_hI1gM3-k"},
		{"maths exactly three quarters", 3, 4, "maths", LevelIntermediate, "Solving Linear Equations", "https://www.youtube.com/embed/pURwG_dO-6k"},
		{"maths perfect", 4, 4, "maths", LevelAdvanced, "Introduction to Quadratic Equations", "https://www.youtube.com/embed/iulx0z1lz8M"},
		{"science zero", 0, 4, "science", LevelFoundation, "What is Science?", "https://www.youtube.com/embed/UPvgl_3pT6w"},
		{"science half", 2, 4, "science", LevelBeginner, "What is Photosynthesis?", "https://www.youtube.com/embed/UPvgl_3pT6w"},
		{"science two thirds", 2, 3, "science", LevelIntermediate, "Newton's Laws of Motion", "https://www.youtube.com/embed/k5kK8h2wA48"},
		{"science perfect", 5, 5, "science", LevelAdvanced, "Basics of Electricity", "https://www.youtube.com/embed/v1-5b_2fA6E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.score, tt.total, tt.subject)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantTopic, got.Topic)
			assert.Equal(t, tt.wantVideo, got.VideoURL)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestRecommend_ReasonsSharedAcrossSubjects(t *testing.T) {
	for _, score := range []int{0, 2, 3, 4} {
		maths := Recommend(score, 4, "maths")
		science := Recommend(score, 4, "science")
		assert.Equal(t, maths.Level, science.Level)
		assert.Equal(t, maths.Reason, science.Reason)
	}
}

func TestRecommend_UnknownSubjectReturnsDefault(t *testing.T) {
	for _, subject := range []string{"history", "", "Maths", "SCIENCE"} {
		for _, score := range []int{0, 1, 2} {
			assert.Equal(t, Default, Recommend(score, 2, subject), "subject %q", subject)
		}
	}
	assert.Equal(t, LevelBeginner, Default.Level)
	assert.Equal(t, "Introduction", Default.Topic)
	assert.Equal(t, "Let's get started!", Default.Reason)
}

func TestRecommend_TotalForKnownSubjects(t *testing.T) {
	// Любая доля от 0 до 1 попадает ровно в одну строку таблицы
	levels := map[string]bool{}
	for _, l := range Levels() {
		levels[l] = true
	}

	for _, subject := range Subjects() {
		for total := 0; total <= 12; total++ {
			for score := 0; score <= total; score++ {
				got := Recommend(score, total, subject)
				assert.True(t, levels[got.Level], "unexpected level %q", got.Level)
				assert.NotEmpty(t, got.Topic)
				assert.NotEmpty(t, got.VideoURL)
			}
		}
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(0, 0))
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 0.5, Ratio(1, 2))
	assert.Equal(t, 1.0, Ratio(4, 4))
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, []string{"maths", "science"}, Subjects())
}
