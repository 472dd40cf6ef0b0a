// Package recommendation подбирает тему и видео по доле правильных ответов.
// Это статическая таблица решений, а не модель машинного обучения.
package recommendation

import "math"

// Уровни подготовки
const (
	LevelFoundation   = "Foundation"
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Границы диапазонов долей правильных ответов (включительно сверху)
const (
	foundationMax   = 0.25
	beginnerMax     = 0.5
	intermediateMax = 0.75
)

// Тексты причин общие для всех предметов
const (
	reasonFoundation   = "Your basics seem weak. Let's start from the very beginning!"
	reasonBeginner     = "You have some knowledge. This video will help you build a good foundation."
	reasonIntermediate = "Great job! You are ready for the next level."
	reasonAdvanced     = "Excellent work! Let's try a more advanced topic."
)

// Recommendation - рекомендация для результата викторины
type Recommendation struct {
	Level    string `json:"level"`
	Topic    string `json:"topic"`
	Reason   string `json:"reason"`
	VideoURL string `json:"video_url"`
}

// row - строка таблицы решений: предмет, верхняя граница доли и рекомендация
type row struct {
	subject    string
	upperBound float64
	payload    Recommendation
}

// table упорядочена по предмету и возрастанию верхней границы.
// Для каждого предмета последняя строка имеет границу +Inf.
var table = []row{
	{"maths", foundationMax, Recommendation{LevelFoundation, "Basics of Numbers & Operations", reasonFoundation, "https://www.youtube.com/embed/5n_hI1gM3-k"}},
	{"maths", beginnerMax, Recommendation{LevelBeginner, "Introduction to Algebra", reasonBeginner, "https://www.youtube.com/embed/5n_hI1gM3-k"}},
	{"maths", intermediateMax, Recommendation{LevelIntermediate, "Solving Linear Equations", reasonIntermediate, "https://www.youtube.com/embed/pURwG_dO-6k"}},
	{"maths", math.Inf(1), Recommendation{LevelAdvanced, "Introduction to Quadratic Equations", reasonAdvanced, "https://www.youtube.com/embed/iulx0z1lz8M"}},

	{"science", foundationMax, Recommendation{LevelFoundation, "What is Science?", reasonFoundation, "https://www.youtube.com/embed/UPvgl_3pT6w"}},
	{"science", beginnerMax, Recommendation{LevelBeginner, "What is Photosynthesis?", reasonBeginner, "https://www.youtube.com/embed/UPvgl_3pT6w"}},
	{"science", intermediateMax, Recommendation{LevelIntermediate, "Newton's Laws of Motion", reasonIntermediate, "https://www.youtube.com/embed/k5kK8h2wA48"}},
	{"science", math.Inf(1), Recommendation{LevelAdvanced, "Basics of Electricity", reasonAdvanced, "https://www.youtube.com/embed/v1-5b_2fA6E"}},
}

// Default возвращается для неизвестного предмета независимо от результата
var Default = Recommendation{
	Level:    LevelBeginner,
	Topic:    "Introduction",
	Reason:   "Let's get started!",
	VideoURL: "https://www.youtube.com/embed/5n_hI1gM3-k",
}

// Ratio возвращает долю правильных ответов; при total == 0 доля равна 0
func Ratio(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) / float64(total)
}

// Recommend подбирает рекомендацию по результату и предмету
func Recommend(score, total int, subject string) Recommendation {
	ratio := Ratio(score, total)
	for _, r := range table {
		if r.subject == subject && ratio <= r.upperBound {
			return r.payload
		}
	}
	return Default
}

// Subjects возвращает предметы, для которых есть рекомендации, в порядке таблицы
func Subjects() []string {
	subjects := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, r := range table {
		if !seen[r.subject] {
			seen[r.subject] = true
			subjects = append(subjects, r.subject)
		}
	}
	return subjects
}

// Levels возвращает уровни в порядке возрастания
func Levels() []string {
	return []string{LevelFoundation, LevelBeginner, LevelIntermediate, LevelAdvanced}
}
