package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/shagird-api/internal/domain/entity"
)

// seedFile описывает YAML файл с вопросами:
//
//	subjects:
//	  maths:
//	    - id: q1
//	      question: "2 + 2 = ?"
//	      options: ["3", "4", "5"]
//	      answer: "4"
type seedFile struct {
	Subjects map[string][]map[string]interface{} `yaml:"subjects"`
}

// ParseSeed разбирает YAML и возвращает вопросы по предметам.
// Поле id становится идентификатором документа, остальные поля сохраняются как есть.
func ParseSeed(data []byte) (map[string][]entity.Question, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed YAML: %w", err)
	}
	if len(file.Subjects) == 0 {
		return nil, fmt.Errorf("seed file contains no subjects")
	}

	seed := make(map[string][]entity.Question, len(file.Subjects))
	for subject, items := range file.Subjects {
		questions := make([]entity.Question, 0, len(items))
		seen := make(map[string]bool, len(items))
		for i, item := range items {
			q := entity.Question{Subject: subject, Fields: entity.Document{}}
			for k, v := range item {
				if k == "id" {
					q.ID = fmt.Sprint(v)
					continue
				}
				q.Fields[k] = v
			}
			if _, ok := q.Answer(); !ok {
				return nil, fmt.Errorf("%s question #%d has no answer", subject, i+1)
			}
			if q.ID != "" {
				if seen[q.ID] {
					return nil, fmt.Errorf("%s question id %q is duplicated", subject, q.ID)
				}
				seen[q.ID] = true
			}
			questions = append(questions, q)
		}
		seed[subject] = questions
	}
	return seed, nil
}
