package models

import (
	"math"
	"time"
)

type Result struct {
	AssessmentID    string    `json:"assessment_id"`
	AssessmentTitle string    `json:"assessment_title"`
	Score           int       `json:"score"`
	MaxScore        int       `json:"max_score"`
	Percentage      int       `json:"percentage"`
	AttemptNumber   int       `json:"attempt_number,omitempty"`
	GradedAt        time.Time `json:"graded_at"`
}

// Percent returns the graded percentage, deriving it from score/max when the
// backend omitted the precomputed value. Keeps the two consistent wherever
// both appear.
func (r Result) Percent() int {
	if r.Percentage > 0 {
		return r.Percentage
	}
	if r.MaxScore == 0 {
		return 0
	}
	return int(math.Round(float64(r.Score) / float64(r.MaxScore) * 100))
}

// Attempt returns the attempt number, defaulting to 1 when missing.
func (r Result) Attempt() int {
	if r.AttemptNumber <= 0 {
		return 1
	}
	return r.AttemptNumber
}
