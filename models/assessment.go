package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Assessment status is assigned by the backend, never computed here.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

type Assessment struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	AssignedTo      []string   `json:"assigned_to"`
	DurationMinutes int        `json:"duration_minutes"`
	TimePerQuestion int        `json:"time_per_question,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	ScheduledFrom   string     `json:"scheduled_from,omitempty"`
	ScheduledTo     string     `json:"scheduled_to,omitempty"`
	Status          string     `json:"status,omitempty"`
	QuestionsCount  int        `json:"questions_count,omitempty"`

	// Some listings key the identifier as assessment_id instead of id.
	// The gateway folds it into ID after decoding.
	AssessmentID string `json:"assessment_id,omitempty"`
}
