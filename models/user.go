package models

import (
	"errors"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleExaminer  Role = "examiner"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleExaminer || r == RoleAdmin
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Candidate is the reduced user shape returned by the candidate listing
// used when assigning assessments.
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u UserCreate) Validate() error {
	if u.Name == "" || u.Email == "" {
		return errors.New("name and email are required")
	}
	if !u.Role.Valid() {
		return errors.New("role must be candidate, examiner, or admin")
	}
	return nil
}
