// Package aggregate derives display state from gateway responses. Every
// function is pure: no network calls, no mutation of its inputs.
package aggregate

import (
	"VinavalPortal/models"
)

// DefaultPageSize is the bounded prefix shown while a list is collapsed.
const DefaultPageSize = 4

// UserGroups partitions the full user set by role. The groups are pairwise
// disjoint and merge back to the original multiset.
type UserGroups struct {
	Candidates []models.User `json:"candidates"`
	Examiners  []models.User `json:"examiners"`
	Admins     []models.User `json:"admins"`
}

func PartitionUsers(users []models.User) UserGroups {
	groups := UserGroups{
		Candidates: []models.User{},
		Examiners:  []models.User{},
		Admins:     []models.User{},
	}
	for _, user := range users {
		switch user.Role {
		case models.RoleCandidate:
			groups.Candidates = append(groups.Candidates, user)
		case models.RoleExaminer:
			groups.Examiners = append(groups.Examiners, user)
		case models.RoleAdmin:
			groups.Admins = append(groups.Admins, user)
		}
	}
	return groups
}

// ResultStats summarizes a result list. Max is only meaningful when Count > 0;
// callers must check Count before reading it.
type ResultStats struct {
	Count   int `json:"count"`
	Average int `json:"average"`
	Max     int `json:"max"`
}

func Stats(results []models.Result) ResultStats {
	stats := ResultStats{Count: len(results)}
	if stats.Count == 0 {
		return stats
	}

	sum := 0
	for _, r := range results {
		pct := r.Percent()
		sum += pct
		if pct > stats.Max {
			stats.Max = pct
		}
	}
	// Round to nearest integer rather than truncate.
	stats.Average = (sum + stats.Count/2) / stats.Count
	return stats
}

// FilterByStatus keeps assessments whose backend-supplied status matches.
func FilterByStatus(assessments []models.Assessment, status string) []models.Assessment {
	filtered := []models.Assessment{}
	for _, a := range assessments {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Page exposes either the full sequence or its first pageSize elements,
// depending on the per-list expanded flag. Order is always preserved and the
// underlying sequence is never modified, so toggling is idempotent.
func Page[T any](items []T, expanded bool, pageSize int) []T {
	if expanded || len(items) <= pageSize {
		return items
	}
	return items[:pageSize]
}
