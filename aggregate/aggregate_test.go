package aggregate

import (
	"reflect"
	"testing"

	"VinavalPortal/models"
)

func TestPartitionUsers(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Asha", Role: models.RoleCandidate},
		{ID: "u2", Name: "Ben", Role: models.RoleExaminer},
		{ID: "u3", Name: "Carla", Role: models.RoleAdmin},
		{ID: "u4", Name: "Dev", Role: models.RoleCandidate},
		{ID: "u5", Name: "Esme", Role: models.RoleExaminer},
	}

	groups := PartitionUsers(users)

	if len(groups.Candidates) != 2 || len(groups.Examiners) != 2 || len(groups.Admins) != 1 {
		t.Fatalf("unexpected group sizes: %d/%d/%d",
			len(groups.Candidates), len(groups.Examiners), len(groups.Admins))
	}

	// Every user belongs to exactly one group: merging the groups must
	// reproduce the original multiset.
	seen := make(map[string]int)
	for _, g := range [][]models.User{groups.Candidates, groups.Examiners, groups.Admins} {
		for _, u := range g {
			seen[u.ID]++
		}
	}
	if len(seen) != len(users) {
		t.Fatalf("merged groups have %d distinct users, want %d", len(seen), len(users))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("user %s appears %d times across groups", id, n)
		}
	}

	// Each member's role matches its group.
	for _, u := range groups.Candidates {
		if u.Role != models.RoleCandidate {
			t.Errorf("user %s in candidates has role %s", u.ID, u.Role)
		}
	}
	for _, u := range groups.Examiners {
		if u.Role != models.RoleExaminer {
			t.Errorf("user %s in examiners has role %s", u.ID, u.Role)
		}
	}
}

func TestPartitionUsersEmpty(t *testing.T) {
	groups := PartitionUsers(nil)
	if groups.Candidates == nil || groups.Examiners == nil || groups.Admins == nil {
		t.Fatal("empty partition must produce empty groups, not nil")
	}
}

func TestStats(t *testing.T) {
	results := []models.Result{
		{Score: 8, MaxScore: 10, Percentage: 80},
		{Score: 6, MaxScore: 10, Percentage: 60},
	}

	stats := Stats(results)
	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
	if stats.Average != 70 {
		t.Errorf("Average = %d, want 70", stats.Average)
	}
	if stats.Max != 80 {
		t.Errorf("Max = %d, want 80", stats.Max)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil)
	if stats.Count != 0 {
		t.Errorf("Count = %d, want 0", stats.Count)
	}
	// Average over an empty list is defined as 0, not a division by zero.
	if stats.Average != 0 {
		t.Errorf("Average = %d, want 0", stats.Average)
	}
}

func TestStatsDerivesMissingPercentage(t *testing.T) {
	results := []models.Result{
		{Score: 7, MaxScore: 10},
	}

	stats := Stats(results)
	if stats.Average != 70 || stats.Max != 70 {
		t.Errorf("stats = %+v, want average and max 70", stats)
	}
}

func TestPage(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	collapsed := Page(seq, false, DefaultPageSize)
	if !reflect.DeepEqual(collapsed, []int{1, 2, 3, 4}) {
		t.Errorf("collapsed page = %v, want first 4 in order", collapsed)
	}

	expanded := Page(seq, true, DefaultPageSize)
	if !reflect.DeepEqual(expanded, seq) {
		t.Errorf("expanded page = %v, want full sequence", expanded)
	}

	// Toggling twice returns the original prefix; the sequence is untouched.
	again := Page(seq, false, DefaultPageSize)
	if !reflect.DeepEqual(again, collapsed) {
		t.Errorf("re-collapsed page = %v, want %v", again, collapsed)
	}
	if !reflect.DeepEqual(seq, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Errorf("underlying sequence was mutated: %v", seq)
	}
}

func TestPageShorterThanPageSize(t *testing.T) {
	seq := []string{"a", "b"}
	if got := Page(seq, false, DefaultPageSize); !reflect.DeepEqual(got, seq) {
		t.Errorf("page = %v, want the whole short sequence", got)
	}
}

func TestFilterByStatus(t *testing.T) {
	assessments := []models.Assessment{
		{ID: "a1", Status: models.StatusUpcoming},
		{ID: "a2", Status: models.StatusCompleted},
		{ID: "a3", Status: models.StatusUpcoming},
	}

	upcoming := FilterByStatus(assessments, models.StatusUpcoming)
	if len(upcoming) != 2 || upcoming[0].ID != "a1" || upcoming[1].ID != "a3" {
		t.Errorf("upcoming = %v, want a1 and a3 in order", upcoming)
	}

	if got := FilterByStatus(nil, models.StatusUpcoming); got == nil || len(got) != 0 {
		t.Errorf("filter of nil = %v, want empty non-nil slice", got)
	}
}
