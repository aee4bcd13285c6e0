package handlers

import (
	"net/http"

	"VinavalPortal/aggregate"
	"VinavalPortal/middleware"
	"VinavalPortal/models"
)

// ==================== CANDIDATE DASHBOARD ====================

type CandidateDashboardResponse struct {
	Upcoming         []models.Assessment   `json:"upcoming_assessments"`
	UpcomingTotal    int                   `json:"upcoming_total"`
	UpcomingExpanded bool                  `json:"upcoming_expanded"`
	Results          []models.Result       `json:"results"`
	ResultsTotal     int                   `json:"results_total"`
	ResultsExpanded  bool                  `json:"results_expanded"`
	Stats            aggregate.ResultStats `json:"stats"`
}

// CandidateDashboard - GET /portal/candidate/dashboard
// Upcoming assessments and past results for the signed-in candidate, each list
// paged by its own expanded flag (expanded_assessments / expanded_results).
func CandidateDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	assessments, err := Gateway.FetchCandidateAssessments(r.Context(), sess.UserID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	results, err := Gateway.FetchCandidateResults(r.Context(), sess.UserID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	query := r.URL.Query()
	upcomingExpanded := query.Get("expanded_assessments") == "true"
	resultsExpanded := query.Get("expanded_results") == "true"

	upcoming := aggregate.FilterByStatus(assessments, models.StatusUpcoming)

	respondWithJSON(w, http.StatusOK, CandidateDashboardResponse{
		Upcoming:         aggregate.Page(upcoming, upcomingExpanded, aggregate.DefaultPageSize),
		UpcomingTotal:    len(upcoming),
		UpcomingExpanded: upcomingExpanded,
		Results:          aggregate.Page(results, resultsExpanded, aggregate.DefaultPageSize),
		ResultsTotal:     len(results),
		ResultsExpanded:  resultsExpanded,
		Stats:            aggregate.Stats(results),
	})
}
