package handlers

import (
	"net/http"

	"VinavalPortal/aggregate"
	"VinavalPortal/middleware"
	"VinavalPortal/models"
)

// ==================== EXAMINER DASHBOARD ====================

type ExaminerStats struct {
	TotalAssessments int `json:"total_assessments"`
	TotalCandidates  int `json:"total_candidates"`
	AvgScore         int `json:"avg_score"`
}

type ExaminerDashboardResponse struct {
	Assessments []models.Assessment `json:"assessments"`
	Total       int                 `json:"total"`
	Expanded    bool                `json:"expanded"`
	Stats       ExaminerStats       `json:"stats"`
}

// ExaminerDashboard - GET /portal/examiner/dashboard?expanded=true
// The signed-in examiner's assessments. Candidate and score totals come from
// the backend response; only the list slicing happens here.
func ExaminerDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := Gateway.FetchExaminerAssessments(r.Context(), sess.UserID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	expanded := r.URL.Query().Get("expanded") == "true"
	respondWithJSON(w, http.StatusOK, ExaminerDashboardResponse{
		Assessments: aggregate.Page(data.Assessments, expanded, aggregate.DefaultPageSize),
		Total:       len(data.Assessments),
		Expanded:    expanded,
		Stats: ExaminerStats{
			TotalAssessments: len(data.Assessments),
			TotalCandidates:  data.TotalCandidates,
			AvgScore:         data.AvgScore,
		},
	})
}

type CandidateListResponse struct {
	Candidates []models.Candidate `json:"candidates"`
}

// Candidates - GET /portal/examiner/candidates
// Candidate roster used when assigning a new assessment.
func Candidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := Gateway.FetchCandidates(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CandidateListResponse{Candidates: candidates})
}
