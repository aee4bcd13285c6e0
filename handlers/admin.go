package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"VinavalPortal/aggregate"
	"VinavalPortal/gateway"
	"VinavalPortal/middleware"
	"VinavalPortal/models"
	"VinavalPortal/mutate"

	"github.com/gorilla/mux"
)

// ==================== ADMIN DASHBOARD ====================

type AdminDashboardResponse struct {
	Assessments []models.Assessment `json:"assessments"`
	Total       int                 `json:"total"`
	Expanded    bool                `json:"expanded"`
}

// AdminDashboard - GET /portal/admin/dashboard?expanded=true
// Full assessment list, paged by the per-list expanded flag.
func AdminDashboard(w http.ResponseWriter, r *http.Request) {
	assessments, err := Gateway.FetchAllAssessments(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	expanded := r.URL.Query().Get("expanded") == "true"
	respondWithJSON(w, http.StatusOK, AdminDashboardResponse{
		Assessments: aggregate.Page(assessments, expanded, aggregate.DefaultPageSize),
		Total:       len(assessments),
		Expanded:    expanded,
	})
}

// ==================== ASSESSMENT MUTATIONS ====================

type DeleteRequestBody struct {
	Title string `json:"title"`
}

type ConfirmRequestBody struct {
	ConfirmationToken string `json:"confirmation_token"`
}

// RequestAssessmentDelete - POST /portal/assessments/{id}/delete/request
// First half of the destructive flow: returns the confirmation token and the
// prompt naming the target. Nothing is deleted yet.
func RequestAssessmentDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	assessmentID := mux.Vars(r)["id"]
	var body DeleteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Assessment title is required")
		return
	}

	confirmation := Mutations.RequestDelete(mutate.TargetAssessment, assessmentID, body.Title, sess.UserID)
	respondWithJSON(w, http.StatusOK, confirmation)
}

type AssessmentDeletedResponse struct {
	Message     string              `json:"message"`
	Assessments []models.Assessment `json:"assessments"`
	Total       int                 `json:"total"`
}

// ConfirmAssessmentDelete - POST /portal/assessments/{id}/delete/confirm
// Second half: executes the deletion and returns the refreshed list. A failed
// deletion refreshes nothing.
func ConfirmAssessmentDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body ConfirmRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assessments, err := Mutations.ConfirmDeleteAssessment(r.Context(), body.ConfirmationToken, sess)
	if errors.Is(err, mutate.ErrConfirmationNotFound) {
		respondWithError(w, http.StatusGone, err.Error())
		return
	}
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AssessmentDeletedResponse{
		Message:     "Assessment deleted successfully",
		Assessments: assessments,
		Total:       len(assessments),
	})
}

// CreateAssessment - POST /portal/assessments (multipart)
// Runs the creation state machine; a second submit while one is in flight for
// the same session is rejected with 409.
func CreateAssessment(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}

	if r.FormValue("title") == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	draft := gateway.AssessmentDraft{
		Title:           r.FormValue("title"),
		Description:     r.FormValue("description"),
		CreatedBy:       sess.UserID,
		ScheduledFrom:   r.FormValue("scheduledFrom"),
		ScheduledTo:     r.FormValue("scheduledTo"),
		DurationMinutes: formInt(r, "durationMinutes", 30),
		TimePerQuestion: formInt(r, "timePerQuestion", 0),
		Difficulty:      models.Difficulty(r.FormValue("difficulty")),
		Prompt:          r.FormValue("prompt"),
	}

	if assigned := r.FormValue("assignedTo"); assigned != "" {
		if err := json.Unmarshal([]byte(assigned), &draft.AssignedTo); err != nil {
			respondWithError(w, http.StatusBadRequest, "assignedTo must be a JSON array of candidate ids")
			return
		}
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		draft.File = file
		draft.FileName = header.Filename
	}

	err := Mutations.SubmitAssessment(r.Context(), sess.UserID, draft)
	if errors.Is(err, mutate.ErrSubmitInFlight) {
		respondWithError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message":  "Assessment created successfully",
		"redirect": "/admin",
	})
}

func formInt(r *http.Request, field string, fallback int) int {
	value := r.FormValue(field)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
