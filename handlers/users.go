package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"VinavalPortal/aggregate"
	"VinavalPortal/middleware"
	"VinavalPortal/models"
	"VinavalPortal/mutate"

	"github.com/gorilla/mux"
)

// ==================== USER MANAGEMENT ====================

type ManageUsersResponse struct {
	Groups     aggregate.UserGroups `json:"groups"`
	Total      int                  `json:"total"`
	Candidates int                  `json:"candidate_count"`
	Examiners  int                  `json:"examiner_count"`
	Admins     int                  `json:"admin_count"`
}

func manageUsersResponse(users []models.User) ManageUsersResponse {
	groups := aggregate.PartitionUsers(users)
	return ManageUsersResponse{
		Groups:     groups,
		Total:      len(users),
		Candidates: len(groups.Candidates),
		Examiners:  len(groups.Examiners),
		Admins:     len(groups.Admins),
	}
}

// ManageUsers - GET /portal/admin/users
// The full user set partitioned into its three disjoint role groups.
func ManageUsers(w http.ResponseWriter, r *http.Request) {
	users, err := Gateway.FetchUsers(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, manageUsersResponse(users))
}

type UserCreatedResponse struct {
	Message string               `json:"message"`
	Groups  aggregate.UserGroups `json:"groups"`
}

// CreateUser - POST /portal/users
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := Mutations.CreateUser(r.Context(), req)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserCreatedResponse{
		Message: "User created successfully",
		Groups:  aggregate.PartitionUsers(users),
	})
}

type UserDeleteRequestBody struct {
	Name string `json:"name"`
}

// RequestUserDelete - POST /portal/users/{id}/delete/request
func RequestUserDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID := mux.Vars(r)["id"]
	var body UserDeleteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Name == "" {
		respondWithError(w, http.StatusBadRequest, "User name is required")
		return
	}

	confirmation := Mutations.RequestDelete(mutate.TargetUser, userID, body.Name, sess.UserID)
	respondWithJSON(w, http.StatusOK, confirmation)
}

type UserDeletedResponse struct {
	Message string               `json:"message"`
	Groups  aggregate.UserGroups `json:"groups"`
}

// ConfirmUserDelete - POST /portal/users/{id}/delete/confirm
func ConfirmUserDelete(w http.ResponseWriter, r *http.Request) {
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

	message, users, err := Mutations.ConfirmDeleteUser(r.Context(), body.ConfirmationToken, sess)
	if errors.Is(err, mutate.ErrConfirmationNotFound) {
		respondWithError(w, http.StatusGone, err.Error())
		return
	}
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserDeletedResponse{
		Message: message,
		Groups:  aggregate.PartitionUsers(users),
	})
}

// ==================== USER RESULTS ====================

type UserResultsResponse struct {
	Results []models.Result       `json:"results"`
	Stats   aggregate.ResultStats `json:"stats"`
}

// UserResults - GET /portal/admin/users/{id}/results
// A user's graded results with derived statistics. An empty set is an empty
// view, not an error.
func UserResults(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	results, err := Gateway.FetchUserResults(r.Context(), userID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserResultsResponse{
		Results: results,
		Stats:   aggregate.Stats(results),
	})
}
