package handlers

import (
	"errors"
	"net/http"
	"time"

	"VinavalPortal/export"
	"VinavalPortal/models"

	"github.com/gorilla/mux"
)

// ==================== PERFORMANCE REPORT ====================

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadUserReport - GET /portal/admin/users/{id}/report
// Streams the candidate performance workbook built from the user's current
// result set.
func DownloadUserReport(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	users, err := Gateway.FetchUsers(r.Context())
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	var subject *models.User
	for i := range users {
		if users[i].ID == userID {
			subject = &users[i]
			break
		}
	}
	if subject == nil {
		respondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	results, err := Gateway.FetchUserResults(r.Context(), userID)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	workbook, err := export.BuildCandidateReport(*subject, results, time.Now())
	if errors.Is(err, export.ErrNoResults) {
		respondWithError(w, http.StatusNotFound, "No results available for this user")
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error building report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(subject.Name)+`"`)
	if _, err := workbook.WriteTo(w); err != nil {
		// Headers are gone; nothing useful left to send.
		return
	}
}
