package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"VinavalPortal/models"
	"VinavalPortal/session"

	"github.com/gorilla/mux"
)

type contextKey string

const SessionKey contextKey = "session"

var sessions *session.Store

func InitSessions(store *session.Store) {
	sessions = store
}

// RequireRole guards a route group: no session or an ineligible role means the
// handler never runs and the client is told to go back to the entry view.
func RequireRole(roles ...models.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.Load(r)
			if err != nil {
				redirectToLogin(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			// A pending-reset identity is not a session; it only authorizes
			// the reset call itself.
			if sess.FirstLogin {
				redirectToLogin(w, http.StatusUnauthorized, "Password reset required")
				return
			}

			eligible := false
			for _, role := range roles {
				if sess.Role == role {
					eligible = true
					break
				}
			}
			if !eligible {
				redirectToLogin(w, http.StatusForbidden, string(sess.Role)+" role is not allowed here")
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin)(next)
}

func ExaminerOnly(next http.Handler) http.Handler {
	return RequireRole(models.RoleExaminer)(next)
}

func CandidateOnly(next http.Handler) http.Handler {
	return RequireRole(models.RoleCandidate)(next)
}

// StaffOnly admits admins and examiners, the two roles that manage users.
func StaffOnly(next http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin, models.RoleExaminer)(next)
}

func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*models.Session)
	return sess, ok
}

func redirectToLogin(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    message,
		"redirect": "/",
	})
}
