package handlers

import (
	"encoding/json"
	"net/http"

	"VinavalPortal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User     models.User `json:"user"`
	Redirect string      `json:"redirect"`
}

type FirstLoginResponse struct {
	PasswordResetRequired bool        `json:"password_reset_required"`
	User                  models.User `json:"user"`
	ResetToken            string      `json:"reset_token"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// redirectForRole maps an authenticated role to its dashboard view.
func redirectForRole(role models.Role) string {
	switch role {
	case models.RoleCandidate:
		return "/candidate/dashboard"
	case models.RoleAdmin:
		return "/admin"
	default:
		return "/examiner/dashboard"
	}
}

func sessionFor(user models.User, firstLogin bool) models.Session {
	return models.Session{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		FirstLogin: firstLogin,
	}
}

// Login - POST /portal/login
// Thin pass-through to the backend auth endpoint. A session is persisted only
// on full success; first-time logins get a reset challenge instead.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := Gateway.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithGatewayError(w, err)
		return
	}

	if result.IsFirstLogin {
		// No session yet: the user must set a new password first. The reset
		// token pins the identity the backend just verified, so the reset
		// call cannot claim a different user or role.
		token, err := Sessions.IssuePendingReset(sessionFor(result.User, true))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Error preparing password reset")
			return
		}
		respondWithJSON(w, http.StatusOK, FirstLoginResponse{
			PasswordResetRequired: true,
			User:                  result.User,
			ResetToken:            token,
		})
		return
	}

	if err := Sessions.Save(w, sessionFor(result.User, false)); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		User:     result.User,
		Redirect: redirectForRole(result.User.Role),
	})
}

// ResetPassword - POST /portal/reset-password
// Completes the first-login flow. The acting identity comes exclusively from
// the pending-reset token issued at login; nothing identity-shaped is read
// from the request body. Mismatched confirmation never reaches the backend,
// and there is no lockout: a failed reset just surfaces the error and the
// user may try again with the same token.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.ResetToken == "" || req.OldPassword == "" || req.NewPassword == "" {
		respondWithError(w, http.StatusBadRequest, "Reset token, old password, and new password are required")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		respondWithError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	pending, err := Sessions.Decode(req.ResetToken)
	if err != nil || !pending.FirstLogin {
		respondWithError(w, http.StatusUnauthorized, "Reset token is invalid or expired")
		return
	}

	if err := Gateway.ResetPassword(r.Context(), pending.UserID, req.OldPassword, req.NewPassword); err != nil {
		respondWithGatewayError(w, err)
		return
	}

	// Reset completion clears the first-login flag and starts the session.
	sess := *pending
	sess.FirstLogin = false
	if err := Sessions.Save(w, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}

	user := models.User{
		ID:    sess.UserID,
		Name:  sess.Name,
		Email: sess.Email,
		Role:  sess.Role,
	}
	respondWithJSON(w, http.StatusOK, LoginResponse{
		User:     user,
		Redirect: redirectForRole(user.Role),
	})
}

// Logout - POST /portal/logout
func Logout(w http.ResponseWriter, r *http.Request) {
	Sessions.Clear(w)
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":  "Logged out",
		"redirect": "/",
	})
}
