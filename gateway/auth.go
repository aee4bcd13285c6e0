package gateway

import (
	"context"
	"net/http"

	"VinavalPortal/models"
)

type AuthResult struct {
	User         models.User `json:"user"`
	IsFirstLogin bool        `json:"is_first_login"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Authenticate passes credentials through to the backend verbatim. A 401 body
// like {"error":"Invalid credentials"} surfaces with that exact text.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login",
		loginRequest{Email: email, Password: password}, &result, "Authentication failed")
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ResetPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/reset-password",
		resetPasswordRequest{UserID: userID, OldPassword: oldPassword, NewPassword: newPassword},
		nil, "Failed to reset password")
}

func (c *Client) CreateUser(ctx context.Context, user models.UserCreate) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/signup", user, nil, "Failed to create user")
}
