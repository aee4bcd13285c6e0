package gateway

import (
	"context"
	"net/http"

	"VinavalPortal/models"
)

type usersEnvelope struct {
	Users []models.User `json:"users"`
}

type candidatesEnvelope struct {
	Candidates []models.Candidate `json:"candidates"`
}

type deleteUserRequest struct {
	UserID  string `json:"user_id"`
	AdminID string `json:"admin_id"`
}

type deleteUserResponse struct {
	Message string `json:"message"`
}

func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	var env usersEnvelope
	if err := c.getJSON(ctx, "/admin/users", &env, "Failed to load users"); err != nil {
		return nil, err
	}
	if env.Users == nil {
		env.Users = []models.User{}
	}
	return env.Users, nil
}

func (c *Client) FetchCandidates(ctx context.Context) ([]models.Candidate, error) {
	var env candidatesEnvelope
	if err := c.getJSON(ctx, "/examiner/candidates", &env, "Failed to load candidates"); err != nil {
		return nil, err
	}
	if env.Candidates == nil {
		env.Candidates = []models.Candidate{}
	}
	return env.Candidates, nil
}

// DeleteUser removes a user on behalf of adminID and returns the backend's
// acknowledgment message.
func (c *Client) DeleteUser(ctx context.Context, userID, adminID string) (string, error) {
	var resp deleteUserResponse
	err := c.sendJSON(ctx, http.MethodDelete, "/admin/users",
		deleteUserRequest{UserID: userID, AdminID: adminID}, &resp, "Failed to delete user")
	if err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "User deleted successfully"
	}
	return resp.Message, nil
}
