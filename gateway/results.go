package gateway

import (
	"context"
	"net/url"

	"VinavalPortal/models"
)

type resultsEnvelope struct {
	Results []models.Result `json:"results"`
}

func (c *Client) FetchUserResults(ctx context.Context, userID string) ([]models.Result, error) {
	path := "/admin/users/" + url.PathEscape(userID) + "/results"
	var env resultsEnvelope
	if err := c.getJSON(ctx, path, &env, "Failed to load results"); err != nil {
		return nil, err
	}
	if env.Results == nil {
		env.Results = []models.Result{}
	}
	return env.Results, nil
}

func (c *Client) FetchCandidateResults(ctx context.Context, userID string) ([]models.Result, error) {
	path := "/candidate/results?userId=" + url.QueryEscape(userID)
	var env resultsEnvelope
	if err := c.getJSON(ctx, path, &env, "Failed to load results"); err != nil {
		return nil, err
	}
	if env.Results == nil {
		env.Results = []models.Result{}
	}
	return env.Results, nil
}
