package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"VinavalPortal/models"
)

type assessmentsEnvelope struct {
	Assessments []models.Assessment `json:"assessments"`
}

// ExaminerDashboardData bundles an examiner's assessment list with the
// backend-computed candidate and score totals that ride along in the same
// response.
type ExaminerDashboardData struct {
	Assessments     []models.Assessment `json:"assessments"`
	TotalCandidates int                 `json:"totalCandidates"`
	AvgScore        int                 `json:"avgScore"`
}

// normalizeAssessments folds the assessment_id alias into ID so callers only
// ever see one identifier field.
func normalizeAssessments(assessments []models.Assessment) []models.Assessment {
	if assessments == nil {
		return []models.Assessment{}
	}
	for i := range assessments {
		if assessments[i].ID == "" {
			assessments[i].ID = assessments[i].AssessmentID
		}
		assessments[i].AssessmentID = ""
		if assessments[i].AssignedTo == nil {
			assessments[i].AssignedTo = []string{}
		}
	}
	return assessments
}

func (c *Client) FetchAllAssessments(ctx context.Context) ([]models.Assessment, error) {
	var env assessmentsEnvelope
	if err := c.getJSON(ctx, "/admin/assessments", &env, "Failed to load assessments"); err != nil {
		return nil, err
	}
	return normalizeAssessments(env.Assessments), nil
}

func (c *Client) FetchExaminerAssessments(ctx context.Context, examinerID string) (*ExaminerDashboardData, error) {
	var data ExaminerDashboardData
	path := "/examiner/assessments?examinerId=" + url.QueryEscape(examinerID)
	if err := c.getJSON(ctx, path, &data, "Failed to load assessments"); err != nil {
		return nil, err
	}
	data.Assessments = normalizeAssessments(data.Assessments)
	return &data, nil
}

func (c *Client) FetchCandidateAssessments(ctx context.Context, userID string) ([]models.Assessment, error) {
	var env assessmentsEnvelope
	path := "/candidate/assessments?userId=" + url.QueryEscape(userID)
	if err := c.getJSON(ctx, path, &env, "Failed to load assessments"); err != nil {
		return nil, err
	}
	return normalizeAssessments(env.Assessments), nil
}

// AssessmentDraft holds the multipart fields for assessment creation. Exactly
// one question source is used: a generation prompt, or an uploaded file.
type AssessmentDraft struct {
	Title           string
	Description     string
	CreatedBy       string
	AssignedTo      []string
	ScheduledFrom   string
	ScheduledTo     string
	DurationMinutes int
	TimePerQuestion int
	Difficulty      models.Difficulty
	Prompt          string
	FileName        string
	File            io.Reader
}

func (c *Client) CreateAssessment(ctx context.Context, draft AssessmentDraft) error {
	assignedTo, err := json.Marshal(draft.AssignedTo)
	if err != nil {
		return fmt.Errorf("error marshaling assigned candidates: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"title":           draft.Title,
		"description":     draft.Description,
		"createdBy":       draft.CreatedBy,
		"assignedTo":      string(assignedTo),
		"scheduledFrom":   draft.ScheduledFrom,
		"scheduledTo":     draft.ScheduledTo,
		"durationMinutes": strconv.Itoa(draft.DurationMinutes),
		"timePerQuestion": strconv.Itoa(draft.TimePerQuestion),
		"difficulty":      string(draft.Difficulty),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("error writing form field %s: %w", name, err)
		}
	}

	if draft.File != nil {
		part, err := writer.CreateFormFile("file", draft.FileName)
		if err != nil {
			return fmt.Errorf("error creating file part: %w", err)
		}
		if _, err := io.Copy(part, draft.File); err != nil {
			return fmt.Errorf("error writing file part: %w", err)
		}
	} else if err := writer.WriteField("prompt", draft.Prompt); err != nil {
		return fmt.Errorf("error writing form field prompt: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("error finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assessments/create", &body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, "Failed to create assessment")
	}
	return nil
}

func (c *Client) DeleteAssessment(ctx context.Context, assessmentID string) error {
	path := "/assessments/" + url.PathEscape(assessmentID) + "/delete"
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, "Failed to delete assessment")
	}
	return nil
}
