package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"VinavalPortal/models"
)

func TestAuthenticateInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Authenticate(context.Background(), "a@x.com", "wrong")
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	// The backend-provided text must come through verbatim.
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Invalid credentials")
	}
}

func TestErrorMessageSources(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"boom"}`, "boom"},
		{"details field", `{"details":"pipeline failed"}`, "pipeline failed"},
		{"error preferred over details", `{"error":"boom","details":"ignored"}`, "boom"},
		{"unparseable body falls back", `<html>oops</html>`, "Failed to load users"},
		{"empty body falls back", ``, "Failed to load users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL)
			_, err := client.FetchUsers(context.Background())
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestTransportErrorReachesCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := New(srv.URL)
	_, err := client.FetchUsers(context.Background())
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not carry an upstream status: %v", err)
	}
}

func TestFetchUsersEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users":[
			{"id":"u1","name":"Asha","email":"asha@example.com","role":"candidate"},
			{"id":"u2","name":"Ben","email":"ben@example.com","role":"admin"}
		]}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(users) != 2 || users[0].ID != "u1" || users[1].Role != models.RoleAdmin {
		t.Errorf("users = %+v", users)
	}
}

func TestFetchUsersMissingListIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("users = %v, want empty non-nil slice", users)
	}
}

func TestFetchAllAssessmentsNormalizesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/assessments" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"assessments":[{"assessment_id":"a9","title":"Go Basics"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	assessments, err := client.FetchAllAssessments(context.Background())
	if err != nil {
		t.Fatalf("FetchAllAssessments returned error: %v", err)
	}
	if len(assessments) != 1 || assessments[0].ID != "a9" {
		t.Errorf("assessments = %+v, want ID folded to a9", assessments)
	}
	if assessments[0].AssignedTo == nil {
		t.Error("AssignedTo should be normalized to an empty slice")
	}
}

func TestFetchExaminerAssessments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("examinerId"); got != "ex7" {
			t.Errorf("examinerId = %q, want ex7", got)
		}
		w.Write([]byte(`{"assessments":[{"id":"a1","title":"T1"}],"totalCandidates":12,"avgScore":74}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	data, err := client.FetchExaminerAssessments(context.Background(), "ex7")
	if err != nil {
		t.Fatalf("FetchExaminerAssessments returned error: %v", err)
	}
	if data.TotalCandidates != 12 || data.AvgScore != 74 || len(data.Assessments) != 1 {
		t.Errorf("data = %+v", data)
	}
}

func TestDeleteUserSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/admin/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			UserID  string `json:"user_id"`
			AdminID string `json:"admin_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding delete body: %v", err)
		}
		if body.UserID != "u5" || body.AdminID != "adm1" {
			t.Errorf("body = %+v", body)
		}
		w.Write([]byte(`{"message":"User removed from 2 assessments and deleted"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	message, err := client.DeleteUser(context.Background(), "u5", "adm1")
	if err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if message != "User removed from 2 assessments and deleted" {
		t.Errorf("message = %q", message)
	}
}

func TestCreateAssessmentMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assessments/create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("title"); got != "React Fundamentals Quiz" {
			t.Errorf("title = %q", got)
		}
		if got := r.FormValue("assignedTo"); got != `["c1","c2"]` {
			t.Errorf("assignedTo = %q", got)
		}
		if got := r.FormValue("durationMinutes"); got != "30" {
			t.Errorf("durationMinutes = %q", got)
		}
		if got := r.FormValue("prompt"); got != "Ten questions on hooks" {
			t.Errorf("prompt = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"a1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.CreateAssessment(context.Background(), AssessmentDraft{
		Title:           "React Fundamentals Quiz",
		CreatedBy:       "adm1",
		AssignedTo:      []string{"c1", "c2"},
		DurationMinutes: 30,
		Difficulty:      models.DifficultyMedium,
		Prompt:          "Ten questions on hooks",
	})
	if err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}
}

func TestDeleteAssessmentPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/assessments/a42/delete" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.DeleteAssessment(context.Background(), "a42"); err != nil {
		t.Fatalf("DeleteAssessment returned error: %v", err)
	}
}
