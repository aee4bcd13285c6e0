// Package mutate coordinates write operations against the backend: destructive
// actions go through an explicit confirmation request/response step, creations
// are guarded against duplicate submits, and list refreshes happen strictly
// after the mutating call has resolved successfully.
package mutate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"VinavalPortal/gateway"
	"VinavalPortal/models"

	"github.com/google/uuid"
)

const (
	TargetUser       = "user"
	TargetAssessment = "assessment"
)

var (
	ErrConfirmationNotFound = errors.New("confirmation not found or expired")
	ErrSubmitInFlight       = errors.New("a submission is already in progress")
)

type pendingDelete struct {
	target      string
	targetID    string
	targetName  string
	requestedBy string
	expiresAt   time.Time
}

type Coordinator struct {
	gw *gateway.Client

	mu      sync.Mutex
	pending map[string]pendingDelete
	ttl     time.Duration
	now     func() time.Time

	submitMu sync.Mutex
	submits  map[string]bool
}

func New(gw *gateway.Client) *Coordinator {
	return &Coordinator{
		gw:      gw,
		pending: make(map[string]pendingDelete),
		ttl:     2 * time.Minute,
		now:     time.Now,
		submits: make(map[string]bool),
	}
}

// StartCleanup expires stale confirmation tokens in the background.
func (c *Coordinator) StartCleanup() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			c.cleanup()
		}
	}()
}

func (c *Coordinator) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for token, p := range c.pending {
		if now.After(p.expiresAt) {
			delete(c.pending, token)
		}
	}
}

// Confirmation is handed back to the caller so the confirming request can name
// exactly what it is about to destroy.
type Confirmation struct {
	Token     string    `json:"confirmation_token"`
	Prompt    string    `json:"prompt"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RequestDelete registers intent to delete an entity and returns the token the
// follow-up confirmation must present. Nothing is sent upstream yet.
func (c *Coordinator) RequestDelete(target, targetID, targetName, requestedBy string) Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := uuid.New().String()
	expiresAt := c.now().Add(c.ttl)
	c.pending[token] = pendingDelete{
		target:      target,
		targetID:    targetID,
		targetName:  targetName,
		requestedBy: requestedBy,
		expiresAt:   expiresAt,
	}

	return Confirmation{
		Token:     token,
		Prompt:    fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", targetName),
		ExpiresAt: expiresAt,
	}
}

// consume takes a pending confirmation off the table. A token works once, only
// for its target kind, only for the session that requested it, and only before
// it expires.
func (c *Coordinator) consume(token, target, requestedBy string) (pendingDelete, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[token]
	if !ok || p.target != target || p.requestedBy != requestedBy || c.now().After(p.expiresAt) {
		return pendingDelete{}, ErrConfirmationNotFound
	}
	delete(c.pending, token)
	return p, nil
}

// ConfirmDeleteUser executes a confirmed user deletion and re-fetches the user
// list. On any failure the caller's displayed list is left untouched: no
// refresh happens and no optimistic update was ever applied.
func (c *Coordinator) ConfirmDeleteUser(ctx context.Context, token string, sess *models.Session) (string, []models.User, error) {
	p, err := c.consume(token, TargetUser, sess.UserID)
	if err != nil {
		return "", nil, err
	}

	message, err := c.gw.DeleteUser(ctx, p.targetID, sess.UserID)
	if err != nil {
		return "", nil, err
	}

	users, err := c.gw.FetchUsers(ctx)
	if err != nil {
		return message, nil, err
	}
	return message, users, nil
}

// ConfirmDeleteAssessment executes a confirmed assessment deletion and
// re-fetches the full assessment list.
func (c *Coordinator) ConfirmDeleteAssessment(ctx context.Context, token string, sess *models.Session) ([]models.Assessment, error) {
	p, err := c.consume(token, TargetAssessment, sess.UserID)
	if err != nil {
		return nil, err
	}

	if err := c.gw.DeleteAssessment(ctx, p.targetID); err != nil {
		return nil, err
	}

	return c.gw.FetchAllAssessments(ctx)
}

// CreateUser performs a validated signup and re-fetches the user list after
// the backend accepts it.
func (c *Coordinator) CreateUser(ctx context.Context, user models.UserCreate) ([]models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := c.gw.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return c.gw.FetchUsers(ctx)
}

// SubmitAssessment runs the creation state machine for one session:
// editing -> submitting -> created, or back to editing on failure. While a
// session is in submitting, further submits are rejected instead of queued,
// which is what defuses double-click duplicates.
func (c *Coordinator) SubmitAssessment(ctx context.Context, sessionID string, draft gateway.AssessmentDraft) error {
	if draft.Title == "" {
		return errors.New("title is required")
	}

	c.submitMu.Lock()
	if c.submits[sessionID] {
		c.submitMu.Unlock()
		return ErrSubmitInFlight
	}
	c.submits[sessionID] = true
	c.submitMu.Unlock()

	defer func() {
		c.submitMu.Lock()
		delete(c.submits, sessionID)
		c.submitMu.Unlock()
	}()

	return c.gw.CreateAssessment(ctx, draft)
}
