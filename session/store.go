package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"VinavalPortal/models"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the well-known key the serialized session lives under.
// Anything missing or unparseable at that key is treated as "not logged in".
const CookieName = "portal_session"

var ErrNoSession = errors.New("no active session")

// resetTTL bounds how long a first-login identity may complete its password
// reset before having to log in again.
const resetTTL = 15 * time.Minute

type Store struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Store) Issue(sess models.Session) (string, error) {
	return s.issue(sess, s.ttl)
}

// IssuePendingReset signs a short-lived token carrying an upstream-verified
// identity that still owes a password reset. It is not a session: guards
// refuse it, and its only use is authenticating the reset call itself.
func (s *Store) IssuePendingReset(sess models.Session) (string, error) {
	sess.FirstLogin = true
	return s.issue(sess, resetTTL)
}

func (s *Store) issue(sess models.Session, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":     sess.UserID,
		"name":        sess.Name,
		"email":       sess.Email,
		"role":        string(sess.Role),
		"first_login": sess.FirstLogin,
		"exp":         now.Add(ttl).Unix(),
		"iat":         now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Store) Decode(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrNoSession
	}

	role, ok := claims["role"].(string)
	if !ok || !models.Role(role).Valid() {
		return nil, ErrNoSession
	}

	sess := &models.Session{
		UserID: userID,
		Role:   models.Role(role),
	}
	if name, ok := claims["name"].(string); ok {
		sess.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if first, ok := claims["first_login"].(bool); ok {
		sess.FirstLogin = first
	}
	return sess, nil
}

// Load reads the session cookie from the request. Absence and parse failure
// are indistinguishable to callers: both mean ErrNoSession.
func (s *Store) Load(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	return s.Decode(cookie.Value)
}

func (s *Store) Save(w http.ResponseWriter, sess models.Session) error {
	token, err := s.Issue(sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.now().Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
