package models

// Session is the authenticated identity cached on the client side and checked
// before every protected view renders.
type Session struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	FirstLogin bool   `json:"first_login"`
}
