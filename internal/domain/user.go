package domain

import "time"

// User is an authenticated shop administrator.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

const RoleAdmin = "admin"

// Session is a server-side login record referenced by the token id.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
