package models

import (
	"time"
)

// Session is one unlocked dashboard view, keyed by an opaque token held in
// an HttpOnly cookie.
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

const SessionCookieName = "dashboard_session"

const SessionTTL = time.Hour
