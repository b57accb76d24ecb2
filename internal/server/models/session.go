package models

import "time"

// Session is the server-side record behind a session token. A token is only
// honoured while its row exists, is unexpired and has no RevokedAt.
type Session struct {
	ID           string
	UserID       string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	SecondFactor bool
	RevokedAt    *time.Time
}
