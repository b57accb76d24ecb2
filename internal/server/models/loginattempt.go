package models

import "time"

// LoginAttempt is one row of the authentication audit trail. Reason holds
// the internal failure kind and is never shown to the caller.
type LoginAttempt struct {
	ID         int64
	UserID     string
	Email      string
	Success    bool
	Reason     string
	RemoteAddr string
	CreatedAt  time.Time
}
