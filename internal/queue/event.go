// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a successful registration.  The
// mail consumer picks it up and delivers the verification code, so a slow
// or down SMTP server never blocks the registration request.  The code is
// carried raw because only its hash lives in Redis.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Code         string `json:"code"`
	RegisteredAt string `json:"registered_at"`
}
