package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Handlers define separate response types with their own JSON
// shapes; these structs mirror columns for the repository layer.
//
// Fields:
//
//	ID              - primary key identifier of the user.
//	Email           - unique email address.
//	PasswordHash    - bcrypt hashed password.
//	FullName        - optional display name.
//	Role            - role name (CUSTOMER or OWNER).
//	IsActive        - whether the account is active.
//	EmailVerifiedAt - when the email OTP was confirmed (nil = unverified).
//	CreatedAt       - timestamp of creation.
//	UpdatedAt       - timestamp of last update.
type User struct {
	ID              uint64     // users.id
	Email           string     // users.email
	PasswordHash    string     // users.password_hash
	FullName        string     // users.full_name
	Role            string     // users.role
	IsActive        bool       // users.is_active
	EmailVerifiedAt *time.Time // users.email_verified_at (nullable)
	CreatedAt       time.Time  // users.created_at
	UpdatedAt       time.Time  // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each refresh
// token belongs to a user and carries expiry and revocation metadata.  The
// plain token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

// PasswordResetToken models a one-time password reset token.  Tokens are
// short-lived (15 minutes) and consumed on use; only the SHA-256 hash of
// the raw value is persisted.
type PasswordResetToken struct {
	ID        uint64    // password_reset_tokens.id
	UserID    uint64    // password_reset_tokens.user_id
	TokenHash string    // password_reset_tokens.token_hash
	ExpiresAt time.Time // password_reset_tokens.expires_at
	CreatedAt time.Time // password_reset_tokens.created_at
}
