package entity

import "time"

// Caller is an identity resolved from an external messaging-platform user id.
// Role starts as guest and becomes staff on first successful registration.
// Re-registration overwrites name and department only (upsert semantics).
type Caller struct {
	ExternalId  string
	DisplayName string
	Department  string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
