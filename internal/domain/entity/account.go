// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record behind a login identity. It is created once
// at signup and never mutated by the auth subsystem afterwards.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account; also the subject of issued tokens.
	Email        string    // Login identifier, stored lowercased. Unique across all accounts.
	PasswordHash string    // bcrypt hash of the password. The plaintext never leaves the signup/login path.
	EntryDate    time.Time // Timestamp of when the account was created, assigned by the database.
}
