package models

import "time"

// Credentials is the locally stored login of the remote repository.
type Credentials struct {
	// Username is the remote account name.
	Username string

	// SealedPassword is the password encrypted by the credential sealer.
	// The plaintext password is never persisted.
	SealedPassword string

	// Token is the last bearer token issued by the remote, empty when none.
	Token string

	// UpdatedAt is when the row was last written.
	UpdatedAt time.Time
}

// HasToken reports whether a bearer token is cached.
func (c Credentials) HasToken() bool {
	return c.Token != ""
}
