// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered account.
type User struct {
	// ID is the store-generated identifier, rendered as a string.
	ID string

	// Email identifies the account. It is unique and compared case-sensitively.
	Email string

	// Password is the bcrypt hash of the user's password, never the plaintext.
	Password string
}
