// Package models defines the server-side persistence types.
package models

import "time"

// DirectoryUser is one auth-directory entry: the credential record the
// directory verifies against. The id it carries is the canonical
// account id clients converge on.
type DirectoryUser struct {
	ID           string
	Email        string
	PasswordHash string
}

// RefreshToken is one issued refresh token.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
