// Package services contains the reconciliation engine: credential
// resolution across tiers, account migration into missing tiers, order
// history reconciliation, and the session controller that orchestrates
// them.
package services

import "errors"

// Engine-level sentinel errors. Collaborator errors are reclassified
// into these (or into the remote package's connectivity errors) at the
// resolver/migrator boundary; nothing rawer escapes to the controller.
var (
	ErrWrongPassword     = errors.New("wrong password")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrMigrationFailed   = errors.New("migration failed")
	ErrNotAuthenticated  = errors.New("not authenticated")
)
