// Package remote defines the two remote collaborator contracts the
// engine orchestrates over, the auth directory and the document store,
// together with the typed error taxonomy their implementations must map
// transport failures into, and a gRPC implementation of both.
package remote

import (
	"context"
	"encoding/json"
)

// Directory is the remote auth directory: it issues and verifies
// email/password credentials and returns an opaque stable account id.
//
// Implementations must return the sentinel errors from errors.go so
// callers can classify failures into connectivity vs credential without
// inspecting messages.
type Directory interface {
	// CreateAccount registers new credentials and returns the issued
	// canonical account id. Returns ErrEmailInUse when the email is
	// already registered.
	CreateAccount(ctx context.Context, email string, password []byte) (string, error)

	// Verify checks credentials and returns the canonical account id.
	// Returns ErrInvalidCredential or ErrAccountNotFound on credential
	// failures, ErrUnavailable on connectivity failures.
	Verify(ctx context.Context, email string, password []byte) (string, error)

	// SignOut invalidates the current credentials, if any. Safe to call
	// when not signed in.
	SignOut(ctx context.Context) error

	// Ping checks directory reachability.
	Ping(ctx context.Context) error
}

// DocumentStore persists JSON documents keyed per collection and allows
// equality queries on a single top-level field.
type DocumentStore interface {
	// Put marshals doc to JSON and stores it under collection/key,
	// replacing any previous document.
	Put(ctx context.Context, collection, key string, doc any) error

	// Get unmarshals the document under collection/key into out.
	// Returns (false, nil) when no document exists.
	Get(ctx context.Context, collection, key string, out any) (bool, error)

	// Query returns the raw documents in collection whose top-level
	// field equals value.
	Query(ctx context.Context, collection, field, value string) ([]json.RawMessage, error)
}

// Collection names used by the engine in the document store.
const (
	CollectionAccounts = "accounts"
	CollectionOrders   = "orders"
)
