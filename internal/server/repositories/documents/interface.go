package documents

import "context"

type Repository interface {
	// Upsert stores body under collection/key, replacing any previous
	// document.
	Upsert(ctx context.Context, collection, key string, body []byte) error

	// Get returns the document under collection/key, or
	// common.ErrorNotFound.
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// QueryByField returns the documents in collection whose top-level
	// field equals value.
	QueryByField(ctx context.Context, collection, field, value string) ([][]byte, error)
}
