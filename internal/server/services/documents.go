package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
)

// DocumentService is the document store: JSON documents keyed per
// collection, queryable by one top-level field.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager) *DocumentService {
	return &DocumentService{db: db, repomanager: m}
}

// Put validates that body is a JSON object and stores it.
func (s *DocumentService) Put(ctx context.Context, collection, key string, body []byte) error {
	if collection == "" || key == "" {
		return fmt.Errorf("collection and key are required")
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("document body must be a JSON object: %w", err)
	}

	return s.repomanager.Documents(s.db).Upsert(ctx, collection, key, body)
}

// Get returns the document and whether it exists.
func (s *DocumentService) Get(ctx context.Context, collection, key string) ([]byte, bool, error) {
	body, err := s.repomanager.Documents(s.db).Get(ctx, collection, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return body, true, nil
}

// Query returns the documents whose top-level field equals value.
func (s *DocumentService) Query(ctx context.Context, collection, field, value string) ([][]byte, error) {
	return s.repomanager.Documents(s.db).QueryByField(ctx, collection, field, value)
}
