package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/cache"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// AccountMigrator promotes an account discovered outside the auth
// directory into every missing tier. Migration is idempotent: running it
// for an account that already lives in all tiers just returns the
// canonical record.
type AccountMigrator struct {
	directory remote.Directory
	docstore  remote.DocumentStore
	cache     *cache.Cache
	logger    logging.Logger
}

func NewAccountMigrator(directory remote.Directory, docstore remote.DocumentStore, c *cache.Cache, logger logging.Logger) *AccountMigrator {
	return &AccountMigrator{
		directory: directory,
		docstore:  docstore,
		cache:     c,
		logger:    logger.With("module", "migrator"),
	}
}

// Migrate guarantees the candidate exists in the directory, the document
// store and the local cache under one canonical id.
//
// The directory entry is created first; an EMAIL_IN_USE answer means a
// prior migration got at least that far, so the existing entry is
// claimed by authenticating instead. If a profile document already
// exists under the directory id, another run completed the migration
// and that document is adopted as-is. Otherwise the entry is a ghost
// and a profile document is written for it. A failure there is fatal
// to the attempt, because the engine must never mint a new directory
// entry and then leave it documentless.
func (m *AccountMigrator) Migrate(ctx context.Context, candidate *models.Account, password []byte) (*models.Account, error) {
	id, err := m.directory.CreateAccount(ctx, candidate.Email, password)
	if err != nil {
		if !errors.Is(err, remote.ErrEmailInUse) {
			return nil, fmt.Errorf("creating directory entry: %w", err)
		}

		id, err = m.directory.Verify(ctx, candidate.Email, password)
		if err != nil {
			if remote.IsCredential(err) {
				// directory entry exists with different credentials;
				// nothing to claim
				return nil, ErrWrongPassword
			}
			return nil, fmt.Errorf("claiming directory entry: %w", err)
		}

		var existing models.Account
		found, err := m.docstore.Get(ctx, remote.CollectionAccounts, id, &existing)
		if err != nil {
			return nil, fmt.Errorf("checking for existing profile: %w", err)
		}
		if found {
			// another run already finished; adopt its result
			return m.adopt(ctx, candidate.ID, &existing)
		}
		m.logger.Info(ctx, "recovering ghost directory entry", "account_id", id)
	}

	return m.writeProfile(ctx, candidate, id, password)
}

// EnsureProfile guarantees a profile document exists for a directory id
// that already authenticated. Used on the direct login path when the
// directory recognizes the credential but no document exists (a detected
// ghost): the fallback record, typically the cached account or a
// minimal profile built from the email, becomes the document.
func (m *AccountMigrator) EnsureProfile(ctx context.Context, id string, fallback *models.Account, password []byte) (*models.Account, error) {
	var existing models.Account
	found, err := m.docstore.Get(ctx, remote.CollectionAccounts, id, &existing)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if found {
		return m.adopt(ctx, fallback.ID, &existing)
	}

	m.logger.Info(ctx, "no profile document for directory account, creating one", "account_id", id)
	return m.writeProfile(ctx, fallback, id, password)
}

// writeProfile writes the candidate's profile document under the
// directory id and updates the local account directory to the canonical
// id. A document write failure surfaces as ErrMigrationFailed.
func (m *AccountMigrator) writeProfile(ctx context.Context, candidate *models.Account, id string, password []byte) (*models.Account, error) {
	canonical := *candidate
	oldID := candidate.ID
	canonical.ID = id

	if canonical.CredentialHash == "" {
		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMigrationFailed, err)
		}
		canonical.CredentialHash = hash
	}

	// A candidate discovered in the document store keeps its old
	// document under the previous key: the store contract has no
	// delete. Resolution always prefers the directory tier, so the
	// stale copy is never read again once this write lands.
	if err := m.docstore.Put(ctx, remote.CollectionAccounts, id, &canonical); err != nil {
		return nil, fmt.Errorf("%w: writing profile document: %w", ErrMigrationFailed, err)
	}

	if err := m.updateCache(ctx, oldID, &canonical); err != nil {
		// remote tiers are consistent at this point; a cache failure
		// will be repaired on the next login
		m.logger.Warn(ctx, "failed to update local cache after migration", "error", err)
	}

	m.logger.Info(ctx, "account migrated", "account_id", id)
	return &canonical, nil
}

// adopt takes a completed profile document as the canonical account and
// aligns the local cache with it.
func (m *AccountMigrator) adopt(ctx context.Context, oldID string, canonical *models.Account) (*models.Account, error) {
	if err := m.updateCache(ctx, oldID, canonical); err != nil {
		m.logger.Warn(ctx, "failed to update local cache after adoption", "error", err)
	}
	return canonical, nil
}

func (m *AccountMigrator) updateCache(ctx context.Context, oldID string, canonical *models.Account) error {
	if err := m.cache.SaveAccount(ctx, canonical); err != nil {
		return err
	}
	if oldID != "" && oldID != canonical.ID {
		return m.cache.MoveAccountData(ctx, oldID, canonical.ID)
	}
	return nil
}
