package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/cache"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// Tier identifies which storage layer recognized a credential.
type Tier string

const (
	TierAdmin     Tier = "admin"
	TierDirectory Tier = "directory"
	TierDocStore  Tier = "docstore"
	TierCache     Tier = "cache"
)

// Resolution is the outcome of a successful credential resolution.
// When NeedsMigration is set, Account holds the migration candidate
// discovered outside the directory; otherwise AccountID is the
// canonical id (TierDirectory) or Account is complete (TierAdmin,
// TierCache in local-only mode).
type Resolution struct {
	Tier           Tier
	AccountID      string
	Account        *models.Account
	NeedsMigration bool
}

// checkResult is the tagged outcome of a single tier check. Exactly one
// of the three shapes applies: a hit (resolution set), a miss (fall
// through to the next tier), or a terminal error that aborts the chain.
type checkResult struct {
	resolution *Resolution
	miss       bool
	err        error
}

func hit(r *Resolution) checkResult { return checkResult{resolution: r} }
func miss() checkResult             { return checkResult{miss: true} }
func abort(err error) checkResult   { return checkResult{err: err} }

type tierCheck struct {
	name string
	run  func(ctx context.Context, email string, password []byte) checkResult
}

// CredentialResolver determines which tier recognizes an email/password
// pair. The tier checks form a deliberate trust hierarchy: operator
// override first, then the live directory (authoritative when
// reachable), then the document store and the local cache. Anything
// found outside the directory is reported as a migration candidate,
// never accepted as a permanent alternate identity.
type CredentialResolver struct {
	directory remote.Directory
	docstore  remote.DocumentStore
	cache     *cache.Cache
	logger    logging.Logger

	localOnly         bool
	adminEmail        string
	adminPasswordHash string
}

func NewCredentialResolver(directory remote.Directory, docstore remote.DocumentStore, c *cache.Cache,
	localOnly bool, adminEmail, adminPasswordHash string, logger logging.Logger) *CredentialResolver {
	return &CredentialResolver{
		directory:         directory,
		docstore:          docstore,
		cache:             c,
		localOnly:         localOnly,
		adminEmail:        common.NormalizeEmail(adminEmail),
		adminPasswordHash: adminPasswordHash,
		logger:            logger.With("module", "resolver"),
	}
}

// Resolve walks the ordered tier checks. The first hit wins; a miss
// moves to the next check; a terminal error stops the chain. When no
// tier recognizes the credential, ErrAccountNotFound is returned.
func (r *CredentialResolver) Resolve(ctx context.Context, email string, password []byte) (*Resolution, error) {
	email = common.NormalizeEmail(email)

	for _, check := range r.checks() {
		result := check.run(ctx, email, password)
		if result.err != nil {
			return nil, fmt.Errorf("%s: %w", check.name, result.err)
		}
		if !result.miss {
			return result.resolution, nil
		}
	}

	return nil, ErrAccountNotFound
}

func (r *CredentialResolver) checks() []tierCheck {
	if r.localOnly {
		return []tierCheck{
			{"admin", r.checkAdmin},
			{"cache", r.checkCacheLocalOnly},
		}
	}
	return []tierCheck{
		{"admin", r.checkAdmin},
		{"directory", r.checkDirectory},
		{"docstore", r.checkDocStore},
		{"cache", r.checkCache},
	}
}

// checkAdmin compares against the configured operator credential. Both
// comparisons are constant-time; no remote call is involved.
func (r *CredentialResolver) checkAdmin(ctx context.Context, email string, password []byte) checkResult {
	if r.adminEmail == "" || r.adminPasswordHash == "" {
		return miss()
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(r.adminEmail)) == 1

	ok, err := cryptox.VerifyPassword(r.adminPasswordHash, password)
	if err != nil {
		r.logger.Error(ctx, "admin credential hash is malformed", "error", err)
		return miss()
	}
	if !emailMatch || !ok {
		return miss()
	}

	return hit(&Resolution{
		Tier:      TierAdmin,
		AccountID: "admin",
		Account:   &models.Account{ID: "admin", Email: r.adminEmail, Name: "Administrator"},
	})
}

// checkDirectory attempts live verification. The directory's answer is
// authoritative: a connectivity failure aborts the chain (no silent
// fallback), a credential failure falls through to the lower tiers.
func (r *CredentialResolver) checkDirectory(ctx context.Context, email string, password []byte) checkResult {
	id, err := r.directory.Verify(ctx, email, password)
	if err != nil {
		if remote.IsConnectivity(err) {
			return abort(err)
		}
		if remote.IsCredential(err) {
			return miss()
		}
		return abort(err)
	}

	return hit(&Resolution{Tier: TierDirectory, AccountID: id})
}

// checkDocStore looks for a profile document by email. A matching
// stored hash makes the account a migration candidate; a mismatch is a
// terminal wrong-password failure with no further fallback: the
// account exists, the password is wrong.
func (r *CredentialResolver) checkDocStore(ctx context.Context, email string, password []byte) checkResult {
	docs, err := r.docstore.Query(ctx, remote.CollectionAccounts, "email", email)
	if err != nil {
		// the directory already gave a credential verdict;
		// a failing document query only skips one discovery tier
		r.logger.Warn(ctx, "document store query failed, skipping tier", "error", err)
		return miss()
	}
	if len(docs) == 0 {
		return miss()
	}

	var acc models.Account
	if err := json.Unmarshal(docs[0], &acc); err != nil {
		r.logger.Warn(ctx, "skipping malformed profile document", "error", err)
		return miss()
	}

	ok, err := cryptox.VerifyPassword(acc.CredentialHash, password)
	if err != nil || !ok {
		return abort(ErrWrongPassword)
	}

	return hit(&Resolution{Tier: TierDocStore, Account: &acc, NeedsMigration: true})
}

// checkCache searches the local account directory. A hit outside
// local-only mode is always a migration candidate.
func (r *CredentialResolver) checkCache(ctx context.Context, email string, password []byte) checkResult {
	res := r.lookupCache(ctx, email, password)
	if res == nil {
		return miss()
	}
	res.NeedsMigration = true
	return hit(res)
}

// checkCacheLocalOnly serves logins entirely from the cache when the
// directory is unconfigured or local-only mode is enabled.
func (r *CredentialResolver) checkCacheLocalOnly(ctx context.Context, email string, password []byte) checkResult {
	res := r.lookupCache(ctx, email, password)
	if res == nil {
		return miss()
	}
	return hit(res)
}

func (r *CredentialResolver) lookupCache(ctx context.Context, email string, password []byte) *Resolution {
	acc, err := r.cache.Account(ctx, email)
	if err != nil {
		r.logger.Error(ctx, "cache lookup failed", "error", err)
		return nil
	}
	if acc == nil || acc.CredentialHash == "" {
		return nil
	}

	ok, err := cryptox.VerifyPassword(acc.CredentialHash, password)
	if err != nil || !ok {
		return nil
	}

	return &Resolution{Tier: TierCache, AccountID: acc.ID, Account: acc}
}
