package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/cache"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/google/uuid"
)

// Code is the machine-readable reason attached to a session operation
// result.
type Code string

const (
	CodeOK                Code = "ok"
	CodeConnectivity      Code = "connectivity"
	CodeWrongPassword     Code = "wrong_password"
	CodeNotFound          Code = "not_found"
	CodeAlreadyRegistered Code = "already_registered"
	CodeMigrationFailed   Code = "migration_failed"
	CodeNotAuthenticated  Code = "not_authenticated"
	CodeInternal          Code = "internal"
)

// Result is the structured outcome of a session operation. Raw
// collaborator errors never appear here; Message is safe to show to the
// user.
type Result struct {
	Success bool
	Code    Code
	Message string
}

func ok() Result {
	return Result{Success: true, Code: CodeOK}
}

func failure(code Code, message string) Result {
	return Result{Code: code, Message: message}
}

// failureFor maps an engine error onto a structured failure.
func failureFor(err error) Result {
	switch {
	case remote.IsConnectivity(err):
		return failure(CodeConnectivity,
			"The service could not be reached. Check your connection and server address, then try again.")
	case errors.Is(err, ErrWrongPassword):
		return failure(CodeWrongPassword, "Wrong password.")
	case errors.Is(err, ErrAccountNotFound):
		return failure(CodeNotFound, "No account found for this email.")
	case errors.Is(err, ErrAlreadyRegistered):
		return failure(CodeAlreadyRegistered, "This email is already registered. Log in instead.")
	case errors.Is(err, ErrMigrationFailed):
		return failure(CodeMigrationFailed, "Could not complete sign-in. Please try again.")
	case errors.Is(err, ErrNotAuthenticated):
		return failure(CodeNotAuthenticated, "You are not logged in.")
	default:
		return failure(CodeInternal, "Something went wrong. Please try again.")
	}
}

// Observer receives a copy of the session after every replacement or
// clear. Callbacks must not call back into the controller.
type Observer func(models.Session)

// SessionController owns the single live session and orchestrates the
// resolver, migrator and reconciler on login and registration. All
// state-changing operations are serialized by a mutex: the migrator's
// ghost recovery is not safe to run twice concurrently for one email.
type SessionController struct {
	mu      sync.Mutex
	session models.Session

	resolver   *CredentialResolver
	migrator   *AccountMigrator
	reconciler *OrderReconciler
	directory  remote.Directory
	docstore   remote.DocumentStore
	cache      *cache.Cache
	localOnly  bool
	logger     logging.Logger

	observers []Observer
}

func NewSessionController(resolver *CredentialResolver, migrator *AccountMigrator, reconciler *OrderReconciler,
	directory remote.Directory, docstore remote.DocumentStore, c *cache.Cache,
	localOnly bool, logger logging.Logger) *SessionController {
	return &SessionController{
		resolver:   resolver,
		migrator:   migrator,
		reconciler: reconciler,
		directory:  directory,
		docstore:   docstore,
		cache:      c,
		localOnly:  localOnly,
		logger:     logger.With("module", "session"),
	}
}

// Current returns a copy of the live session.
func (s *SessionController) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Subscribe registers an observer for session replacements.
func (s *SessionController) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// replaceSession swaps the session under the lock and returns the
// notification work to run after the lock is released.
func (s *SessionController) replaceSession(next models.Session) func() {
	s.session = next
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	snapshot := next.Clone()
	return func() {
		for _, fn := range observers {
			fn(snapshot.Clone())
		}
	}
}

// Restore replays the last persisted session snapshot, if any, so the
// process starts where the previous one left off.
func (s *SessionController) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.cache.Session(ctx)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if snapshot == nil {
		return nil
	}

	notify := s.replaceSession(*snapshot)
	s.mu.Unlock()
	notify()
	s.mu.Lock()
	return nil
}

// Login establishes identity through the resolver, migrates the account
// into missing tiers when needed, reconciles order history, and commits
// the new session.
func (s *SessionController) Login(ctx context.Context, email string, password []byte) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = common.NormalizeEmail(email)

	res, err := s.resolver.Resolve(ctx, email, password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "email", email, "error", err)
		return failureFor(err)
	}

	account, err := s.establishAccount(ctx, email, password, res)
	if err != nil {
		s.logger.Error(ctx, "login failed after resolution", "email", email, "tier", string(res.Tier), "error", err)
		return failureFor(err)
	}

	orders := s.reconcileOrders(ctx, account.ID, res.Tier)

	next := models.Session{Account: account, Orders: orders}
	if err := s.cache.SaveSession(ctx, next); err != nil {
		s.logger.Warn(ctx, "failed to persist session snapshot", "error", err)
	}

	notify := s.replaceSession(next)
	s.mu.Unlock()
	notify()
	s.mu.Lock()

	s.logger.Info(ctx, "login succeeded", "account_id", account.ID, "tier", string(res.Tier))
	return ok()
}

// establishAccount turns a resolution into the canonical account,
// running the migrator when the credential was discovered outside the
// directory or when the directory entry has no profile document.
func (s *SessionController) establishAccount(ctx context.Context, email string, password []byte, res *Resolution) (*models.Account, error) {
	switch {
	case res.NeedsMigration:
		return s.migrator.Migrate(ctx, res.Account, password)

	case res.Tier == TierDirectory:
		fallback, err := s.cache.Account(ctx, email)
		if err != nil {
			s.logger.Warn(ctx, "cache lookup failed, using minimal profile", "error", err)
		}
		if fallback == nil {
			fallback = &models.Account{Email: email}
		}
		return s.migrator.EnsureProfile(ctx, res.AccountID, fallback, password)

	default:
		// admin override or cache hit in local-only mode
		return res.Account, nil
	}
}

// reconcileOrders produces the unified order list for the account and
// pushes purely-local orders upward. Remote failures degrade to the
// cached history; they never fail a login that already authenticated.
func (s *SessionController) reconcileOrders(ctx context.Context, accountID string, tier Tier) []models.OrderRecord {
	local, err := s.cache.Orders(ctx, accountID)
	if err != nil {
		s.logger.Warn(ctx, "failed to read cached orders", "error", err)
	}

	if s.localOnly || tier == TierAdmin {
		return Reconcile(local, nil)
	}

	remoteOrders, err := s.reconciler.FetchRemote(ctx, accountID)
	if err != nil {
		s.logger.Warn(ctx, "failed to fetch remote orders, using cached history", "error", err)
		return Reconcile(local, nil)
	}

	merged := Reconcile(local, remoteOrders)

	if pushed := s.reconciler.PushLocalOnly(ctx, accountID, LocalOnly(local, remoteOrders)); pushed > 0 {
		s.logger.Info(ctx, "pushed local orders", "account_id", accountID, "count", pushed)
	}

	if err := s.cache.SaveOrders(ctx, accountID, merged); err != nil {
		s.logger.Warn(ctx, "failed to update cached orders", "error", err)
	}

	return merged
}

// Register creates a new account. When the normalized email already
// exists in the local cache under a different password the operation
// fails fast; no silent account takeover.
func (s *SessionController) Register(ctx context.Context, profile models.Account, password []byte) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Email = common.NormalizeEmail(profile.Email)

	cached, err := s.cache.Account(ctx, profile.Email)
	if err != nil {
		s.logger.Error(ctx, "cache lookup failed", "error", err)
		return failureFor(err)
	}
	if cached != nil {
		match, _ := cryptox.VerifyPassword(cached.CredentialHash, password)
		if !match {
			return failureFor(ErrAlreadyRegistered)
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return failureFor(err)
	}
	profile.CredentialHash = hash

	if s.localOnly {
		if cached != nil {
			profile.ID = cached.ID
		} else {
			profile.ID = models.NewProvisionalID()
		}
	} else {
		id, err := s.directory.CreateAccount(ctx, profile.Email, password)
		if err != nil {
			if errors.Is(err, remote.ErrEmailInUse) {
				return failureFor(ErrAlreadyRegistered)
			}
			s.logger.Warn(ctx, "registration failed", "email", profile.Email, "error", err)
			return failureFor(err)
		}
		profile.ID = id

		if err := s.docstore.Put(ctx, remote.CollectionAccounts, id, &profile); err != nil {
			s.logger.Error(ctx, "profile document write failed", "account_id", id, "error", err)
			return failureFor(fmt.Errorf("%w: %w", ErrMigrationFailed, err))
		}
	}

	if err := s.cache.SaveAccount(ctx, &profile); err != nil {
		s.logger.Warn(ctx, "failed to cache new account", "error", err)
	}

	// A re-registration under a fresh canonical id must carry the
	// orders and coupons cached under the previous id along with it.
	if cached != nil && cached.ID != profile.ID {
		if err := s.cache.MoveAccountData(ctx, cached.ID, profile.ID); err != nil {
			s.logger.Warn(ctx, "failed to re-key cached account data",
				"old_id", cached.ID, "new_id", profile.ID, "error", err)
		}
	}

	// The welcome coupon is a first-registration grant; a returning
	// account keeps the coupons that moved over with its history.
	if cached == nil {
		s.seedWelcomeCoupon(ctx, profile.ID)
	}

	next := models.Session{Account: &profile}
	if err := s.cache.SaveSession(ctx, next); err != nil {
		s.logger.Warn(ctx, "failed to persist session snapshot", "error", err)
	}

	notify := s.replaceSession(next)
	s.mu.Unlock()
	notify()
	s.mu.Lock()

	s.logger.Info(ctx, "registration succeeded", "account_id", profile.ID)
	return ok()
}

// seedWelcomeCoupon grants the one-time registration coupon. Best
// effort: a cache failure only loses the coupon, not the registration.
func (s *SessionController) seedWelcomeCoupon(ctx context.Context, accountID string) {
	coupon := models.Coupon{
		ID:          uuid.NewString(),
		Code:        "WELCOME10",
		Percent:     10,
		Description: "10% off your first order",
		Expires:     time.Now().AddDate(0, 3, 0),
	}
	if err := s.cache.SaveCoupons(ctx, accountID, []models.Coupon{coupon}); err != nil {
		s.logger.Warn(ctx, "failed to seed welcome coupon", "error", err)
	}
}

// Logout signs out of the directory, clears the live session and
// removes the session snapshot. Per-account caches are retained for
// future logins.
func (s *SessionController) Logout(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.localOnly {
		if err := s.directory.SignOut(ctx); err != nil {
			s.logger.Warn(ctx, "directory sign-out failed", "error", err)
		}
	}

	if err := s.cache.ClearSession(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear session snapshot", "error", err)
	}

	notify := s.replaceSession(models.Session{})
	s.mu.Unlock()
	notify()
	s.mu.Lock()

	return ok()
}

// UpdateProfile deep-merges the patch into the current account (address
// sub-fields merge field by field) and writes through to the local
// account directory. The profile document is updated best-effort.
func (s *SessionController) UpdateProfile(ctx context.Context, patch models.ProfilePatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAuthenticated() {
		return failureFor(ErrNotAuthenticated)
	}

	account := *s.session.Account
	patch.Apply(&account)

	if err := s.cache.SaveAccount(ctx, &account); err != nil {
		s.logger.Error(ctx, "failed to write account directory", "error", err)
		return failureFor(err)
	}

	if !s.localOnly && !account.IsProvisional() {
		if err := s.docstore.Put(ctx, remote.CollectionAccounts, account.ID, &account); err != nil {
			s.logger.Warn(ctx, "failed to update profile document", "error", err)
		}
	}

	next := s.session.Clone()
	next.Account = &account
	if err := s.cache.SaveSession(ctx, next); err != nil {
		s.logger.Warn(ctx, "failed to persist session snapshot", "error", err)
	}

	notify := s.replaceSession(next)
	s.mu.Unlock()
	notify()
	s.mu.Lock()

	return ok()
}

// AppendOrder assigns an order number and date to the draft, commits it
// to the in-memory session, and writes it best-effort to the document
// store and the per-account cache backup. Store failures are logged,
// not fatal: the order is already in the session and will be pushed on
// the next reconciliation.
func (s *SessionController) AppendOrder(ctx context.Context, draft models.OrderRecord) (*models.OrderRecord, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAuthenticated() {
		return nil, failureFor(ErrNotAuthenticated)
	}

	account := s.session.Account

	draft.OrderNumber = NewOrderNumber()
	draft.Date = time.Now().UTC()
	draft.AccountID = account.ID
	if draft.Status == "" {
		draft.Status = models.OrderStatusPending
	}
	if (draft.ShippingAddress == models.Address{}) {
		draft.ShippingAddress = account.Address
	}

	next := s.session.Clone()
	next.Orders = append([]models.OrderRecord{draft}, next.Orders...)

	if !s.localOnly && !account.IsProvisional() {
		if err := s.docstore.Put(ctx, remote.CollectionOrders, draft.OrderNumber, &draft); err != nil {
			s.logger.Warn(ctx, "failed to push order, will retry on next reconciliation",
				"order_number", draft.OrderNumber, "error", err)
		}
	}

	if err := s.cache.SaveOrders(ctx, account.ID, next.Orders); err != nil {
		s.logger.Warn(ctx, "failed to back up order locally",
			"order_number", draft.OrderNumber, "error", err)
	}

	if err := s.cache.SaveSession(ctx, next); err != nil {
		s.logger.Warn(ctx, "failed to persist session snapshot", "error", err)
	}

	notify := s.replaceSession(next)
	s.mu.Unlock()
	notify()
	s.mu.Lock()

	s.logger.Info(ctx, "order placed", "order_number", draft.OrderNumber, "account_id", account.ID)
	return &draft, ok()
}

// NewOrderNumber generates a globally unique order number. Order
// numbers key orders in the document store across all accounts, so the
// full UUID is kept; a truncated suffix would collide at scale.
func NewOrderNumber() string {
	return "DL-" + strings.ToUpper(uuid.NewString())
}
