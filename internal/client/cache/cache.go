package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

// Cache wraps a Store with the engine's key layout:
//
//	account:<normalized email>  one account record (the account directory)
//	orders:<account id>         per-account order backup
//	coupons:<account id>        per-account coupon list
//	session                     current-session snapshot
type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

const sessionKey = "session"

func accountKey(email string) string { return "account:" + common.NormalizeEmail(email) }
func ordersKey(accountID string) string { return "orders:" + accountID }
func couponsKey(accountID string) string { return "coupons:" + accountID }

func (c *Cache) getJSON(ctx context.Context, key string, out any) (bool, error) {
	b, err := c.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("failed to decode cache[%s]: %w", key, err)
	}
	return true, nil
}

func (c *Cache) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache[%s]: %w", key, err)
	}
	return c.store.Set(ctx, key, b)
}

// Account returns the cached account record for the email, or
// (nil, nil) when none is cached.
func (c *Cache) Account(ctx context.Context, email string) (*models.Account, error) {
	var acc models.Account
	found, err := c.getJSON(ctx, accountKey(email), &acc)
	if err != nil || !found {
		return nil, err
	}
	return &acc, nil
}

// SaveAccount stores the account record under its normalized email,
// replacing any previous record for that email. Replacing (rather than
// adding a second record) is what collapses a provisional id to the
// canonical one during migration.
func (c *Cache) SaveAccount(ctx context.Context, acc *models.Account) error {
	return c.setJSON(ctx, accountKey(acc.Email), acc)
}

// Orders returns the cached order backup for the account. A missing key
// yields an empty slice.
func (c *Cache) Orders(ctx context.Context, accountID string) ([]models.OrderRecord, error) {
	var orders []models.OrderRecord
	if _, err := c.getJSON(ctx, ordersKey(accountID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrders replaces the cached order backup for the account.
func (c *Cache) SaveOrders(ctx context.Context, accountID string, orders []models.OrderRecord) error {
	return c.setJSON(ctx, ordersKey(accountID), orders)
}

// Coupons returns the cached coupon list for the account.
func (c *Cache) Coupons(ctx context.Context, accountID string) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if _, err := c.getJSON(ctx, couponsKey(accountID), &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// SaveCoupons replaces the cached coupon list for the account.
func (c *Cache) SaveCoupons(ctx context.Context, accountID string, coupons []models.Coupon) error {
	return c.setJSON(ctx, couponsKey(accountID), coupons)
}

// MoveAccountData re-keys the per-account order and coupon records from
// oldID to newID. Used when migration collapses a provisional id to the
// canonical one so cached history stays reachable.
func (c *Cache) MoveAccountData(ctx context.Context, oldID, newID string) error {
	if oldID == newID {
		return nil
	}

	orders, err := c.Orders(ctx, oldID)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		for i := range orders {
			orders[i].AccountID = newID
		}
		if err := c.SaveOrders(ctx, newID, orders); err != nil {
			return err
		}
		if err := c.store.Remove(ctx, ordersKey(oldID)); err != nil {
			return err
		}
	}

	coupons, err := c.Coupons(ctx, oldID)
	if err != nil {
		return err
	}
	if len(coupons) > 0 {
		if err := c.SaveCoupons(ctx, newID, coupons); err != nil {
			return err
		}
		if err := c.store.Remove(ctx, couponsKey(oldID)); err != nil {
			return err
		}
	}

	return nil
}

// Session returns the last persisted session snapshot, or (nil, nil)
// when none exists.
func (c *Cache) Session(ctx context.Context) (*models.Session, error) {
	var s models.Session
	found, err := c.getJSON(ctx, sessionKey, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

// SaveSession persists the current-session snapshot.
func (c *Cache) SaveSession(ctx context.Context, s models.Session) error {
	return c.setJSON(ctx, sessionKey, s)
}

// ClearSession removes only the current-session key. Per-account order
// and coupon records are retained for future logins.
func (c *Cache) ClearSession(ctx context.Context) error {
	return c.store.Remove(ctx, sessionKey)
}
