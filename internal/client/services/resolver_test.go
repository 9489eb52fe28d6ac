package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AdminOverrideWinsFirst(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrUnavailable}
	ds := newFakeDocStore()

	r := NewCredentialResolver(dir, ds, c, false, "admin@shop.local", mustHash(t, "admin-pw"), testLogger())

	res, err := r.Resolve(context.Background(), "Admin@Shop.Local", []byte("admin-pw"))
	require.NoError(t, err)

	assert.Equal(t, TierAdmin, res.Tier)
	assert.False(t, res.NeedsMigration)
	assert.Equal(t, "admin", res.Account.ID)
	// the unreachable directory was never consulted
	assert.Equal(t, 0, dir.VerifyCalls)
}

func TestResolve_DirectoryHit(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyRet: "id-123"}
	ds := newFakeDocStore()

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	res, err := r.Resolve(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, TierDirectory, res.Tier)
	assert.Equal(t, "id-123", res.AccountID)
	assert.False(t, res.NeedsMigration)
}

func TestResolve_DirectoryUnavailableAbortsChain(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrUnavailable}
	ds := newFakeDocStore()
	// a lower tier would recognize the credential, but must not be reached
	ds.seed(t, remote.CollectionAccounts, "id-1", &models.Account{
		ID: "id-1", Email: "user@example.com", CredentialHash: mustHash(t, "pw"),
	})

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	_, err := r.Resolve(context.Background(), "user@example.com", []byte("pw"))
	require.Error(t, err)
	assert.True(t, remote.IsConnectivity(err))
}

func TestResolve_DocStoreCandidate(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrAccountNotFound}
	ds := newFakeDocStore()
	ds.seed(t, remote.CollectionAccounts, "id-7", &models.Account{
		ID: "id-7", Email: "user@example.com", Name: "User", CredentialHash: mustHash(t, "pw"),
	})

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	res, err := r.Resolve(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, TierDocStore, res.Tier)
	assert.True(t, res.NeedsMigration)
	require.NotNil(t, res.Account)
	assert.Equal(t, "id-7", res.Account.ID)
}

func TestResolve_DocStoreWrongPasswordIsTerminal(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrAccountNotFound}
	ds := newFakeDocStore()
	ds.seed(t, remote.CollectionAccounts, "id-7", &models.Account{
		ID: "id-7", Email: "user@example.com", CredentialHash: mustHash(t, "correct-pw"),
	})
	// the cache also knows the account; it must not be offered as a fallback
	require.NoError(t, c.SaveAccount(context.Background(), &models.Account{
		ID: "id-7", Email: "user@example.com", CredentialHash: mustHash(t, "wrong-pw"),
	}))

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	_, err := r.Resolve(context.Background(), "user@example.com", []byte("wrong-pw"))
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestResolve_CacheCandidate(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrAccountNotFound}
	ds := newFakeDocStore()
	require.NoError(t, c.SaveAccount(context.Background(), &models.Account{
		ID: "local-abc", Email: "user@example.com", CredentialHash: mustHash(t, "pw"),
	}))

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	res, err := r.Resolve(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, TierCache, res.Tier)
	assert.True(t, res.NeedsMigration)
	assert.Equal(t, "local-abc", res.AccountID)
}

func TestResolve_NoTierRecognizes(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrAccountNotFound}
	ds := newFakeDocStore()

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	_, err := r.Resolve(context.Background(), "nobody@example.com", []byte("pw"))
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestResolve_LocalOnlySkipsRemoteTiers(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrUnavailable}
	ds := newFakeDocStore()
	require.NoError(t, c.SaveAccount(context.Background(), &models.Account{
		ID: "local-abc", Email: "user@example.com", CredentialHash: mustHash(t, "pw"),
	}))

	r := NewCredentialResolver(dir, ds, c, true, "", "", testLogger())

	res, err := r.Resolve(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, TierCache, res.Tier)
	assert.False(t, res.NeedsMigration)
	assert.Equal(t, 0, dir.VerifyCalls)
}

func TestResolve_NormalizesEmail(t *testing.T) {
	c := setupCache(t)
	dir := &fakeDirectory{VerifyErr: remote.ErrAccountNotFound}
	ds := newFakeDocStore()
	require.NoError(t, c.SaveAccount(context.Background(), &models.Account{
		ID: "local-abc", Email: "user@example.com", CredentialHash: mustHash(t, "pw"),
	}))

	r := NewCredentialResolver(dir, ds, c, false, "", "", testLogger())

	res, err := r.Resolve(context.Background(), "  USER@Example.COM ", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, TierCache, res.Tier)
}
