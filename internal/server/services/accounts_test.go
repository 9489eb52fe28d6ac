package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shopkeeper/internal/server/config"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/documents"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
}

// ---- fake repositories ----

type fakeUsersRepo struct {
	createErr error
	getOut    *models.DirectoryUser
	getErr    error

	lastCreated *models.DirectoryUser
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.DirectoryUser) (*models.DirectoryUser, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.DirectoryUser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTokensRepo struct {
	createErr error
	findOut   *models.RefreshToken
	findErr   error
	delErr    error

	created []string
	deleted []string
}

func (f *fakeTokensRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeTokensRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeTokensRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeRepoManager struct {
	users  users.Repository
	tokens refreshtokens.Repository
	docs   documents.Repository
}

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return f.users }
func (f *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository { return f.tokens }
func (f *fakeRepoManager) Documents(db dbx.DBTX) documents.Repository         { return f.docs }
func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

// ---- tests ----

func TestRegister(t *testing.T) {
	db, _ := newMockDB(t)
	ur := &fakeUsersRepo{}
	tr := &fakeTokensRepo{}
	s := NewAccountService(db, &fakeRepoManager{users: ur, tokens: tr}, testConfig())

	id, tokens, err := s.Register(context.Background(), " User@Example.COM ", []byte("pw"))
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Len(t, tr.created, 1)

	require.NotNil(t, ur.lastCreated)
	assert.Equal(t, "user@example.com", ur.lastCreated.Email)

	// the stored credential is a verifiable hash, not the password
	assert.NotEqual(t, "pw", ur.lastCreated.PasswordHash)
	ok, err := cryptox.VerifyPassword(ur.lastCreated.PasswordHash, []byte("pw"))
	require.NoError(t, err)
	assert.True(t, ok)

	// the issued access token carries the new account id
	got, err := auth.GetUserIDFromToken(tokens.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestRegister_EmailInUse(t *testing.T) {
	db, _ := newMockDB(t)
	ur := &fakeUsersRepo{createErr: common.ErrorEmailInUse}
	s := NewAccountService(db, &fakeRepoManager{users: ur, tokens: &fakeTokensRepo{}}, testConfig())

	_, _, err := s.Register(context.Background(), "user@example.com", []byte("pw"))
	require.ErrorIs(t, err, common.ErrorEmailInUse)
}

func TestLogin(t *testing.T) {
	db, _ := newMockDB(t)
	hash, err := cryptox.HashPassword([]byte("pw"))
	require.NoError(t, err)
	ur := &fakeUsersRepo{getOut: &models.DirectoryUser{ID: "id-1", Email: "user@example.com", PasswordHash: hash}}
	tr := &fakeTokensRepo{}
	s := NewAccountService(db, &fakeRepoManager{users: ur, tokens: tr}, testConfig())

	id, tokens, err := s.Login(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newMockDB(t)
	hash, err := cryptox.HashPassword([]byte("correct"))
	require.NoError(t, err)
	ur := &fakeUsersRepo{getOut: &models.DirectoryUser{ID: "id-1", PasswordHash: hash}}
	s := NewAccountService(db, &fakeRepoManager{users: ur, tokens: &fakeTokensRepo{}}, testConfig())

	_, _, err = s.Login(context.Background(), "user@example.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownAccount(t *testing.T) {
	db, _ := newMockDB(t)
	ur := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s := NewAccountService(db, &fakeRepoManager{users: ur, tokens: &fakeTokensRepo{}}, testConfig())

	_, _, err := s.Login(context.Background(), "nobody@example.com", []byte("pw"))
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRefreshToken_Rotates(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	tr := &fakeTokensRepo{findOut: &models.RefreshToken{
		UserID: "id-1", Token: "rt-old", Expires: time.Now().Add(time.Hour),
	}}
	s := NewAccountService(db, &fakeRepoManager{tokens: tr}, testConfig())

	tokens, err := s.RefreshToken(context.Background(), "rt-old")
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, "rt-old", tokens.RefreshToken)
	assert.Equal(t, []string{"rt-old"}, tr.deleted)
	assert.Equal(t, []string{tokens.RefreshToken}, tr.created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newMockDB(t)
	tr := &fakeTokensRepo{findOut: &models.RefreshToken{
		UserID: "id-1", Token: "rt-old", Expires: time.Now().Add(-time.Minute),
	}}
	s := NewAccountService(db, &fakeRepoManager{tokens: tr}, testConfig())

	_, err := s.RefreshToken(context.Background(), "rt-old")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newMockDB(t)
	tr := &fakeTokensRepo{findErr: common.ErrorNotFound}
	s := NewAccountService(db, &fakeRepoManager{tokens: tr}, testConfig())

	_, err := s.RefreshToken(context.Background(), "rt-unknown")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_DeleteFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	tr := &fakeTokensRepo{
		findOut: &models.RefreshToken{UserID: "id-1", Token: "rt-old", Expires: time.Now().Add(time.Hour)},
		delErr:  errors.New("db down"),
	}
	s := NewAccountService(db, &fakeRepoManager{tokens: tr}, testConfig())

	_, err := s.RefreshToken(context.Background(), "rt-old")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignOut(t *testing.T) {
	db, _ := newMockDB(t)
	tr := &fakeTokensRepo{}
	s := NewAccountService(db, &fakeRepoManager{tokens: tr}, testConfig())

	require.NoError(t, s.SignOut(context.Background(), "rt-1"))
	assert.Equal(t, []string{"rt-1"}, tr.deleted)
}
