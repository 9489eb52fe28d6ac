package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/cache"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupCache(t *testing.T) *cache.Cache {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cache (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return cache.New(cache.NewSQLiteStore(db))
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := cryptox.HashPassword([]byte(password))
	require.NoError(t, err)
	return h
}

// ---- fake directory ----

type fakeDirectory struct {
	CreateRet string
	CreateErr error

	VerifyRet string
	VerifyErr error

	SignOutErr error
	PingErr    error

	CreateCalls  int
	VerifyCalls  int
	SignOutCalls int

	LastCreateEmail    string
	LastCreatePassword []byte
	LastVerifyEmail    string
}

func (f *fakeDirectory) CreateAccount(ctx context.Context, email string, password []byte) (string, error) {
	f.CreateCalls++
	f.LastCreateEmail = email
	f.LastCreatePassword = append([]byte(nil), password...)
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	return f.CreateRet, nil
}

func (f *fakeDirectory) Verify(ctx context.Context, email string, password []byte) (string, error) {
	f.VerifyCalls++
	f.LastVerifyEmail = email
	if f.VerifyErr != nil {
		return "", f.VerifyErr
	}
	return f.VerifyRet, nil
}

func (f *fakeDirectory) SignOut(ctx context.Context) error {
	f.SignOutCalls++
	return f.SignOutErr
}

func (f *fakeDirectory) Ping(ctx context.Context) error { return f.PingErr }

// ---- fake document store ----

// fakeDocStore keeps marshaled documents in memory and answers Query by
// scanning top-level fields, mirroring the real store's contract.
type fakeDocStore struct {
	docs map[string]map[string]json.RawMessage

	PutErr   error
	GetErr   error
	QueryErr error

	PutCalls int
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{docs: map[string]map[string]json.RawMessage{}}
}

func (f *fakeDocStore) Put(ctx context.Context, collection, key string, doc any) error {
	f.PutCalls++
	if f.PutErr != nil {
		return f.PutErr
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]json.RawMessage{}
	}
	f.docs[collection][key] = b
	return nil
}

func (f *fakeDocStore) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	if f.GetErr != nil {
		return false, f.GetErr
	}
	b, ok := f.docs[collection][key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeDocStore) Query(ctx context.Context, collection, field, value string) ([]json.RawMessage, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	var out []json.RawMessage
	for _, b := range f.docs[collection] {
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			continue
		}
		if s, ok := m[field].(string); ok && s == value {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeDocStore) seed(t *testing.T, collection, key string, doc any) {
	t.Helper()
	require.NoError(t, f.Put(context.Background(), collection, key, doc))
	f.PutCalls--
}

func (f *fakeDocStore) seedRaw(collection, key string, body []byte) {
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]json.RawMessage{}
	}
	f.docs[collection][key] = body
}
