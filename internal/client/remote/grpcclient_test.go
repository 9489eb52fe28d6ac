package remote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	pb "github.com/dmitrijs2005/shopkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakePB implements pb.ShopKeeperServiceClient without a connection.
type fakePB struct {
	createResp *pb.CreateAccountResponse
	createErr  error

	verifyResp *pb.VerifyCredentialsResponse
	verifyErr  error

	refreshResp *pb.RefreshTokenResponse
	refreshErr  error

	signOutErr error
	pingErr    error

	putErr error

	getResp *pb.GetDocumentResponse
	getErr  error

	queryResp *pb.QueryDocumentsResponse
	queryErr  error

	lastSignOutReq *pb.SignOutRequest
	lastPutReq     *pb.PutDocumentRequest
	lastQueryReq   *pb.QueryDocumentsRequest
	signOutCalls   int
}

func (f *fakePB) CreateAccount(ctx context.Context, in *pb.CreateAccountRequest, opts ...grpc.CallOption) (*pb.CreateAccountResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakePB) VerifyCredentials(ctx context.Context, in *pb.VerifyCredentialsRequest, opts ...grpc.CallOption) (*pb.VerifyCredentialsResponse, error) {
	return f.verifyResp, f.verifyErr
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakePB) SignOut(ctx context.Context, in *pb.SignOutRequest, opts ...grpc.CallOption) (*pb.SignOutResponse, error) {
	f.signOutCalls++
	f.lastSignOutReq = in
	return &pb.SignOutResponse{}, f.signOutErr
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, f.pingErr
}

func (f *fakePB) PutDocument(ctx context.Context, in *pb.PutDocumentRequest, opts ...grpc.CallOption) (*pb.PutDocumentResponse, error) {
	f.lastPutReq = in
	return &pb.PutDocumentResponse{}, f.putErr
}

func (f *fakePB) GetDocument(ctx context.Context, in *pb.GetDocumentRequest, opts ...grpc.CallOption) (*pb.GetDocumentResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakePB) QueryDocuments(ctx context.Context, in *pb.QueryDocumentsRequest, opts ...grpc.CallOption) (*pb.QueryDocumentsResponse, error) {
	f.lastQueryReq = in
	return f.queryResp, f.queryErr
}

func newClientWithFake(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f}
}

func TestCreateAccount_StoresTokenPair(t *testing.T) {
	f := &fakePB{createResp: &pb.CreateAccountResponse{
		AccountId: "id-1", AccessToken: "at", RefreshToken: "rt",
	}}
	c := newClientWithFake(f)

	id, err := c.CreateAccount(context.Background(), "user@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	assert.Equal(t, "at", c.accessToken)
	assert.Equal(t, "rt", c.refreshToken)
}

func TestCreateAccount_EmailInUse(t *testing.T) {
	f := &fakePB{createErr: status.Error(codes.AlreadyExists, "email already registered")}
	c := newClientWithFake(f)

	_, err := c.CreateAccount(context.Background(), "user@example.com", []byte("pw"))
	require.ErrorIs(t, err, ErrEmailInUse)
}

func TestVerify_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"permission denied", status.Error(codes.PermissionDenied, "origin"), ErrOriginDenied},
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad credential"), ErrInvalidCredential},
		{"not found", status.Error(codes.NotFound, "no account"), ErrAccountNotFound},
		{"internal", status.Error(codes.Internal, "boom"), ErrUnavailable},
		{"non-status", errors.New("plain error"), ErrUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClientWithFake(&fakePB{verifyErr: tc.in})
			_, err := c.Verify(context.Background(), "user@example.com", []byte("pw"))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_ConnectivityClassification(t *testing.T) {
	c := newClientWithFake(&fakePB{verifyErr: status.Error(codes.Unavailable, "down")})
	_, err := c.Verify(context.Background(), "user@example.com", []byte("pw"))
	assert.True(t, IsConnectivity(err))
	assert.False(t, IsCredential(err))

	c = newClientWithFake(&fakePB{verifyErr: status.Error(codes.Unauthenticated, "bad")})
	_, err = c.Verify(context.Background(), "user@example.com", []byte("pw"))
	assert.True(t, IsCredential(err))
	assert.False(t, IsConnectivity(err))
}

func TestSignOut(t *testing.T) {
	f := &fakePB{}
	c := newClientWithFake(f)

	// not signed in: nothing to do
	require.NoError(t, c.SignOut(context.Background()))
	assert.Equal(t, 0, f.signOutCalls)

	c.accessToken = "at"
	c.refreshToken = "rt"
	require.NoError(t, c.SignOut(context.Background()))
	assert.Equal(t, 1, f.signOutCalls)
	assert.Equal(t, "rt", f.lastSignOutReq.RefreshToken)
	assert.Empty(t, c.accessToken)
	assert.Empty(t, c.refreshToken)
}

func TestPut_MarshalsDocument(t *testing.T) {
	f := &fakePB{}
	c := newClientWithFake(f)

	doc := map[string]string{"email": "user@example.com"}
	require.NoError(t, c.Put(context.Background(), "accounts", "id-1", doc))

	require.NotNil(t, f.lastPutReq)
	assert.Equal(t, "accounts", f.lastPutReq.Collection)
	assert.Equal(t, "id-1", f.lastPutReq.Key)
	assert.JSONEq(t, `{"email":"user@example.com"}`, string(f.lastPutReq.Body))
}

func TestGet(t *testing.T) {
	c := newClientWithFake(&fakePB{getResp: &pb.GetDocumentResponse{
		Found: true, Body: []byte(`{"email":"user@example.com"}`),
	}})

	var out map[string]string
	found, err := c.Get(context.Background(), "accounts", "id-1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "user@example.com", out["email"])
}

func TestGet_NotFound(t *testing.T) {
	c := newClientWithFake(&fakePB{getResp: &pb.GetDocumentResponse{Found: false}})

	var out map[string]string
	found, err := c.Get(context.Background(), "accounts", "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestQuery(t *testing.T) {
	c := newClientWithFake(&fakePB{queryResp: &pb.QueryDocumentsResponse{
		Bodies: [][]byte{[]byte(`{"orderNumber":"DL-1"}`), []byte(`{"orderNumber":"DL-2"}`)},
	}})

	docs, err := c.Query(context.Background(), "orders", "accountId", "id-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, json.RawMessage(`{"orderNumber":"DL-1"}`), docs[0])
}
