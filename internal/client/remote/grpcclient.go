package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	pb "github.com/dmitrijs2005/shopkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient implements both Directory and DocumentStore over a single
// connection to the reference backend. It holds the access/refresh token
// pair issued by the directory and transparently refreshes an expired
// access token once per call.
type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ShopKeeperServiceClient
	accessToken  string
	refreshToken string
}

var (
	_ Directory     = (*GRPCClient)(nil)
	_ DocumentStore = (*GRPCClient)(nil)
)

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewShopKeeperServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, c.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}
		if c.refreshToken == "" {
			return err
		}

		resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: c.refreshToken})
		if err != nil {
			return err
		}

		c.accessToken = resp.AccessToken
		c.refreshToken = resp.RefreshToken

		ctx = withAccessToken(ctx, c.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	return err
}

// mapError translates gRPC status codes into the typed taxonomy.
// Anything unclassifiable is treated as a connectivity failure: the tier
// did not give a usable credential verdict.
func (c *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrOriginDenied, st.Message())
	case codes.Unauthenticated:
		return ErrInvalidCredential
	case codes.NotFound:
		return ErrAccountNotFound
	case codes.AlreadyExists:
		return ErrEmailInUse
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}
}

func (c *GRPCClient) CreateAccount(ctx context.Context, email string, password []byte) (string, error) {
	resp, err := c.client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return "", c.mapError(err)
	}

	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return resp.AccountId, nil
}

func (c *GRPCClient) Verify(ctx context.Context, email string, password []byte) (string, error) {
	resp, err := c.client.VerifyCredentials(ctx, &pb.VerifyCredentialsRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return "", c.mapError(err)
	}

	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return resp.AccountId, nil
}

func (c *GRPCClient) SignOut(ctx context.Context) error {
	if c.refreshToken == "" {
		return nil
	}

	_, err := c.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: c.refreshToken})
	c.accessToken = ""
	c.refreshToken = ""
	if err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	if _, err := c.client.Ping(ctx, &pb.PingRequest{}); err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) Put(ctx context.Context, collection, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	_, err = c.client.PutDocument(ctx, &pb.PutDocumentRequest{
		Collection: collection,
		Key:        key,
		Body:       body,
	})
	if err != nil {
		return c.mapError(err)
	}
	return nil
}

func (c *GRPCClient) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	resp, err := c.client.GetDocument(ctx, &pb.GetDocumentRequest{
		Collection: collection,
		Key:        key,
	})
	if err != nil {
		return false, c.mapError(err)
	}
	if !resp.Found {
		return false, nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return false, fmt.Errorf("unmarshaling document: %w", err)
	}
	return true, nil
}

func (c *GRPCClient) Query(ctx context.Context, collection, field, value string) ([]json.RawMessage, error) {
	resp, err := c.client.QueryDocuments(ctx, &pb.QueryDocumentsRequest{
		Collection: collection,
		Field:      field,
		Value:      value,
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	docs := make([]json.RawMessage, 0, len(resp.Bodies))
	for _, b := range resp.Bodies {
		docs = append(docs, json.RawMessage(b))
	}
	return docs, nil
}
