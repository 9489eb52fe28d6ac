// Package grpc exposes the account directory and document store
// services over a single gRPC endpoint.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	pb "github.com/dmitrijs2005/shopkeeper/internal/proto"
	"github.com/dmitrijs2005/shopkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// AccountService is the part of the accounts service the handlers use.
type AccountService interface {
	Register(ctx context.Context, email string, password []byte) (string, *services.TokenPair, error)
	Login(ctx context.Context, email string, password []byte) (string, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
}

// DocumentService is the part of the document service the handlers use.
type DocumentService interface {
	Put(ctx context.Context, collection, key string, body []byte) error
	Get(ctx context.Context, collection, key string) ([]byte, bool, error)
	Query(ctx context.Context, collection, field, value string) ([][]byte, error)
}

type GRPCServer struct {
	pb.UnimplementedShopKeeperServiceServer
	address   string
	accounts  AccountService
	documents DocumentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, ds DocumentService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		documents: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterShopKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
