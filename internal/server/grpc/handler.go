package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	pb "github.com/dmitrijs2005/shopkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	id, tokens, err := s.accounts.Register(ctx, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrorEmailInUse) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "account_id", id)
	return &pb.CreateAccountResponse{
		AccountId:    id,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) VerifyCredentials(ctx context.Context, req *pb.VerifyCredentialsRequest) (*pb.VerifyCredentialsResponse, error) {

	id, tokens, err := s.accounts.Login(ctx, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "account not found")
		}
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "invalid credential")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.VerifyCredentialsResponse{
		AccountId:    id,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.accounts.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {

	if err := s.accounts.SignOut(ctx, req.RefreshToken); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignOutResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) PutDocument(ctx context.Context, req *pb.PutDocumentRequest) (*pb.PutDocumentResponse, error) {

	if err := s.documents.Put(ctx, req.Collection, req.Key, req.Body); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.PutDocumentResponse{}, nil
}

func (s *GRPCServer) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.GetDocumentResponse, error) {

	body, found, err := s.documents.Get(ctx, req.Collection, req.Key)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetDocumentResponse{Body: body, Found: found}, nil
}

func (s *GRPCServer) QueryDocuments(ctx context.Context, req *pb.QueryDocumentsRequest) (*pb.QueryDocumentsResponse, error) {

	bodies, err := s.documents.Query(ctx, req.Collection, req.Field, req.Value)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.QueryDocumentsResponse{Bodies: bodies}, nil
}
