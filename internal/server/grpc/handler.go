package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/response"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
)

// Business outcomes travel in the envelope; only transport and
// authentication problems become gRPC status errors.

func (s *GRPCServer) Forgot(ctx context.Context, req *rpc.ForgotPasswordRequest) (*response.Envelope, error) {
	return s.controller.Forgot(ctx, req), nil
}

func (s *GRPCServer) Reset(ctx context.Context, req *rpc.ResetPasswordRequest) (*response.Envelope, error) {
	return s.controller.Reset(ctx, req), nil
}

func (s *GRPCServer) Change(ctx context.Context, req *rpc.ChangePasswordRequest) (*response.Envelope, error) {
	return s.controller.Change(ctx, userIDFromContext(ctx), req), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*response.Envelope, error) {
	return s.controller.Login(ctx, req), nil
}
