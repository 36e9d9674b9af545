package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"github.com/dmitrijs2005/gophpass/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// RequestIDHeader is set on every response.
const RequestIDHeader = "x-request-id"

// authenticatedMethods require a valid access token.
var authenticatedMethods = map[string]bool{
	rpc.PasswordService_Change_FullMethodName: true,
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authenticatedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

func userIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(UserIDKey).(int64)
	return id
}
