package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/response"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.PasswordServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewPasswordServiceClient(conn)
	return nil
}

func (s *GRPCClient) Forgot(ctx context.Context, username string) (*response.Envelope, error) {
	env, err := s.client.Forgot(ctx, &rpc.ForgotPasswordRequest{Username: username})
	return env, s.mapError(err)
}

func (s *GRPCClient) Reset(ctx context.Context, username string, password []byte) (*response.Envelope, error) {
	env, err := s.client.Reset(ctx, &rpc.ResetPasswordRequest{Username: username, Password: string(password)})
	return env, s.mapError(err)
}

// Login keeps the returned access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, username string, password []byte) (*response.Envelope, error) {
	env, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err)
	}

	if res, ok := env.Result.(*rpc.LoginResult); ok && env.OK() {
		s.setToken(res.AccessToken)
	}
	return env, nil
}

func (s *GRPCClient) Change(ctx context.Context, oldPassword, newPassword []byte) (*response.Envelope, error) {
	env, err := s.client.Change(ctx, &rpc.ChangePasswordRequest{
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
	})
	return env, s.mapError(err)
}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.accessToken = t
	s.mu.Unlock()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
