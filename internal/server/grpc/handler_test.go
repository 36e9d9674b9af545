package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/response"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"github.com/dmitrijs2005/gophpass/internal/server/api"
	"github.com/dmitrijs2005/gophpass/internal/server/auth"
	"github.com/dmitrijs2005/gophpass/internal/server/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ---- fakes ----

type fakePasswordService struct {
	changeUser int64
	forgotErr  error
}

func (f *fakePasswordService) Forgot(ctx context.Context, username string) (int64, error) {
	return 1700000000, f.forgotErr
}

func (f *fakePasswordService) Reset(ctx context.Context, username, newPassword string) error {
	return nil
}

func (f *fakePasswordService) Change(ctx context.Context, userID int64, oldPassword, newPassword string) (int64, error) {
	f.changeUser = userID
	return 1, nil
}

func (f *fakePasswordService) Login(ctx context.Context, username, password string) (string, error) {
	return "tok", nil
}

const testSecret = "secret"

func startServer(t *testing.T, svc api.PasswordService) rpc.PasswordServiceClient {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)
	controller := api.NewController(svc, v, logging.Nop(), false)
	s := NewGRPCServer("bufnet", logging.Nop(), controller, testSecret)

	lis := bufconn.Listen(1 << 20)
	srv := s.newServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return rpc.NewPasswordServiceClient(conn)
}

func TestForgot_ReturnsEnvelopeAndRequestID(t *testing.T) {
	client := startServer(t, &fakePasswordService{})

	var header metadata.MD
	env, err := client.Forgot(context.Background(), &rpc.ForgotPasswordRequest{Username: "alice"}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.Equal(t, response.MsgForgotSuccess, env.Message)
	code, ok := env.Result.(*int64)
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), *code)
	assert.Len(t, header.Get(RequestIDHeader), 1)
}

func TestForgot_BusinessFailureIsNotStatusError(t *testing.T) {
	client := startServer(t, &fakePasswordService{forgotErr: common.ErrEmailNotAttached})

	env, err := client.Forgot(context.Background(), &rpc.ForgotPasswordRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, response.CodeNotSuccess, env.Code)
	assert.Equal(t, response.MsgEmailNotAttached, env.Message)
}

func TestReset_ValidationFailure(t *testing.T) {
	client := startServer(t, &fakePasswordService{})

	env, err := client.Reset(context.Background(), &rpc.ResetPasswordRequest{Username: "alice", Password: "short"})
	require.NoError(t, err)
	assert.Equal(t, response.MsgValidationFailed, env.Message)
	assert.Contains(t, env.Errors, "password")
}

func TestChange_RequiresToken(t *testing.T) {
	client := startServer(t, &fakePasswordService{})

	_, err := client.Change(context.Background(), &rpc.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "newpass-123"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestChange_WithTokenUsesTokenIdentity(t *testing.T) {
	svc := &fakePasswordService{}
	client := startServer(t, svc)

	token, err := auth.GenerateToken(42, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)

	env, err := client.Change(ctx, &rpc.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "newpass-123"})
	require.NoError(t, err)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.Equal(t, int64(42), svc.changeUser)
}

func TestLogin_ReturnsToken(t *testing.T) {
	client := startServer(t, &fakePasswordService{})

	env, err := client.Login(context.Background(), &rpc.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	res, ok := env.Result.(*rpc.LoginResult)
	require.True(t, ok)
	assert.Equal(t, "tok", res.AccessToken)
}
