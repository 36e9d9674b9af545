package client

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/response"
)

type Client interface {
	Close() error
	Forgot(ctx context.Context, username string) (*response.Envelope, error)
	Reset(ctx context.Context, username string, password []byte) (*response.Envelope, error)
	Login(ctx context.Context, username string, password []byte) (*response.Envelope, error)
	Change(ctx context.Context, oldPassword, newPassword []byte) (*response.Envelope, error)
	Logout()
	LoggedIn() bool
}
