// Package api turns transport requests into PasswordService calls: it
// validates the payload, runs the operation and maps the outcome to a
// response envelope. It knows nothing about gRPC or HTTP.
package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/response"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"github.com/dmitrijs2005/gophpass/internal/server/validation"
)

type PasswordService interface {
	Forgot(ctx context.Context, username string) (int64, error)
	Reset(ctx context.Context, username, newPassword string) error
	Change(ctx context.Context, userID int64, oldPassword, newPassword string) (int64, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type RequestValidator interface {
	Validate(ruleSet string, payload any) (bool, map[string][]string)
}

type Controller struct {
	svc                  PasswordService
	validator            RequestValidator
	logger               logging.Logger
	exposeInternalErrors bool
}

func NewController(svc PasswordService, v RequestValidator, l logging.Logger, exposeInternalErrors bool) *Controller {
	return &Controller{
		svc:                  svc,
		validator:            v,
		logger:               l.With("module", "api"),
		exposeInternalErrors: exposeInternalErrors,
	}
}

func (c *Controller) Forgot(ctx context.Context, req *rpc.ForgotPasswordRequest) *response.Envelope {
	if env := c.validate(ctx, validation.ForgotPassword, req); env != nil {
		return env
	}

	code, err := c.svc.Forgot(ctx, req.Username)
	if err != nil {
		return c.failure(ctx, "forgot", err)
	}

	c.logger.Info(ctx, "reset code sent", "username", req.Username)
	return response.Success(response.MsgForgotSuccess, code)
}

func (c *Controller) Reset(ctx context.Context, req *rpc.ResetPasswordRequest) *response.Envelope {
	if env := c.validate(ctx, validation.ResetPassword, req); env != nil {
		return env
	}

	if err := c.svc.Reset(ctx, req.Username, req.Password); err != nil {
		return c.failure(ctx, "reset", err)
	}

	c.logger.Info(ctx, "password reset", "username", req.Username)
	return response.Success(response.MsgRequestSuccessful, nil)
}

// Change acts on behalf of userID, the authenticated caller. Zero means no
// identity was established.
func (c *Controller) Change(ctx context.Context, userID int64, req *rpc.ChangePasswordRequest) *response.Envelope {
	if userID <= 0 {
		return response.NotSuccess(response.MsgUnauthenticated, nil)
	}
	if env := c.validate(ctx, validation.ChangePassword, req); env != nil {
		return env
	}

	affected, err := c.svc.Change(ctx, userID, req.OldPassword, req.NewPassword)
	if err != nil {
		return c.failure(ctx, "change", err)
	}

	c.logger.Info(ctx, "password changed", "user_id", userID)
	return response.Success(response.MsgRequestSuccessful, affected)
}

func (c *Controller) Login(ctx context.Context, req *rpc.LoginRequest) *response.Envelope {
	if env := c.validate(ctx, validation.Login, req); env != nil {
		return env
	}

	token, err := c.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return response.NotSuccess(response.MsgInvalidCredentials, nil)
		}
		return c.failure(ctx, "login", err)
	}

	return response.Success(response.MsgRequestSuccessful, rpc.LoginResult{AccessToken: token})
}

func (c *Controller) validate(ctx context.Context, ruleSet string, payload any) *response.Envelope {
	ok, errs := c.validator.Validate(ruleSet, payload)
	if ok {
		return nil
	}
	if _, general := errs[validation.GeneralKey]; general {
		c.logger.Error(ctx, "request rejected by rule-set", "rule_set", ruleSet, "errors", errs)
	}
	return response.NotSuccess(response.MsgValidationFailed, errs)
}

func (c *Controller) failure(ctx context.Context, op string, err error) *response.Envelope {
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return response.NotSuccess(response.MsgUserNotExisted, nil)
	case errors.Is(err, common.ErrEmailNotAttached):
		return response.NotSuccess(response.MsgEmailNotAttached, nil)
	case errors.Is(err, common.ErrInvalidOldPassword):
		return response.NotSuccess(response.MsgInvalidOldPassword, nil)
	case errors.Is(err, common.ErrUnauthorized):
		return response.NotSuccess(response.MsgUnauthenticated, nil)
	}

	c.logger.Error(ctx, "operation failed", "op", op, "error", err)

	msg := response.MsgOperationFailed
	if errors.Is(err, common.ErrNotificationFailed) {
		msg = response.MsgNotificationFailed
	}
	if c.exposeInternalErrors {
		msg = err.Error()
	}
	return response.Error(msg)
}
