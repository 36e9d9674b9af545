// Package services contains server-side business logic. This file implements
// PasswordService: forgot, reset and change of an account password, plus the
// login that authenticates callers of change.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/dbx"
	"github.com/dmitrijs2005/gophpass/internal/server/auth"
	"github.com/dmitrijs2005/gophpass/internal/server/config"
	"github.com/dmitrijs2005/gophpass/internal/server/hasher"
	"github.com/dmitrijs2005/gophpass/internal/server/notify"
	"github.com/dmitrijs2005/gophpass/internal/server/repositories/repomanager"
)

// PasswordService runs every operation against non-deleted accounts only.
//
// The reset code returned by Forgot is mailed to the user but is neither
// stored nor required by Reset.
type PasswordService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      hasher.PasswordHasher
	notifier                    notify.Notifier
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	now                         func() time.Time
}

func NewPasswordService(db *sql.DB, m repomanager.RepositoryManager, h hasher.PasswordHasher, n notify.Notifier, cfg *config.Config) *PasswordService {
	return &PasswordService{
		db:                          db,
		repomanager:                 m,
		hasher:                      h,
		notifier:                    n,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		now:                         time.Now,
	}
}

// Forgot mails a reset code to the user's address and returns it. Exactly
// one notification is attempted.
func (s *PasswordService) Forgot(ctx context.Context, username string) (int64, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrUserNotFound
		}
		return 0, fmt.Errorf("%w: %w", common.ErrOperationFailed, err)
	}
	if user.IsDeleted {
		return 0, common.ErrUserNotFound
	}
	if !user.HasEmail() {
		return 0, common.ErrEmailNotAttached
	}

	code := s.now().Unix()

	msg := notify.Message{
		To:       *user.Email,
		Template: notify.TemplateForgotPassword,
		Data:     map[string]any{"code": code, "username": user.Username},
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrNotificationFailed, err)
	}

	return code, nil
}

// Reset overwrites the password of the named user.
func (s *PasswordService) Reset(ctx context.Context, username, newPassword string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.FindActiveByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUserNotFound
			}
			return err
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return err
		}

		_, err = repo.UpdatePassword(ctx, user.ID, hash)
		return err
	})

	return s.txError(err)
}

// Change replaces the password of the authenticated user after checking
// oldPassword. It returns the number of updated rows.
func (s *PasswordService) Change(ctx context.Context, userID int64, oldPassword, newPassword string) (int64, error) {
	var affected int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.FindActiveByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUserNotFound
			}
			return err
		}

		if !s.hasher.Check(oldPassword, user.PasswordHash) {
			return common.ErrInvalidOldPassword
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return err
		}

		affected, err = repo.UpdatePassword(ctx, user.ID, hash)
		return err
	})
	if err != nil {
		return 0, s.txError(err)
	}

	return affected, nil
}

// Login checks the credentials and returns a signed access token.
func (s *PasswordService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("%w: %w", common.ErrOperationFailed, err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrOperationFailed, err)
	}

	return token, nil
}

// txError passes business outcomes through and marks everything else as a
// failed, rolled back operation.
func (s *PasswordService) txError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidOldPassword):
		return err
	default:
		return fmt.Errorf("%w: %w", common.ErrOperationFailed, err)
	}
}
