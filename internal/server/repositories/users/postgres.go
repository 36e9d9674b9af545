package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/dbx"
	"github.com/dmitrijs2005/gophpass/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password, is_deleted, created_at, updated_at FROM users
		 WHERE username = $1
		 `

	return r.findOne(ctx, query, username)
}

func (r *PostgresRepository) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password, is_deleted, created_at, updated_at FROM users
		 WHERE username = $1 AND is_deleted = FALSE
		 `

	return r.findOne(ctx, query, username)
}

func (r *PostgresRepository) FindActiveByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, username, email, password, is_deleted, created_at, updated_at FROM users
		 WHERE id = $1 AND is_deleted = FALSE
		 `

	return r.findOne(ctx, query, id)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id int64, hash string) (int64, error) {
	query :=
		`UPDATE users SET password = $1, updated_at = now()
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsDeleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
