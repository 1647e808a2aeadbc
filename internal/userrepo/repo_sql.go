// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoSQL facilitates user repository layer logic.
type RepoSQL struct {
	db dbpkg.SQLInterface
}

// NewRepoSQL returns user RepoSQL.
func NewRepoSQL(db dbpkg.SQLInterface) *RepoSQL {
	return &RepoSQL{
		db: db,
	}
}

const createQuery = `
INSERT INTO users (
    username,
    hashed_password,
    created_at
) VALUES (
    $1, $2, $3
) ON CONFLICT (username) DO NOTHING
`

// Create creates the user and then returns it.
func (r *RepoSQL) Create(ctx context.Context, username, hashedPassword string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u := domain.User{
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	res, err := r.db.ExecContext(ctx, createQuery, u.Username, u.HashedPassword, u.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.User{}, domain.ErrUsernameAlreadyExists
	}

	return u, nil
}

const getQuery = `
SELECT
	username,
	hashed_password,
	created_at
FROM users
WHERE username = $1
`

// Get returns the user with the given username.
func (r *RepoSQL) Get(ctx context.Context, username string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, username)

	var u domain.User

	err := row.Scan(
		&u.Username,
		&u.HashedPassword,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return domain.User{}, errorspkg.ErrInternal
	}

	u.CreatedAt = u.CreatedAt.UTC()

	return u, nil
}
