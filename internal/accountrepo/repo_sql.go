// Package accountrepo manages repository layer of credit accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoSQL facilitates credit account repository layer logic.
type RepoSQL struct {
	db dbpkg.SQLInterface
}

// NewRepoSQL returns credit account RepoSQL.
func NewRepoSQL(db dbpkg.SQLInterface) *RepoSQL {
	return &RepoSQL{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    credit_accounts (id, owner, created_at)
VALUES
    ($1, $2, $3)
`

// Create creates a credit account for the owner and then returns it.
func (r *RepoSQL) Create(ctx context.Context, owner string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a := domain.Account{
		ID:        uuid.NewString(),
		Owner:     owner,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := r.db.ExecContext(ctx, createQuery, a.ID, a.Owner, a.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.Account{}, domain.ErrAccountAlreadyExists
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, owner, created_at
FROM credit_accounts
WHERE id = $1
`

// Get returns the credit account with the given id.
func (r *RepoSQL) Get(ctx context.Context, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	a.CreatedAt = a.CreatedAt.UTC()

	return a, nil
}

const listQuery = `
SELECT
	id, owner, created_at
FROM credit_accounts
WHERE owner = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

// List returns the specified number of credit accounts for the given owner.
func (r *RepoSQL) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Owner, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		a.CreatedAt = a.CreatedAt.UTC()
		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
