// Package registryrepo manages repository layer of the coin and vault allow-lists.
package registryrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoSQL facilitates registry repository layer logic.
type RepoSQL struct {
	db   dbpkg.SQLInterface
	conn dbpkg.TxBeginner
}

// NewTxRepoSQL returns registry RepoSQL bound to an open transaction.
func NewTxRepoSQL(db dbpkg.SQLInterface) *RepoSQL {
	return &RepoSQL{
		db: db,
	}
}

// NewRepoSQL returns registry RepoSQL with connection to start transactions.
func NewRepoSQL(db *sql.DB) *RepoSQL {
	return &RepoSQL{
		db:   db,
		conn: db,
	}
}

const getCoinQuery = `
SELECT
	denom, max_ltv, liquidation_threshold
FROM allowed_coins
WHERE denom = $1
`

// CoinInfo returns the risk parameters of a whitelisted denom.
func (r *RepoSQL) CoinInfo(ctx context.Context, denom string) (domain.CoinInfo, error) {
	l := zerolog.Ctx(ctx)

	var c domain.CoinInfo

	err := r.db.QueryRowContext(ctx, getCoinQuery, denom).Scan(
		&c.Denom,
		&c.MaxLTV,
		&c.LiquidationThreshold,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotWhitelistedError{Denom: denom}
		}

		l.Error().Err(err).Str("denom", denom).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getVaultQuery = `
SELECT
	address, max_ltv, liquidation_threshold
FROM allowed_vaults
WHERE address = $1
`

// VaultInfo returns the risk parameters of a whitelisted vault.
func (r *RepoSQL) VaultInfo(ctx context.Context, address string) (domain.VaultInfo, error) {
	l := zerolog.Ctx(ctx)

	var v domain.VaultInfo

	err := r.db.QueryRowContext(ctx, getVaultQuery, address).Scan(
		&v.Address,
		&v.MaxLTV,
		&v.LiquidationThreshold,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, domain.NotWhitelistedError{Denom: address}
		}

		l.Error().Err(err).Str("vault", address).Send()

		return v, errorspkg.ErrInternal
	}

	return v, nil
}

const listCoinsQuery = `
SELECT
	denom, max_ltv, liquidation_threshold
FROM allowed_coins
WHERE denom > $1
ORDER BY denom
LIMIT $2
`

// ListCoins returns whitelisted denoms ordered by denom, starting after the given one.
func (r *RepoSQL) ListCoins(ctx context.Context, startAfter string, limit int32) ([]domain.CoinInfo, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listCoinsQuery, startAfter, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CoinInfo{}

	for rows.Next() {
		var c domain.CoinInfo
		if err := rows.Scan(&c.Denom, &c.MaxLTV, &c.LiquidationThreshold); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listVaultsQuery = `
SELECT
	address, max_ltv, liquidation_threshold
FROM allowed_vaults
WHERE address > $1
ORDER BY address
LIMIT $2
`

// ListVaults returns whitelisted vaults ordered by address, starting after the given one.
func (r *RepoSQL) ListVaults(ctx context.Context, startAfter string, limit int32) ([]domain.VaultInfo, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listVaultsQuery, startAfter, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.VaultInfo{}

	for rows.Next() {
		var v domain.VaultInfo
		if err := rows.Scan(&v.Address, &v.MaxLTV, &v.LiquidationThreshold); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, v)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const (
	deleteCoinsQuery  = `DELETE FROM allowed_coins`
	deleteVaultsQuery = `DELETE FROM allowed_vaults`
	insertCoinQuery   = `
INSERT INTO
    allowed_coins (denom, max_ltv, liquidation_threshold)
VALUES
    ($1, $2, $3)
`
	insertVaultQuery = `
INSERT INTO
    allowed_vaults (address, max_ltv, liquidation_threshold)
VALUES
    ($1, $2, $3)
`
)

// ReplaceConfig replaces both allow-lists within a single db transaction.
func (r *RepoSQL) ReplaceConfig(ctx context.Context, coins []domain.CoinInfo, vaults []domain.VaultInfo) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	for _, q := range []string{deleteCoinsQuery, deleteVaultsQuery} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, c := range coins {
		if _, err := tx.ExecContext(ctx, insertCoinQuery, c.Denom, c.MaxLTV, c.LiquidationThreshold); err != nil {
			l.Error().Err(err).Str("denom", c.Denom).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, v := range vaults {
		if _, err := tx.ExecContext(ctx, insertVaultQuery, v.Address, v.MaxLTV, v.LiquidationThreshold); err != nil {
			l.Error().Err(err).Str("vault", v.Address).Send()
			return errorspkg.ErrInternal
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
