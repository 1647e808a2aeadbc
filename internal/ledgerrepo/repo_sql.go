// Package ledgerrepo manages repository layer of the credit ledger:
// collateral balances, debt shares, vault positions and the outbox of
// messages emitted by committed batches.
package ledgerrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/rs/zerolog"
)

// Reader provides read access to the ledger. Missing records read as zero.
type Reader interface {
	CoinBalance(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error)
	DebtShares(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error)
	TotalDebtShares(ctx context.Context, denom string) (mathpkg.Uint128, error)
	VaultPosition(ctx context.Context, accountID, vault string) (domain.VaultPosition, error)
	CoinBalances(ctx context.Context, accountID string) ([]domain.Coin, error)
	AccountDebtShares(ctx context.Context, accountID string) ([]domain.DebtShares, error)
	VaultPositions(ctx context.Context, accountID string) ([]domain.VaultPositionWithAddr, error)
}

// RepoSQL facilitates ledger repository layer logic.
type RepoSQL struct {
	db   dbpkg.SQLInterface
	conn dbpkg.TxBeginner
}

// NewTxRepoSQL returns ledger RepoSQL bound to an open transaction.
func NewTxRepoSQL(db dbpkg.SQLInterface) *RepoSQL {
	return &RepoSQL{
		db: db,
	}
}

// NewRepoSQL returns ledger RepoSQL with connection to start transactions.
func NewRepoSQL(db *sql.DB) *RepoSQL {
	return &RepoSQL{
		db:   db,
		conn: db,
	}
}

func (r *RepoSQL) getAmount(ctx context.Context, query string, args ...any) (mathpkg.Uint128, error) {
	l := zerolog.Ctx(ctx)

	var amount mathpkg.Uint128

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mathpkg.Zero(), nil
		}

		l.Error().Err(err).Interface("args", args).Send()

		return mathpkg.Zero(), errorspkg.ErrInternal
	}

	return amount, nil
}

const getCoinBalanceQuery = `
SELECT amount FROM coin_balances
WHERE account_id = $1 AND denom = $2
`

// CoinBalance returns the collateral balance of the account for the denom.
func (r *RepoSQL) CoinBalance(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error) {
	return r.getAmount(ctx, getCoinBalanceQuery, accountID, denom)
}

const getDebtSharesQuery = `
SELECT shares FROM debt_shares
WHERE account_id = $1 AND denom = $2
`

// DebtShares returns the debt shares the account holds for the denom.
func (r *RepoSQL) DebtShares(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error) {
	return r.getAmount(ctx, getDebtSharesQuery, accountID, denom)
}

const getTotalDebtSharesQuery = `
SELECT shares FROM total_debt_shares
WHERE denom = $1
`

// TotalDebtShares returns the pool-wide debt shares of the denom.
func (r *RepoSQL) TotalDebtShares(ctx context.Context, denom string) (mathpkg.Uint128, error) {
	return r.getAmount(ctx, getTotalDebtSharesQuery, denom)
}

const getVaultPositionQuery = `
SELECT position FROM vault_positions
WHERE account_id = $1 AND vault = $2
`

// VaultPosition returns the LP shares the account holds in the vault.
func (r *RepoSQL) VaultPosition(ctx context.Context, accountID, vault string) (domain.VaultPosition, error) {
	l := zerolog.Ctx(ctx)

	var raw string

	err := r.db.QueryRowContext(ctx, getVaultPositionQuery, accountID, vault).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VaultPosition{}, nil
		}

		l.Error().Err(err).Send()

		return domain.VaultPosition{}, errorspkg.ErrInternal
	}

	var p domain.VaultPosition
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		l.Error().Err(err).Str("position", raw).Send()
		return domain.VaultPosition{}, errorspkg.ErrInternal
	}

	return p, nil
}

const listCoinBalancesQuery = `
SELECT denom, amount FROM coin_balances
WHERE account_id = $1
ORDER BY denom
`

// CoinBalances returns every collateral balance of the account ordered by denom.
func (r *RepoSQL) CoinBalances(ctx context.Context, accountID string) ([]domain.Coin, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listCoinBalancesQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Coin{}

	for rows.Next() {
		var c domain.Coin
		if err := rows.Scan(&c.Denom, &c.Amount); err != nil {
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

const listAccountDebtSharesQuery = `
SELECT denom, shares FROM debt_shares
WHERE account_id = $1
ORDER BY denom
`

// AccountDebtShares returns every debt shares balance of the account ordered by denom.
func (r *RepoSQL) AccountDebtShares(ctx context.Context, accountID string) ([]domain.DebtShares, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAccountDebtSharesQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.DebtShares{}

	for rows.Next() {
		var d domain.DebtShares
		if err := rows.Scan(&d.Denom, &d.Shares); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listVaultPositionsQuery = `
SELECT vault, position FROM vault_positions
WHERE account_id = $1
ORDER BY vault
`

// VaultPositions returns every vault position of the account ordered by vault.
func (r *RepoSQL) VaultPositions(ctx context.Context, accountID string) ([]domain.VaultPositionWithAddr, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listVaultPositionsQuery, accountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.VaultPositionWithAddr{}

	for rows.Next() {
		var (
			v   domain.VaultPositionWithAddr
			raw string
		)

		if err := rows.Scan(&v.Vault, &raw); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if err := json.Unmarshal([]byte(raw), &v.Position); err != nil {
			l.Error().Err(err).Str("position", raw).Send()
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

const allCoinBalancesQuery = `
SELECT account_id, denom, amount FROM coin_balances
WHERE (account_id, denom) > ($1, $2)
ORDER BY account_id, denom
LIMIT $3
`

// AllCoinBalances returns a page of every collateral balance ordered by account and denom.
func (r *RepoSQL) AllCoinBalances(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.CoinBalance, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, allCoinBalancesQuery, startAfterAccount, startAfterDenom, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CoinBalance{}

	for rows.Next() {
		var c domain.CoinBalance
		if err := rows.Scan(&c.AccountID, &c.Denom, &c.Amount); err != nil {
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

const allDebtSharesQuery = `
SELECT account_id, denom, shares FROM debt_shares
WHERE (account_id, denom) > ($1, $2)
ORDER BY account_id, denom
LIMIT $3
`

// AllDebtShares returns a page of every debt shares balance ordered by account and denom.
func (r *RepoSQL) AllDebtShares(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.AccountDebtShares, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, allDebtSharesQuery, startAfterAccount, startAfterDenom, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AccountDebtShares{}

	for rows.Next() {
		var d domain.AccountDebtShares
		if err := rows.Scan(&d.AccountID, &d.Denom, &d.Shares); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const allTotalDebtSharesQuery = `
SELECT denom, shares FROM total_debt_shares
WHERE denom > $1
ORDER BY denom
LIMIT $2
`

// AllTotalDebtShares returns a page of pool-wide debt shares ordered by denom.
func (r *RepoSQL) AllTotalDebtShares(ctx context.Context, startAfter string, limit int32) ([]domain.DebtShares, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, allTotalDebtSharesQuery, startAfter, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.DebtShares{}

	for rows.Next() {
		var d domain.DebtShares
		if err := rows.Scan(&d.Denom, &d.Shares); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const (
	upsertCoinBalanceQuery = `
INSERT INTO coin_balances (account_id, denom, amount)
VALUES ($1, $2, $3)
ON CONFLICT (account_id, denom) DO UPDATE SET amount = excluded.amount
`
	deleteCoinBalanceQuery = `
DELETE FROM coin_balances
WHERE account_id = $1 AND denom = $2
`
	upsertDebtSharesQuery = `
INSERT INTO debt_shares (account_id, denom, shares)
VALUES ($1, $2, $3)
ON CONFLICT (account_id, denom) DO UPDATE SET shares = excluded.shares
`
	deleteDebtSharesQuery = `
DELETE FROM debt_shares
WHERE account_id = $1 AND denom = $2
`
	upsertTotalDebtSharesQuery = `
INSERT INTO total_debt_shares (denom, shares)
VALUES ($1, $2)
ON CONFLICT (denom) DO UPDATE SET shares = excluded.shares
`
	deleteTotalDebtSharesQuery = `
DELETE FROM total_debt_shares
WHERE denom = $1
`
	upsertVaultPositionQuery = `
INSERT INTO vault_positions (account_id, vault, position)
VALUES ($1, $2, $3)
ON CONFLICT (account_id, vault) DO UPDATE SET position = excluded.position
`
	deleteVaultPositionQuery = `
DELETE FROM vault_positions
WHERE account_id = $1 AND vault = $2
`
	insertMessageQuery = `
INSERT INTO outbox (id, batch_id, seq, kind, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
)

func (r *RepoSQL) setCoinBalance(ctx context.Context, c domain.CoinBalance) error {
	if c.Amount.IsZero() {
		_, err := r.db.ExecContext(ctx, deleteCoinBalanceQuery, c.AccountID, c.Denom)
		return err
	}

	_, err := r.db.ExecContext(ctx, upsertCoinBalanceQuery, c.AccountID, c.Denom, c.Amount)

	return err
}

func (r *RepoSQL) setDebtShares(ctx context.Context, d domain.AccountDebtShares) error {
	if d.Shares.IsZero() {
		_, err := r.db.ExecContext(ctx, deleteDebtSharesQuery, d.AccountID, d.Denom)
		return err
	}

	_, err := r.db.ExecContext(ctx, upsertDebtSharesQuery, d.AccountID, d.Denom, d.Shares)

	return err
}

func (r *RepoSQL) setTotalDebtShares(ctx context.Context, d domain.DebtShares) error {
	if d.Shares.IsZero() {
		_, err := r.db.ExecContext(ctx, deleteTotalDebtSharesQuery, d.Denom)
		return err
	}

	_, err := r.db.ExecContext(ctx, upsertTotalDebtSharesQuery, d.Denom, d.Shares)

	return err
}

func (r *RepoSQL) setVaultPosition(ctx context.Context, v domain.AccountVaultPosition) error {
	if v.Position.IsEmpty() {
		_, err := r.db.ExecContext(ctx, deleteVaultPositionQuery, v.AccountID, v.Vault)
		return err
	}

	raw, err := json.Marshal(v.Position)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, upsertVaultPositionQuery, v.AccountID, v.Vault, string(raw))

	return err
}

func (r *RepoSQL) insertMessage(ctx context.Context, seq int, m domain.Message) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertMessageQuery, m.ID, m.BatchID, seq, string(m.Kind), string(raw), m.CreatedAt)

	return err
}

// Apply writes every staged change of a batch and its outbound messages
// within a single db transaction.
func (r *RepoSQL) Apply(ctx context.Context, cs Changeset, msgs []domain.Message) error {
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

	txRepo := NewTxRepoSQL(tx)

	for _, c := range cs.CoinBalances {
		if err := txRepo.setCoinBalance(ctx, c); err != nil {
			l.Error().Err(err).Str("account_id", c.AccountID).Str("denom", c.Denom).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, d := range cs.DebtShares {
		if err := txRepo.setDebtShares(ctx, d); err != nil {
			l.Error().Err(err).Str("account_id", d.AccountID).Str("denom", d.Denom).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, d := range cs.TotalDebtShares {
		if err := txRepo.setTotalDebtShares(ctx, d); err != nil {
			l.Error().Err(err).Str("denom", d.Denom).Send()
			return errorspkg.ErrInternal
		}
	}

	for _, v := range cs.VaultPositions {
		if err := txRepo.setVaultPosition(ctx, v); err != nil {
			l.Error().Err(err).Str("account_id", v.AccountID).Str("vault", v.Vault).Send()
			return errorspkg.ErrInternal
		}
	}

	for i, m := range msgs {
		if err := txRepo.insertMessage(ctx, i, m); err != nil {
			l.Error().Err(err).Str("message_id", m.ID).Send()
			return errorspkg.ErrInternal
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const pendingMessagesQuery = `
SELECT payload FROM outbox
WHERE dispatched_at IS NULL
ORDER BY created_at, batch_id, seq
LIMIT $1
`

// PendingMessages returns committed messages that were not dispatched yet, oldest first.
func (r *RepoSQL) PendingMessages(ctx context.Context, limit int32) ([]domain.Message, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, pendingMessagesQuery, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Message{}

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		var m domain.Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			l.Error().Err(err).Str("payload", raw).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const markDispatchedQuery = `
UPDATE outbox
SET dispatched_at = $1
WHERE id = $2 AND dispatched_at IS NULL
`

// MarkDispatched records that the messages were delivered.
func (r *RepoSQL) MarkDispatched(ctx context.Context, ids []string) error {
	l := zerolog.Ctx(ctx)

	now := time.Now().UTC()

	for _, id := range ids {
		if _, err := r.db.ExecContext(ctx, markDispatchedQuery, now, id); err != nil {
			l.Error().Err(err).Str("message_id", id).Send()
			return errorspkg.ErrInternal
		}
	}

	return nil
}
