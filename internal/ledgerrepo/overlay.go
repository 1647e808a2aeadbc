package ledgerrepo

import (
	"context"
	"sort"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

type accountDenom struct {
	AccountID string
	Denom     string
}

type accountVault struct {
	AccountID string
	Vault     string
}

// Changeset is the set of records a batch changed. Zero values delete their record.
type Changeset struct {
	CoinBalances    []domain.CoinBalance
	DebtShares      []domain.AccountDebtShares
	TotalDebtShares []domain.DebtShares
	VaultPositions  []domain.AccountVaultPosition
}

// IsEmpty reports whether the changeset holds no change.
func (c Changeset) IsEmpty() bool {
	return len(c.CoinBalances) == 0 &&
		len(c.DebtShares) == 0 &&
		len(c.TotalDebtShares) == 0 &&
		len(c.VaultPositions) == 0
}

// Overlay stages ledger mutations of a batch on top of a Reader.
//
// Reads see staged values. Nothing reaches the underlying store until the
// Changes are applied, so discarding the Overlay discards the batch.
type Overlay struct {
	base   Reader
	coins  map[accountDenom]mathpkg.Uint128
	debt   map[accountDenom]mathpkg.Uint128
	totals map[string]mathpkg.Uint128
	vaults map[accountVault]domain.VaultPosition
}

// NewOverlay returns an empty Overlay over base.
func NewOverlay(base Reader) *Overlay {
	return &Overlay{
		base:   base,
		coins:  make(map[accountDenom]mathpkg.Uint128),
		debt:   make(map[accountDenom]mathpkg.Uint128),
		totals: make(map[string]mathpkg.Uint128),
		vaults: make(map[accountVault]domain.VaultPosition),
	}
}

// CoinBalance returns the staged or stored collateral balance.
func (o *Overlay) CoinBalance(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error) {
	if v, ok := o.coins[accountDenom{accountID, denom}]; ok {
		return v, nil
	}

	return o.base.CoinBalance(ctx, accountID, denom)
}

// DebtShares returns the staged or stored debt shares of the account.
func (o *Overlay) DebtShares(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error) {
	if v, ok := o.debt[accountDenom{accountID, denom}]; ok {
		return v, nil
	}

	return o.base.DebtShares(ctx, accountID, denom)
}

// TotalDebtShares returns the staged or stored pool-wide debt shares.
func (o *Overlay) TotalDebtShares(ctx context.Context, denom string) (mathpkg.Uint128, error) {
	if v, ok := o.totals[denom]; ok {
		return v, nil
	}

	return o.base.TotalDebtShares(ctx, denom)
}

// VaultPosition returns the staged or stored vault position.
func (o *Overlay) VaultPosition(ctx context.Context, accountID, vault string) (domain.VaultPosition, error) {
	if v, ok := o.vaults[accountVault{accountID, vault}]; ok {
		return v.Clone(), nil
	}

	return o.base.VaultPosition(ctx, accountID, vault)
}

// CoinBalances merges stored and staged collateral balances of the account.
func (o *Overlay) CoinBalances(ctx context.Context, accountID string) ([]domain.Coin, error) {
	stored, err := o.base.CoinBalances(ctx, accountID)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]mathpkg.Uint128, len(stored))
	for _, c := range stored {
		merged[c.Denom] = c.Amount
	}

	for k, v := range o.coins {
		if k.AccountID == accountID {
			merged[k.Denom] = v
		}
	}

	items := []domain.Coin{}

	for denom, amount := range merged {
		if !amount.IsZero() {
			items = append(items, domain.Coin{Denom: denom, Amount: amount})
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Denom < items[j].Denom })

	return items, nil
}

// AccountDebtShares merges stored and staged debt shares of the account.
func (o *Overlay) AccountDebtShares(ctx context.Context, accountID string) ([]domain.DebtShares, error) {
	stored, err := o.base.AccountDebtShares(ctx, accountID)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]mathpkg.Uint128, len(stored))
	for _, d := range stored {
		merged[d.Denom] = d.Shares
	}

	for k, v := range o.debt {
		if k.AccountID == accountID {
			merged[k.Denom] = v
		}
	}

	items := []domain.DebtShares{}

	for denom, shares := range merged {
		if !shares.IsZero() {
			items = append(items, domain.DebtShares{Denom: denom, Shares: shares})
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Denom < items[j].Denom })

	return items, nil
}

// VaultPositions merges stored and staged vault positions of the account.
func (o *Overlay) VaultPositions(ctx context.Context, accountID string) ([]domain.VaultPositionWithAddr, error) {
	stored, err := o.base.VaultPositions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]domain.VaultPosition, len(stored))
	for _, v := range stored {
		merged[v.Vault] = v.Position
	}

	for k, v := range o.vaults {
		if k.AccountID == accountID {
			merged[k.Vault] = v.Clone()
		}
	}

	items := []domain.VaultPositionWithAddr{}

	for vault, p := range merged {
		if !p.IsEmpty() {
			items = append(items, domain.VaultPositionWithAddr{Vault: vault, Position: p})
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Vault < items[j].Vault })

	return items, nil
}

// UpdateCoinBalance stages fn(old) as the new collateral balance and returns it.
// Nothing is staged when fn fails.
func (o *Overlay) UpdateCoinBalance(ctx context.Context, accountID, denom string, fn func(mathpkg.Uint128) (mathpkg.Uint128, error)) (mathpkg.Uint128, error) {
	old, err := o.CoinBalance(ctx, accountID, denom)
	if err != nil {
		return mathpkg.Zero(), err
	}

	v, err := fn(old)
	if err != nil {
		return mathpkg.Zero(), err
	}

	o.coins[accountDenom{accountID, denom}] = v

	return v, nil
}

// UpdateDebtShares stages fn(old) as the new debt shares of the account and returns it.
func (o *Overlay) UpdateDebtShares(ctx context.Context, accountID, denom string, fn func(mathpkg.Uint128) (mathpkg.Uint128, error)) (mathpkg.Uint128, error) {
	old, err := o.DebtShares(ctx, accountID, denom)
	if err != nil {
		return mathpkg.Zero(), err
	}

	v, err := fn(old)
	if err != nil {
		return mathpkg.Zero(), err
	}

	o.debt[accountDenom{accountID, denom}] = v

	return v, nil
}

// UpdateTotalDebtShares stages fn(old) as the new pool-wide debt shares and returns it.
func (o *Overlay) UpdateTotalDebtShares(ctx context.Context, denom string, fn func(mathpkg.Uint128) (mathpkg.Uint128, error)) (mathpkg.Uint128, error) {
	old, err := o.TotalDebtShares(ctx, denom)
	if err != nil {
		return mathpkg.Zero(), err
	}

	v, err := fn(old)
	if err != nil {
		return mathpkg.Zero(), err
	}

	o.totals[denom] = v

	return v, nil
}

// UpdateVaultPosition stages fn(old) as the new vault position and returns it.
func (o *Overlay) UpdateVaultPosition(ctx context.Context, accountID, vault string, fn func(domain.VaultPosition) (domain.VaultPosition, error)) (domain.VaultPosition, error) {
	old, err := o.VaultPosition(ctx, accountID, vault)
	if err != nil {
		return domain.VaultPosition{}, err
	}

	v, err := fn(old.Clone())
	if err != nil {
		return domain.VaultPosition{}, err
	}

	o.vaults[accountVault{accountID, vault}] = v.Clone()

	return v, nil
}

// Changes returns the staged records in a deterministic order.
func (o *Overlay) Changes() Changeset {
	var cs Changeset

	for k, v := range o.coins {
		cs.CoinBalances = append(cs.CoinBalances, domain.CoinBalance{AccountID: k.AccountID, Denom: k.Denom, Amount: v})
	}

	sort.Slice(cs.CoinBalances, func(i, j int) bool {
		a, b := cs.CoinBalances[i], cs.CoinBalances[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}

		return a.Denom < b.Denom
	})

	for k, v := range o.debt {
		cs.DebtShares = append(cs.DebtShares, domain.AccountDebtShares{AccountID: k.AccountID, Denom: k.Denom, Shares: v})
	}

	sort.Slice(cs.DebtShares, func(i, j int) bool {
		a, b := cs.DebtShares[i], cs.DebtShares[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}

		return a.Denom < b.Denom
	})

	for denom, v := range o.totals {
		cs.TotalDebtShares = append(cs.TotalDebtShares, domain.DebtShares{Denom: denom, Shares: v})
	}

	sort.Slice(cs.TotalDebtShares, func(i, j int) bool {
		return cs.TotalDebtShares[i].Denom < cs.TotalDebtShares[j].Denom
	})

	for k, v := range o.vaults {
		cs.VaultPositions = append(cs.VaultPositions, domain.AccountVaultPosition{
			AccountID: k.AccountID,
			Vault:     k.Vault,
			Position:  v.Clone(),
		})
	}

	sort.Slice(cs.VaultPositions, func(i, j int) bool {
		a, b := cs.VaultPositions[i], cs.VaultPositions[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}

		return a.Vault < b.Vault
	})

	return cs
}
