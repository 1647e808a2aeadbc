// Package domain provides defenitions of all entities.
package domain

import (
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/shopspring/decimal"
)

// Coin is an amount of a single denom.
type Coin struct {
	Denom  string          `json:"denom"`
	Amount mathpkg.Uint128 `json:"amount"`
}

// NewCoin is a shortcut for building a Coin from a uint64 amount.
func NewCoin(amount uint64, denom string) Coin {
	return Coin{Denom: denom, Amount: mathpkg.NewUint128(amount)}
}

// String formats the coin as amount followed by denom, e.g. 700uosmo.
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// CoinInfo holds the risk parameters of a whitelisted denom.
type CoinInfo struct {
	Denom                string          `json:"denom"`
	MaxLTV               decimal.Decimal `json:"max_ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
}

// VaultInfo holds the risk parameters of a whitelisted vault.
type VaultInfo struct {
	Address              string          `json:"address"`
	MaxLTV               decimal.Decimal `json:"max_ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
}

// CoinBalance is a single row of the collateral ledger.
type CoinBalance struct {
	AccountID string          `json:"account_id"`
	Denom     string          `json:"denom"`
	Amount    mathpkg.Uint128 `json:"amount"`
}

// DebtShares is the number of debt shares held for a denom.
type DebtShares struct {
	Denom  string          `json:"denom"`
	Shares mathpkg.Uint128 `json:"shares"`
}

// AccountDebtShares is a single row of the debt shares ledger.
type AccountDebtShares struct {
	AccountID string          `json:"account_id"`
	Denom     string          `json:"denom"`
	Shares    mathpkg.Uint128 `json:"shares"`
}
