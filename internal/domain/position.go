package domain

import (
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/shopspring/decimal"
)

// CoinValue is a collateral balance valued at the oracle price.
type CoinValue struct {
	Denom  string          `json:"denom"`
	Amount mathpkg.Uint128 `json:"amount"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// DebtSharesValue is a debt shares balance converted into the owed amount and valued.
type DebtSharesValue struct {
	Denom  string          `json:"denom"`
	Shares mathpkg.Uint128 `json:"shares"`
	Amount mathpkg.Uint128 `json:"amount"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// VaultPositionValue is a vault position valued through its redeemable coins.
type VaultPositionValue struct {
	Vault    string          `json:"vault"`
	Position VaultPosition   `json:"position"`
	Coins    []CoinValue     `json:"coins"`
	Value    decimal.Decimal `json:"value"`
}

// Position is the valued summary of a credit account. It is computed on demand and never stored.
type Position struct {
	AccountID string               `json:"account_id"`
	Coins     []CoinValue          `json:"coins"`
	Debt      []DebtSharesValue    `json:"debt"`
	Vaults    []VaultPositionValue `json:"vault_positions"`
}

// Health summarises how safe a position is.
//
// The health factors are nil when the account holds no debt.
type Health struct {
	TotalCollateralValue                   decimal.Decimal  `json:"total_collateral_value"`
	TotalDebtValue                         decimal.Decimal  `json:"total_debt_value"`
	MaxLTVAdjustedCollateral               decimal.Decimal  `json:"max_ltv_adjusted_collateral"`
	LiquidationThresholdAdjustedCollateral decimal.Decimal  `json:"liquidation_threshold_adjusted_collateral"`
	MaxLTVHealthFactor                     *decimal.Decimal `json:"max_ltv_health_factor"`
	LiquidationHealthFactor                *decimal.Decimal `json:"liquidation_health_factor"`
	AboveMaxLTV                            bool             `json:"above_max_ltv"`
	Liquidatable                           bool             `json:"liquidatable"`
}
