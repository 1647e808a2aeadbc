package creditservice

import (
	"context"
	"errors"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/internal/sharepool"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/shopspring/decimal"
)

// healthFactorPrecision is the number of decimal places health factors are truncated to.
const healthFactorPrecision = 18

// position values the collateral, debt and vault positions read from r.
func (s *Service) position(ctx context.Context, r ledgerrepo.Reader, accountID string, pooledDebt debtFunc) (domain.Position, error) {
	pos := domain.Position{
		AccountID: accountID,
		Coins:     []domain.CoinValue{},
		Debt:      []domain.DebtSharesValue{},
		Vaults:    []domain.VaultPositionValue{},
	}

	coins, err := r.CoinBalances(ctx, accountID)
	if err != nil {
		return domain.Position{}, err
	}

	for _, c := range coins {
		v, err := s.coinValue(ctx, c)
		if err != nil {
			return domain.Position{}, err
		}

		pos.Coins = append(pos.Coins, v)
	}

	debts, err := r.AccountDebtShares(ctx, accountID)
	if err != nil {
		return domain.Position{}, err
	}

	for _, d := range debts {
		debt, err := pooledDebt(ctx, d.Denom)
		if err != nil {
			return domain.Position{}, err
		}

		total, err := r.TotalDebtShares(ctx, d.Denom)
		if err != nil {
			return domain.Position{}, err
		}

		amount, err := sharepool.New(total, debt).SharesValue(d.Shares)
		if err != nil {
			return domain.Position{}, err
		}

		price, err := s.oracle.Price(ctx, d.Denom)
		if err != nil {
			return domain.Position{}, err
		}

		pos.Debt = append(pos.Debt, domain.DebtSharesValue{
			Denom:  d.Denom,
			Shares: d.Shares,
			Amount: amount,
			Price:  price,
			Value:  amount.Decimal().Mul(price),
		})
	}

	vaults, err := r.VaultPositions(ctx, accountID)
	if err != nil {
		return domain.Position{}, err
	}

	for _, v := range vaults {
		total, err := v.Position.Total()
		if err != nil {
			return domain.Position{}, err
		}

		redeemable, err := s.vaults.PreviewRedeem(ctx, v.Vault, total)
		if err != nil {
			return domain.Position{}, err
		}

		pv := domain.VaultPositionValue{
			Vault:    v.Vault,
			Position: v.Position,
			Coins:    []domain.CoinValue{},
			Value:    decimal.Zero,
		}

		for _, c := range redeemable {
			cv, err := s.coinValue(ctx, c)
			if err != nil {
				return domain.Position{}, err
			}

			pv.Coins = append(pv.Coins, cv)
			pv.Value = pv.Value.Add(cv.Value)
		}

		pos.Vaults = append(pos.Vaults, pv)
	}

	return pos, nil
}

func (s *Service) coinValue(ctx context.Context, c domain.Coin) (domain.CoinValue, error) {
	price, err := s.oracle.Price(ctx, c.Denom)
	if err != nil {
		return domain.CoinValue{}, err
	}

	return domain.CoinValue{
		Denom:  c.Denom,
		Amount: c.Amount,
		Price:  price,
		Value:  c.Amount.Decimal().Mul(price),
	}, nil
}

// coinLTV returns the risk parameters of denom. Denoms removed from the
// whitelist still count as collateral value but carry no borrowing power.
func (s *Service) coinLTV(ctx context.Context, denom string) (maxLTV, liquidationThreshold decimal.Decimal, err error) {
	info, err := s.registry.CoinInfo(ctx, denom)
	if errors.Is(err, domain.ErrNotWhitelisted) {
		return decimal.Zero, decimal.Zero, nil
	}

	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return info.MaxLTV, info.LiquidationThreshold, nil
}

func (s *Service) vaultLTV(ctx context.Context, vault string) (maxLTV, liquidationThreshold decimal.Decimal, err error) {
	info, err := s.registry.VaultInfo(ctx, vault)
	if errors.Is(err, domain.ErrNotWhitelisted) {
		return decimal.Zero, decimal.Zero, nil
	}

	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return info.MaxLTV, info.LiquidationThreshold, nil
}

// health computes the health factors of pos.
//
// A health factor is the LTV weighted collateral value divided by the debt
// value, truncated to 18 decimal places. It is nil without debt.
func (s *Service) health(ctx context.Context, pos domain.Position) (domain.Health, error) {
	h := domain.Health{
		TotalCollateralValue:                   decimal.Zero,
		TotalDebtValue:                         decimal.Zero,
		MaxLTVAdjustedCollateral:               decimal.Zero,
		LiquidationThresholdAdjustedCollateral: decimal.Zero,
	}

	for _, c := range pos.Coins {
		maxLTV, lt, err := s.coinLTV(ctx, c.Denom)
		if err != nil {
			return domain.Health{}, err
		}

		h.TotalCollateralValue = h.TotalCollateralValue.Add(c.Value)
		h.MaxLTVAdjustedCollateral = h.MaxLTVAdjustedCollateral.Add(c.Value.Mul(maxLTV))
		h.LiquidationThresholdAdjustedCollateral = h.LiquidationThresholdAdjustedCollateral.Add(c.Value.Mul(lt))
	}

	for _, v := range pos.Vaults {
		maxLTV, lt, err := s.vaultLTV(ctx, v.Vault)
		if err != nil {
			return domain.Health{}, err
		}

		h.TotalCollateralValue = h.TotalCollateralValue.Add(v.Value)
		h.MaxLTVAdjustedCollateral = h.MaxLTVAdjustedCollateral.Add(v.Value.Mul(maxLTV))
		h.LiquidationThresholdAdjustedCollateral = h.LiquidationThresholdAdjustedCollateral.Add(v.Value.Mul(lt))
	}

	for _, d := range pos.Debt {
		h.TotalDebtValue = h.TotalDebtValue.Add(d.Value)
	}

	if h.TotalDebtValue.IsZero() {
		return h, nil
	}

	one := decimal.NewFromInt(1)

	maxLTVHF, _ := h.MaxLTVAdjustedCollateral.QuoRem(h.TotalDebtValue, healthFactorPrecision)
	liqHF, _ := h.LiquidationThresholdAdjustedCollateral.QuoRem(h.TotalDebtValue, healthFactorPrecision)

	h.MaxLTVHealthFactor = &maxLTVHF
	h.LiquidationHealthFactor = &liqHF
	h.AboveMaxLTV = maxLTVHF.LessThan(one)
	h.Liquidatable = liqHF.LessThan(one)

	return h, nil
}

// Position returns the valued position of the account.
func (s *Service) Position(ctx context.Context, accountID string) (domain.Position, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return domain.Position{}, err
	}

	return s.position(ctx, s.ledger, accountID, s.redBank.UserDebt)
}

// Health returns the health of the account.
func (s *Service) Health(ctx context.Context, accountID string) (domain.Health, error) {
	pos, err := s.Position(ctx, accountID)
	if err != nil {
		return domain.Health{}, err
	}

	return s.health(ctx, pos)
}

// TotalDebtShares returns the debt shares issued for denom across all accounts.
func (s *Service) TotalDebtShares(ctx context.Context, denom string) (domain.DebtShares, error) {
	shares, err := s.ledger.TotalDebtShares(ctx, denom)
	if err != nil {
		return domain.DebtShares{}, err
	}

	return domain.DebtShares{Denom: denom, Shares: shares}, nil
}

// AllTotalDebtShares returns a page of pool-wide debt shares ordered by denom.
func (s *Service) AllTotalDebtShares(ctx context.Context, startAfter string, limit int32) ([]domain.DebtShares, error) {
	return s.ledger.AllTotalDebtShares(ctx, startAfter, web.ClampLimit(limit))
}

// AllCoinBalances returns a page of collateral balances ordered by account and denom.
func (s *Service) AllCoinBalances(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.CoinBalance, error) {
	return s.ledger.AllCoinBalances(ctx, startAfterAccount, startAfterDenom, web.ClampLimit(limit))
}

// AllDebtShares returns a page of account debt shares ordered by account and denom.
func (s *Service) AllDebtShares(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.AccountDebtShares, error) {
	return s.ledger.AllDebtShares(ctx, startAfterAccount, startAfterDenom, web.ClampLimit(limit))
}

// PooledDebt returns the lender debt of the credit manager in denom.
func (s *Service) PooledDebt(ctx context.Context, denom string) (mathpkg.Uint128, error) {
	return s.redBank.UserDebt(ctx, denom)
}
