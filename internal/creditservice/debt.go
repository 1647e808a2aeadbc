package creditservice

import (
	"context"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/sharepool"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// borrow mints debt shares for coin and credits the borrowed coins as collateral.
// It returns the minted shares.
func (s *Service) borrow(ctx context.Context, b *batch, coin domain.Coin) (mathpkg.Uint128, error) {
	if coin.Amount.IsZero() {
		return mathpkg.Zero(), domain.ErrNoAmount
	}

	if _, err := s.registry.CoinInfo(ctx, coin.Denom); err != nil {
		return mathpkg.Zero(), err
	}

	debt, err := b.pooledDebt(s.redBank)(ctx, coin.Denom)
	if err != nil {
		return mathpkg.Zero(), err
	}

	total, err := b.overlay.TotalDebtShares(ctx, coin.Denom)
	if err != nil {
		return mathpkg.Zero(), err
	}

	shares, err := sharepool.New(total, debt).SharesFor(coin.Amount)
	if err != nil {
		return mathpkg.Zero(), err
	}

	if shares.IsZero() {
		return mathpkg.Zero(), domain.ErrZeroShares
	}

	if _, err := b.overlay.UpdateTotalDebtShares(ctx, coin.Denom, add(shares)); err != nil {
		return mathpkg.Zero(), err
	}

	if _, err := b.overlay.UpdateDebtShares(ctx, b.account.ID, coin.Denom, add(shares)); err != nil {
		return mathpkg.Zero(), err
	}

	if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, coin.Denom, add(coin.Amount)); err != nil {
		return mathpkg.Zero(), err
	}

	growth, err := s.redBank.PreviewBorrow(ctx, coin)
	if err != nil {
		return mathpkg.Zero(), err
	}

	borrowed, err := b.borrowed[coin.Denom].CheckedAdd(growth)
	if err != nil {
		return mathpkg.Zero(), err
	}

	b.borrowed[coin.Denom] = borrowed

	b.emit(domain.Message{Kind: domain.MessageBorrow, Coins: []domain.Coin{coin}})
	b.attr("action", string(domain.ActionBorrow))
	b.attr("debt_shares_added", shares.String())
	b.attr("coins_borrowed", coin.String())

	return shares, nil
}

// repay pays back up to coin.Amount of the account debt out of its collateral.
//
// The repaid amount is capped at what the account owes, rounded up. Paying
// the full owed amount burns all shares held so no dust debt remains.
func (s *Service) repay(ctx context.Context, b *batch, coin domain.Coin) error {
	if coin.Amount.IsZero() {
		return domain.ErrNoAmount
	}

	if _, err := s.registry.CoinInfo(ctx, coin.Denom); err != nil {
		return err
	}

	held, err := b.overlay.DebtShares(ctx, b.account.ID, coin.Denom)
	if err != nil {
		return err
	}

	if held.IsZero() {
		return domain.ErrNoDebt
	}

	debt, err := b.pooledDebt(s.redBank)(ctx, coin.Denom)
	if err != nil {
		return err
	}

	total, err := b.overlay.TotalDebtShares(ctx, coin.Denom)
	if err != nil {
		return err
	}

	pool := sharepool.New(total, debt)

	owed, err := pool.SharesValueCeil(held)
	if err != nil {
		return err
	}

	repaid := coin.Amount.Min(owed)

	burn := held
	if !repaid.Equal(owed) {
		burn, err = pool.SharesToBurn(repaid, held)
		if err != nil {
			return err
		}
	}

	if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, coin.Denom, sub(repaid)); err != nil {
		return err
	}

	if _, err := b.overlay.UpdateDebtShares(ctx, b.account.ID, coin.Denom, sub(burn)); err != nil {
		return err
	}

	if _, err := b.overlay.UpdateTotalDebtShares(ctx, coin.Denom, sub(burn)); err != nil {
		return err
	}

	b.attr("action", string(domain.ActionRepay))
	b.attr("debt_shares_burned", burn.String())

	if repaid.IsZero() {
		return nil
	}

	repaidTotal, err := b.repaid[coin.Denom].CheckedAdd(repaid)
	if err != nil {
		return err
	}

	b.repaid[coin.Denom] = repaidTotal

	repaidCoin := domain.Coin{Denom: coin.Denom, Amount: repaid}
	b.emit(domain.Message{Kind: domain.MessageRepay, Coins: []domain.Coin{repaidCoin}})
	b.attr("coins_repaid", repaidCoin.String())

	return nil
}
