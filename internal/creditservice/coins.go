package creditservice

import (
	"context"

	"github.com/go-petr/credit-manager/internal/domain"
)

// deposit credits coin to the account out of the attached funds.
func (s *Service) deposit(ctx context.Context, b *batch, coin domain.Coin) error {
	if coin.Amount.IsZero() {
		return domain.ErrNoAmount
	}

	if _, err := s.registry.CoinInfo(ctx, coin.Denom); err != nil {
		return err
	}

	if err := b.takeFunds(coin); err != nil {
		return err
	}

	if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, coin.Denom, add(coin.Amount)); err != nil {
		return err
	}

	b.attr("action", string(domain.ActionDeposit))
	b.attr("coins_deposited", coin.String())

	return nil
}

// withdraw debits coin from the account and sends it to the owner.
func (s *Service) withdraw(ctx context.Context, b *batch, coin domain.Coin) error {
	if coin.Amount.IsZero() {
		return domain.ErrNoAmount
	}

	if _, err := s.registry.CoinInfo(ctx, coin.Denom); err != nil {
		return err
	}

	if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, coin.Denom, sub(coin.Amount)); err != nil {
		return err
	}

	b.emit(domain.Message{
		Kind:      domain.MessageTransfer,
		Recipient: b.account.Owner,
		Coins:     []domain.Coin{coin},
	})
	b.attr("action", string(domain.ActionWithdraw))
	b.attr("coins_withdrawn", coin.String())

	return nil
}
