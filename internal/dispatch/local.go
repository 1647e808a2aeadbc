// Package dispatch delivers the messages of committed batches to external collaborators.
package dispatch

import (
	"context"
	"fmt"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/rs/zerolog"
)

// Lender executes borrow and repay messages.
type Lender interface {
	Borrow(ctx context.Context, coin domain.Coin) error
	Repay(ctx context.Context, coin domain.Coin) error
}

// Vaults executes vault messages.
type Vaults interface {
	Deposit(ctx context.Context, vault string, coins []domain.Coin) error
	StartUnlock(ctx context.Context, vault string, id uint64, amount mathpkg.Uint128) error
	Redeem(ctx context.Context, vault string, id uint64) error
}

// Local executes messages in-process against the given collaborators.
type Local struct {
	lender Lender
	vaults Vaults
}

// NewLocal returns a Local dispatcher.
func NewLocal(lender Lender, vaults Vaults) *Local {
	return &Local{lender: lender, vaults: vaults}
}

// Dispatch executes msgs in order and stops at the first failure.
func (d *Local) Dispatch(ctx context.Context, msgs []domain.Message) error {
	l := zerolog.Ctx(ctx)

	for _, m := range msgs {
		if err := d.execute(ctx, m); err != nil {
			return fmt.Errorf("dispatch %s %s: %w", m.Kind, m.ID, err)
		}

		l.Debug().Str("message_id", m.ID).Str("kind", string(m.Kind)).Msg("message dispatched")
	}

	return nil
}

func (d *Local) execute(ctx context.Context, m domain.Message) error {
	switch m.Kind {
	case domain.MessageBorrow:
		for _, c := range m.Coins {
			if err := d.lender.Borrow(ctx, c); err != nil {
				return err
			}
		}
	case domain.MessageRepay:
		for _, c := range m.Coins {
			if err := d.lender.Repay(ctx, c); err != nil {
				return err
			}
		}
	case domain.MessageVaultDeposit:
		return d.vaults.Deposit(ctx, m.Vault, m.Coins)
	case domain.MessageVaultRequestUnlock:
		return d.vaults.StartUnlock(ctx, m.Vault, m.PositionID, m.Amount)
	case domain.MessageVaultWithdrawUnlocked:
		return d.vaults.Redeem(ctx, m.Vault, m.PositionID)
	case domain.MessageTransfer:
		// Funds leave the credit manager, nothing tracks them in-process.
		zerolog.Ctx(ctx).Info().
			Str("recipient", m.Recipient).
			Interface("coins", m.Coins).
			Msg("transfer")
	default:
		return fmt.Errorf("unknown message kind %q", m.Kind)
	}

	return nil
}
