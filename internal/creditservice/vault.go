package creditservice

import (
	"context"
	"strconv"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// vaultDeposit moves coins from the account balance into vault and locks the LP shares.
func (s *Service) vaultDeposit(ctx context.Context, b *batch, vault string, coins []domain.Coin) error {
	if len(coins) == 0 {
		return domain.ErrNoAmount
	}

	if _, err := s.registry.VaultInfo(ctx, vault); err != nil {
		return err
	}

	for _, c := range coins {
		if c.Amount.IsZero() {
			return domain.ErrNoAmount
		}

		if _, err := s.registry.CoinInfo(ctx, c.Denom); err != nil {
			return err
		}

		if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, c.Denom, sub(c.Amount)); err != nil {
			return err
		}
	}

	lp, err := s.vaults.PreviewDeposit(ctx, vault, coins)
	if err != nil {
		return err
	}

	_, err = b.overlay.UpdateVaultPosition(ctx, b.account.ID, vault, func(p domain.VaultPosition) (domain.VaultPosition, error) {
		locked, err := p.Locked.CheckedAdd(lp)
		if err != nil {
			return p, err
		}

		p.Locked = locked

		return p, nil
	})
	if err != nil {
		return err
	}

	b.emit(domain.Message{Kind: domain.MessageVaultDeposit, Vault: vault, Coins: coins})
	b.attr("action", string(domain.ActionVaultDeposit))
	b.attr("vault", vault)
	b.attr("lp_locked", lp.String())

	return nil
}

// vaultRequestUnlock moves amount of locked LP shares into a new unlocking position.
func (s *Service) vaultRequestUnlock(ctx context.Context, b *batch, vault string, amount mathpkg.Uint128) error {
	if amount.IsZero() {
		return domain.ErrNoAmount
	}

	if _, err := s.registry.VaultInfo(ctx, vault); err != nil {
		return err
	}

	p, err := b.overlay.VaultPosition(ctx, b.account.ID, vault)
	if err != nil {
		return err
	}

	if _, err := p.Locked.CheckedSub(amount); err != nil {
		return err
	}

	// Reserving only allocates an id. If the batch is discarded the id is never started.
	status, err := s.vaults.ReserveUnlock(ctx, vault, amount)
	if err != nil {
		return err
	}

	_, err = b.overlay.UpdateVaultPosition(ctx, b.account.ID, vault, func(p domain.VaultPosition) (domain.VaultPosition, error) {
		locked, err := p.Locked.CheckedSub(amount)
		if err != nil {
			return p, err
		}

		p.Locked = locked
		p.Unlocking = append(p.Unlocking, domain.UnlockingPosition{ID: status.ID, Amount: amount})

		return p, nil
	})
	if err != nil {
		return err
	}

	b.emit(domain.Message{
		Kind:       domain.MessageVaultRequestUnlock,
		Vault:      vault,
		PositionID: status.ID,
		Amount:     amount,
	})
	b.attr("action", string(domain.ActionVaultRequestUnlock))
	b.attr("vault", vault)
	b.attr("position_id", strconv.FormatUint(status.ID, 10))

	return nil
}

// vaultWithdrawUnlocked redeems a matured unlocking position into the account balance.
func (s *Service) vaultWithdrawUnlocked(ctx context.Context, b *batch, vault string, positionID uint64) error {
	if _, err := s.registry.VaultInfo(ctx, vault); err != nil {
		return err
	}

	p, err := b.overlay.VaultPosition(ctx, b.account.ID, vault)
	if err != nil {
		return err
	}

	idx := -1

	for i, u := range p.Unlocking {
		if u.ID == positionID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return domain.ErrVaultPositionNotFound
	}

	amount := p.Unlocking[idx].Amount

	status, err := s.vaults.UnlockStatus(ctx, vault, positionID)
	if err != nil {
		return err
	}

	if status.UnlockedAt.After(b.now) {
		return domain.ErrUnlockNotReady
	}

	_, err = b.overlay.UpdateVaultPosition(ctx, b.account.ID, vault, func(p domain.VaultPosition) (domain.VaultPosition, error) {
		p.Unlocking = append(p.Unlocking[:idx], p.Unlocking[idx+1:]...)
		if len(p.Unlocking) == 0 {
			p.Unlocking = nil
		}

		return p, nil
	})
	if err != nil {
		return err
	}

	coins, err := s.vaults.PreviewRedeem(ctx, vault, amount)
	if err != nil {
		return err
	}

	for _, c := range coins {
		if _, err := b.overlay.UpdateCoinBalance(ctx, b.account.ID, c.Denom, add(c.Amount)); err != nil {
			return err
		}
	}

	b.emit(domain.Message{
		Kind:       domain.MessageVaultWithdrawUnlocked,
		Vault:      vault,
		PositionID: positionID,
		Amount:     amount,
		Coins:      coins,
	})
	b.attr("action", string(domain.ActionVaultWithdrawUnlocked))
	b.attr("vault", vault)
	b.attr("position_id", strconv.FormatUint(positionID, 10))

	return nil
}
