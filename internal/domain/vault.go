package domain

import (
	"time"

	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// UnlockingPosition is an amount of vault LP shares waiting for its lockup to end.
type UnlockingPosition struct {
	ID     uint64          `json:"id"`
	Amount mathpkg.Uint128 `json:"amount"`
}

// VaultPosition holds the LP shares an account owns in a vault.
type VaultPosition struct {
	Locked    mathpkg.Uint128     `json:"locked"`
	Unlocking []UnlockingPosition `json:"unlocking"`
}

// IsEmpty reports whether the position holds nothing.
func (p VaultPosition) IsEmpty() bool {
	return p.Locked.IsZero() && len(p.Unlocking) == 0
}

// Total returns locked plus unlocking LP shares.
func (p VaultPosition) Total() (mathpkg.Uint128, error) {
	total := p.Locked

	for _, u := range p.Unlocking {
		var err error

		total, err = total.CheckedAdd(u.Amount)
		if err != nil {
			return mathpkg.Zero(), err
		}
	}

	return total, nil
}

// Clone returns a deep copy of the position.
func (p VaultPosition) Clone() VaultPosition {
	c := VaultPosition{Locked: p.Locked}
	if len(p.Unlocking) > 0 {
		c.Unlocking = append([]UnlockingPosition(nil), p.Unlocking...)
	}

	return c
}

// VaultPositionWithAddr is a vault position together with the vault address.
type VaultPositionWithAddr struct {
	Vault    string        `json:"vault"`
	Position VaultPosition `json:"position"`
}

// UnlockStatus is the vault's view of an unlocking position.
type UnlockStatus struct {
	ID         uint64          `json:"id"`
	Amount     mathpkg.Uint128 `json:"amount"`
	UnlockedAt time.Time       `json:"unlocked_at"`
}

// AccountVaultPosition is a single row of the vault positions ledger.
type AccountVaultPosition struct {
	AccountID string        `json:"account_id"`
	Vault     string        `json:"vault"`
	Position  VaultPosition `json:"position"`
}
