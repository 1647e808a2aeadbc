// Package vaultadapter talks to the yield vaults credit accounts deposit into.
package vaultadapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// ErrUnknownVault indicates a vault the adapter does not know.
var ErrUnknownVault = errors.New("unknown vault")

// ErrWrongDenom indicates a deposit of a coin the vault does not accept.
var ErrWrongDenom = errors.New("vault does not accept denom")

type mockVault struct {
	denom    string
	supply   mathpkg.Uint128
	unlocks  map[uint64]domain.UnlockStatus
	started  map[uint64]struct{}
}

// Mock is an in-process set of single-denom vaults minting one LP share per deposited unit.
type Mock struct {
	mu     sync.Mutex
	lockup time.Duration
	now    func() time.Time
	nextID uint64
	vaults map[string]*mockVault
}

// NewMock returns a Mock whose unlocks mature after lockup. A nil now uses time.Now.
func NewMock(lockup time.Duration, now func() time.Time) *Mock {
	if now == nil {
		now = time.Now
	}

	return &Mock{
		lockup: lockup,
		now:    now,
		vaults: make(map[string]*mockVault),
	}
}

// AddVault registers a vault accepting denom.
func (m *Mock) AddVault(address, denom string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vaults[address] = &mockVault{
		denom:    denom,
		unlocks:  make(map[uint64]domain.UnlockStatus),
		started:  make(map[uint64]struct{}),
	}
}

func (m *Mock) vault(address string) (*mockVault, error) {
	v, ok := m.vaults[address]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVault, address)
	}

	return v, nil
}

func (v *mockVault) lpFor(coins []domain.Coin) (mathpkg.Uint128, error) {
	total := mathpkg.Zero()

	for _, c := range coins {
		if c.Denom != v.denom {
			return mathpkg.Zero(), fmt.Errorf("%w: %s", ErrWrongDenom, c.Denom)
		}

		var err error

		total, err = total.CheckedAdd(c.Amount)
		if err != nil {
			return mathpkg.Zero(), err
		}
	}

	return total, nil
}

// PreviewDeposit returns the LP shares minted for coins.
func (m *Mock) PreviewDeposit(_ context.Context, vault string, coins []domain.Coin) (mathpkg.Uint128, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return mathpkg.Zero(), err
	}

	return v.lpFor(coins)
}

// PreviewRedeem returns the coins amount LP shares are worth.
func (m *Mock) PreviewRedeem(_ context.Context, vault string, amount mathpkg.Uint128) ([]domain.Coin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return nil, err
	}

	if amount.IsZero() {
		return []domain.Coin{}, nil
	}

	return []domain.Coin{{Denom: v.denom, Amount: amount}}, nil
}

// ReserveUnlock allocates the id of a future unlocking position.
// The lockup starts when StartUnlock is called with that id. A reservation
// holds no vault state, so an id whose batch is discarded is never used.
func (m *Mock) ReserveUnlock(_ context.Context, vault string, amount mathpkg.Uint128) (domain.UnlockStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.vault(vault)
	if err != nil {
		return domain.UnlockStatus{}, err
	}

	m.nextID++

	return domain.UnlockStatus{
		ID:         m.nextID,
		Amount:     amount,
		UnlockedAt: m.now().Add(m.lockup),
	}, nil
}

// UnlockStatus returns the unlocking position with the given id.
func (m *Mock) UnlockStatus(_ context.Context, vault string, id uint64) (domain.UnlockStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return domain.UnlockStatus{}, err
	}

	s, ok := v.unlocks[id]
	if !ok {
		return domain.UnlockStatus{}, domain.ErrVaultPositionNotFound
	}

	return s, nil
}

// Deposit mints LP shares for coins.
func (m *Mock) Deposit(_ context.Context, vault string, coins []domain.Coin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return err
	}

	lp, err := v.lpFor(coins)
	if err != nil {
		return err
	}

	supply, err := v.supply.CheckedAdd(lp)
	if err != nil {
		return err
	}

	v.supply = supply

	return nil
}

// StartUnlock starts the lockup of a reserved unlocking position.
// Starting an id twice is a no-op so redelivered messages are safe.
func (m *Mock) StartUnlock(_ context.Context, vault string, id uint64, amount mathpkg.Uint128) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return err
	}

	if id == 0 || id > m.nextID {
		return domain.ErrVaultPositionNotFound
	}

	if _, ok := v.started[id]; ok {
		return nil
	}

	v.started[id] = struct{}{}

	v.unlocks[id] = domain.UnlockStatus{
		ID:         id,
		Amount:     amount,
		UnlockedAt: m.now().Add(m.lockup),
	}

	return nil
}

// Redeem burns a matured unlocking position.
func (m *Mock) Redeem(_ context.Context, vault string, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return err
	}

	s, ok := v.unlocks[id]
	if !ok {
		return domain.ErrVaultPositionNotFound
	}

	if s.UnlockedAt.After(m.now()) {
		return domain.ErrUnlockNotReady
	}

	supply, err := v.supply.CheckedSub(s.Amount)
	if err != nil {
		return err
	}

	v.supply = supply
	delete(v.unlocks, id)

	return nil
}

// Supply returns the LP shares minted by the vault.
func (m *Mock) Supply(vault string) (mathpkg.Uint128, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vault(vault)
	if err != nil {
		return mathpkg.Zero(), err
	}

	return v.supply, nil
}
