// Package redbank talks to the lender that funds credit account borrows.
package redbank

import (
	"context"
	"sync"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// Mock is an in-process lender keeping the pooled debt per denom.
//
// Every borrow adds SimulatedYield on top of the borrowed amount, standing in
// for interest accrued between blocks.
type Mock struct {
	mu             sync.Mutex
	debt           map[string]mathpkg.Uint128
	simulatedYield mathpkg.Uint128
}

// NewMock returns a Mock lender.
func NewMock(simulatedYield uint64) *Mock {
	return &Mock{
		debt:           make(map[string]mathpkg.Uint128),
		simulatedYield: mathpkg.NewUint128(simulatedYield),
	}
}

// UserDebt returns the amount the credit manager owes for the denom.
func (m *Mock) UserDebt(_ context.Context, denom string) (mathpkg.Uint128, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.debt[denom], nil
}

// PreviewBorrow returns the debt growth a borrow of coin would cause.
func (m *Mock) PreviewBorrow(_ context.Context, coin domain.Coin) (mathpkg.Uint128, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return coin.Amount.CheckedAdd(m.simulatedYield)
}

// Borrow records a borrow of coin.
func (m *Mock) Borrow(_ context.Context, coin domain.Coin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	debt, err := m.debt[coin.Denom].CheckedAdd(coin.Amount)
	if err != nil {
		return err
	}

	debt, err = debt.CheckedAdd(m.simulatedYield)
	if err != nil {
		return err
	}

	m.debt[coin.Denom] = debt

	return nil
}

// Repay records a repayment. Anything above the owed amount is ignored.
func (m *Mock) Repay(_ context.Context, coin domain.Coin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	debt := m.debt[coin.Denom]

	debt, err := debt.CheckedSub(coin.Amount.Min(debt))
	if err != nil {
		return err
	}

	m.debt[coin.Denom] = debt

	return nil
}

// Accrue adds interest to the pooled debt of the denom.
func (m *Mock) Accrue(denom string, interest mathpkg.Uint128) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	debt, err := m.debt[denom].CheckedAdd(interest)
	if err != nil {
		return err
	}

	m.debt[denom] = debt

	return nil
}
