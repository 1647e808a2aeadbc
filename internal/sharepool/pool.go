// Package sharepool implements proportional ownership of a pooled underlying amount.
//
// Holders own shares; each share is worth TotalUnderlying / TotalShares.
// Conversions round against the holder acting on the pool so that other
// holders never absorb the rounding: minting and burning round down, and
// SharesValueCeil gives the amount a holder owes.
package sharepool

import "github.com/go-petr/credit-manager/pkg/mathpkg"

// DefaultSharesPerUnit is the rate at which shares are minted into an empty pool.
// A high rate keeps later proportional rounding losses small.
const DefaultSharesPerUnit = 1_000_000

// Pool is a snapshot of pool totals.
type Pool struct {
	TotalShares     mathpkg.Uint128
	TotalUnderlying mathpkg.Uint128
}

// New returns a pool with the given totals.
func New(totalShares, totalUnderlying mathpkg.Uint128) Pool {
	return Pool{TotalShares: totalShares, TotalUnderlying: totalUnderlying}
}

// IsEmpty reports whether shares cannot be priced from the totals.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero() || p.TotalUnderlying.IsZero()
}

// SharesFor returns the shares minted for adding amount to the pool.
//
// An empty pool mints amount * DefaultSharesPerUnit, otherwise
// floor(TotalShares * amount / TotalUnderlying).
func (p Pool) SharesFor(amount mathpkg.Uint128) (mathpkg.Uint128, error) {
	if p.IsEmpty() {
		return amount.CheckedMul(mathpkg.NewUint128(DefaultSharesPerUnit))
	}

	return p.TotalShares.CheckedMulRatio(amount, p.TotalUnderlying)
}

// Add mints shares for amount and returns the updated pool.
func (p Pool) Add(amount mathpkg.Uint128) (Pool, mathpkg.Uint128, error) {
	shares, err := p.SharesFor(amount)
	if err != nil {
		return p, mathpkg.Zero(), err
	}

	totalShares, err := p.TotalShares.CheckedAdd(shares)
	if err != nil {
		return p, mathpkg.Zero(), err
	}

	totalUnderlying, err := p.TotalUnderlying.CheckedAdd(amount)
	if err != nil {
		return p, mathpkg.Zero(), err
	}

	return New(totalShares, totalUnderlying), shares, nil
}

// SharesValue returns floor(TotalUnderlying * shares / TotalShares).
func (p Pool) SharesValue(shares mathpkg.Uint128) (mathpkg.Uint128, error) {
	if shares.IsZero() || p.TotalShares.IsZero() {
		return mathpkg.Zero(), nil
	}

	return p.TotalUnderlying.CheckedMulRatio(shares, p.TotalShares)
}

// SharesValueCeil returns ceil(TotalUnderlying * shares / TotalShares).
func (p Pool) SharesValueCeil(shares mathpkg.Uint128) (mathpkg.Uint128, error) {
	if shares.IsZero() || p.TotalShares.IsZero() {
		return mathpkg.Zero(), nil
	}

	return p.TotalUnderlying.CheckedMulRatioCeil(shares, p.TotalShares)
}

// SharesToBurn returns floor(TotalShares * amount / TotalUnderlying) capped at held.
func (p Pool) SharesToBurn(amount, held mathpkg.Uint128) (mathpkg.Uint128, error) {
	if p.TotalUnderlying.IsZero() {
		return held, nil
	}

	shares, err := p.TotalShares.CheckedMulRatio(amount, p.TotalUnderlying)
	if err != nil {
		return mathpkg.Zero(), err
	}

	return shares.Min(held), nil
}

// Remove burns shares and takes amount out of the pool.
func (p Pool) Remove(shares, amount mathpkg.Uint128) (Pool, error) {
	totalShares, err := p.TotalShares.CheckedSub(shares)
	if err != nil {
		return p, err
	}

	totalUnderlying, err := p.TotalUnderlying.CheckedSub(amount)
	if err != nil {
		return p, err
	}

	return New(totalShares, totalUnderlying), nil
}
