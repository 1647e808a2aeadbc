package sharepool

import (
	"testing"

	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/stretchr/testify/require"
)

func u(n uint64) mathpkg.Uint128 { return mathpkg.NewUint128(n) }

func TestSharesFor(t *testing.T) {
	testCases := []struct {
		name   string
		pool   Pool
		amount mathpkg.Uint128
		want   string
	}{
		{name: "EmptyPool", pool: New(u(0), u(0)), amount: u(42), want: "42000000"},
		{name: "NoUnderlying", pool: New(u(5), u(0)), amount: u(3), want: "3000000"},
		{name: "NoShares", pool: New(u(0), u(9)), amount: u(3), want: "3000000"},
		{name: "Proportional", pool: New(u(50_000_000), u(51)), amount: u(50), want: "49019607"},
		{name: "TooSmall", pool: New(u(1), u(10)), amount: u(1), want: "0"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.pool.SharesFor(tc.amount)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestAddAndValue(t *testing.T) {
	pool := New(u(0), u(0))

	pool, sharesA, err := pool.Add(u(50))
	require.NoError(t, err)
	require.Equal(t, "50000000", sharesA.String())

	// interest accrues outside the pool
	pool.TotalUnderlying = u(51)

	pool, sharesB, err := pool.Add(u(50))
	require.NoError(t, err)
	require.Equal(t, "49019607", sharesB.String())
	require.Equal(t, "99019607", pool.TotalShares.String())
	require.Equal(t, "101", pool.TotalUnderlying.String())

	valueA, err := pool.SharesValue(sharesA)
	require.NoError(t, err)
	valueB, err := pool.SharesValue(sharesB)
	require.NoError(t, err)

	sum, err := valueA.CheckedAdd(valueB)
	require.NoError(t, err)
	require.False(t, pool.TotalUnderlying.LessThan(sum), "rounding must never exceed the pooled amount")

	ceil, err := pool.SharesValueCeil(sharesA)
	require.NoError(t, err)
	require.True(t, !ceil.LessThan(valueA))
}

func TestSharesToBurnAndRemove(t *testing.T) {
	pool := New(u(100_000_000), u(101))

	// floor(100_000_000 * 10 / 101)
	burn, err := pool.SharesToBurn(u(10), u(50_000_000))
	require.NoError(t, err)
	require.Equal(t, "9900990", burn.String())

	capped, err := pool.SharesToBurn(u(101), u(50_000_000))
	require.NoError(t, err)
	require.Equal(t, "50000000", capped.String())

	pool, err = pool.Remove(burn, u(10))
	require.NoError(t, err)
	require.Equal(t, "90099010", pool.TotalShares.String())
	require.Equal(t, "91", pool.TotalUnderlying.String())

	// The remaining shares are worth no more than before the burn.
	rest, err := pool.SharesValueCeil(u(50_000_000 - 9_900_990))
	require.NoError(t, err)
	require.Equal(t, "41", rest.String())

	_, err = pool.Remove(u(1), u(1_000))
	require.Error(t, err)
}

func TestSharesToBurnLeavesOtherHoldersWhole(t *testing.T) {
	// Two holders of 50_000_000 shares each owe 101 together.
	pool := New(u(100_000_000), u(101))

	before, err := pool.SharesValueCeil(u(50_000_000))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		burn, err := pool.SharesToBurn(u(3), u(50_000_000))
		require.NoError(t, err)

		pool, err = pool.Remove(burn, u(3))
		require.NoError(t, err)
	}

	after, err := pool.SharesValueCeil(u(50_000_000))
	require.NoError(t, err)
	require.False(t, before.LessThan(after), "other holder owes %s, was %s", after, before)
}

func TestSharesValueDust(t *testing.T) {
	// one share left while pooled debt accrued: the remaining holder owes everything
	pool := New(u(1), u(7))

	got, err := pool.SharesValue(u(1))
	require.NoError(t, err)
	require.Equal(t, "7", got.String())

	// no shares left: the pooled amount is unattributable
	pool = New(u(0), u(7))

	got, err = pool.SharesValue(u(0))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}
