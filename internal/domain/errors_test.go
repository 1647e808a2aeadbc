package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/stretchr/testify/require"
)

func TestStructuredErrorsUnwrap(t *testing.T) {
	require.ErrorIs(t, NotWhitelistedError{Denom: "uosmo"}, ErrNotWhitelisted)
	require.ErrorIs(t, NotTokenOwnerError{User: "bob", AccountID: "1"}, ErrNotTokenOwner)
	require.ErrorIs(t, AboveMaxLTVError{AccountID: "1", HealthFactor: "0.9"}, ErrAboveMaxLTV)
	require.ErrorIs(t, FundsMismatchError{Denom: "uosmo", Sent: "1", Requested: "2"}, ErrFundsMismatch)

	require.Equal(t, "uosmo: sent 1, deposited 2", FundsMismatchError{Denom: "uosmo", Sent: "1", Requested: "2"}.Error())
}

func TestIsRejection(t *testing.T) {
	_, overflow := mathpkg.NewUint128(300).CheckedSub(mathpkg.NewUint128(400))

	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "NoAmount", err: ErrNoAmount, want: true},
		{name: "WrappedUnknownAction", err: fmt.Errorf("%w: swap", ErrUnknownAction), want: true},
		{name: "AboveMaxLTV", err: AboveMaxLTVError{AccountID: "1", HealthFactor: "0.5"}, want: true},
		{name: "Overflow", err: overflow, want: true},
		{name: "DivideByZero", err: mathpkg.ErrDivideByZero, want: true},
		{name: "NotOwner", err: NotTokenOwnerError{User: "bob", AccountID: "1"}, want: false},
		{name: "Internal", err: errorspkg.ErrInternal, want: false},
		{name: "Collaborator", err: errors.New("oracle: connection refused"), want: false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsRejection(tc.err))
		})
	}
}
