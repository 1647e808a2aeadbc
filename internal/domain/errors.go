package domain

import (
	"errors"
	"fmt"

	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

var (
	// ErrAccountNotFound indicates that the credit account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoAmount indicates an action with a zero amount.
	ErrNoAmount = errors.New("no amount specified")
	// ErrNotWhitelisted indicates a denom or vault absent from the registry.
	ErrNotWhitelisted = errors.New("not whitelisted")
	// ErrNotTokenOwner indicates that the caller does not own the credit account.
	ErrNotTokenOwner = errors.New("not the owner of the account")
	// ErrAboveMaxLTV indicates that a batch would leave the account above its max LTV.
	ErrAboveMaxLTV = errors.New("account would be above max LTV")
	// ErrFundsMismatch indicates that attached funds do not match the deposits of a batch.
	ErrFundsMismatch = errors.New("attached funds mismatch")
	// ErrNoDebt indicates a repay for a denom the account does not owe.
	ErrNoDebt = errors.New("no debt to repay")
	// ErrZeroShares indicates a borrow too small to be represented by at least one debt share.
	ErrZeroShares = errors.New("borrow amount is worth zero debt shares")
	// ErrUnlockNotReady indicates a vault withdrawal before the unlocking period ended.
	ErrUnlockNotReady = errors.New("unlocking position is not ready for withdrawal")
	// ErrVaultPositionNotFound indicates a missing vault or unlocking position.
	ErrVaultPositionNotFound = errors.New("vault position not found")
	// ErrUnknownAction indicates an unsupported action kind.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnauthorizedConfig indicates that the caller may not update the configuration.
	ErrUnauthorizedConfig = errors.New("only the owner can update config")
	// ErrInvalidConfig indicates inconsistent risk parameters.
	ErrInvalidConfig = errors.New("invalid config")
)

// NotWhitelistedError reports the rejected denom or vault.
type NotWhitelistedError struct {
	Denom string
}

func (e NotWhitelistedError) Error() string {
	return fmt.Sprintf("%s is not whitelisted", e.Denom)
}

// Unwrap allows errors.Is(err, ErrNotWhitelisted).
func (e NotWhitelistedError) Unwrap() error { return ErrNotWhitelisted }

// NotTokenOwnerError reports who tried to update which account.
type NotTokenOwnerError struct {
	User      string
	AccountID string
}

func (e NotTokenOwnerError) Error() string {
	return fmt.Sprintf("%s is not the owner of account %s", e.User, e.AccountID)
}

// Unwrap allows errors.Is(err, ErrNotTokenOwner).
func (e NotTokenOwnerError) Unwrap() error { return ErrNotTokenOwner }

// AboveMaxLTVError reports the account and the health factor it would have had.
type AboveMaxLTVError struct {
	AccountID    string
	HealthFactor string
}

func (e AboveMaxLTVError) Error() string {
	return fmt.Sprintf("account %s would have a max LTV health factor of %s", e.AccountID, e.HealthFactor)
}

// Unwrap allows errors.Is(err, ErrAboveMaxLTV).
func (e AboveMaxLTVError) Unwrap() error { return ErrAboveMaxLTV }

// FundsMismatchError reports the denom whose attached funds do not match the deposits.
type FundsMismatchError struct {
	Denom     string
	Sent      string
	Requested string
}

func (e FundsMismatchError) Error() string {
	return fmt.Sprintf("%s: sent %s, deposited %s", e.Denom, e.Sent, e.Requested)
}

// Unwrap allows errors.Is(err, ErrFundsMismatch).
func (e FundsMismatchError) Unwrap() error { return ErrFundsMismatch }

// ErrAccountAlreadyExists indicates an account id collision.
var ErrAccountAlreadyExists = errors.New("account already exists")

// IsRejection reports whether err rejects a batch on its content, as opposed
// to a failure of the ledger or of an external collaborator.
func IsRejection(err error) bool {
	var overflow mathpkg.OverflowError

	switch {
	case errors.Is(err, ErrNoAmount),
		errors.Is(err, ErrNotWhitelisted),
		errors.Is(err, ErrAboveMaxLTV),
		errors.Is(err, ErrFundsMismatch),
		errors.Is(err, ErrNoDebt),
		errors.Is(err, ErrZeroShares),
		errors.Is(err, ErrUnlockNotReady),
		errors.Is(err, ErrVaultPositionNotFound),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, mathpkg.ErrDivideByZero),
		errors.As(err, &overflow):
		return true
	}

	return false
}
