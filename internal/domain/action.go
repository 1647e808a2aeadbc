package domain

import "github.com/go-petr/credit-manager/pkg/mathpkg"

// ActionKind names an account update action.
type ActionKind string

// Supported actions.
const (
	ActionDeposit               ActionKind = "deposit"
	ActionWithdraw              ActionKind = "withdraw"
	ActionBorrow                ActionKind = "borrow"
	ActionRepay                 ActionKind = "repay"
	ActionVaultDeposit          ActionKind = "vault_deposit"
	ActionVaultRequestUnlock    ActionKind = "vault_request_unlock"
	ActionVaultWithdrawUnlocked ActionKind = "vault_withdraw_unlocked"
)

// Action is a single step of an account update batch.
//
// Coin is used by deposit, withdraw, borrow and repay. Vault actions use Vault
// together with Coins, Amount or PositionID.
type Action struct {
	Kind       ActionKind      `json:"kind"`
	Coin       Coin            `json:"coin,omitempty"`
	Vault      string          `json:"vault,omitempty"`
	Coins      []Coin          `json:"coins,omitempty"`
	Amount     mathpkg.Uint128 `json:"amount,omitempty"`
	PositionID uint64          `json:"position_id,omitempty"`
}

// Deposit builds a deposit action.
func Deposit(c Coin) Action { return Action{Kind: ActionDeposit, Coin: c} }

// Withdraw builds a withdraw action.
func Withdraw(c Coin) Action { return Action{Kind: ActionWithdraw, Coin: c} }

// Borrow builds a borrow action.
func Borrow(c Coin) Action { return Action{Kind: ActionBorrow, Coin: c} }

// Repay builds a repay action.
func Repay(c Coin) Action { return Action{Kind: ActionRepay, Coin: c} }

// VaultDeposit builds a vault deposit action.
func VaultDeposit(vault string, coins ...Coin) Action {
	return Action{Kind: ActionVaultDeposit, Vault: vault, Coins: coins}
}

// VaultRequestUnlock builds an action that starts unlocking LP shares.
func VaultRequestUnlock(vault string, amount mathpkg.Uint128) Action {
	return Action{Kind: ActionVaultRequestUnlock, Vault: vault, Amount: amount}
}

// VaultWithdrawUnlocked builds an action that withdraws a matured unlocking position.
func VaultWithdrawUnlocked(vault string, positionID uint64) Action {
	return Action{Kind: ActionVaultWithdrawUnlocked, Vault: vault, PositionID: positionID}
}

// UpdateAccountParams is the input data for an account update batch.
type UpdateAccountParams struct {
	AccountID string   `json:"account_id"`
	Actions   []Action `json:"actions"`
	Funds     []Coin   `json:"funds"`
}

// Attribute is a key/value pair describing what a batch did.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateAccountResult is the result of a committed batch.
type UpdateAccountResult struct {
	AccountID  string      `json:"account_id"`
	Messages   []Message   `json:"messages"`
	Attributes []Attribute `json:"attributes"`
}
