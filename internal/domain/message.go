package domain

import (
	"time"

	"github.com/go-petr/credit-manager/pkg/mathpkg"
)

// MessageKind names an instruction for an external collaborator.
type MessageKind string

// Instructions emitted by committed batches.
const (
	MessageBorrow                MessageKind = "borrow"
	MessageRepay                 MessageKind = "repay"
	MessageTransfer              MessageKind = "transfer"
	MessageVaultDeposit          MessageKind = "vault_deposit"
	MessageVaultRequestUnlock    MessageKind = "vault_request_unlock"
	MessageVaultWithdrawUnlocked MessageKind = "vault_withdraw_unlocked"
)

// Message is an instruction queued by a batch and sent only after the batch commits.
type Message struct {
	ID         string          `json:"id"`
	BatchID    string          `json:"batch_id"`
	Kind       MessageKind     `json:"kind"`
	AccountID  string          `json:"account_id"`
	Recipient  string          `json:"recipient,omitempty"`
	Vault      string          `json:"vault,omitempty"`
	PositionID uint64          `json:"position_id,omitempty"`
	Amount     mathpkg.Uint128 `json:"amount,omitempty"`
	Coins      []Coin          `json:"coins"`
	CreatedAt  time.Time       `json:"created_at"`
}
