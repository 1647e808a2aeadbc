package domain

import "time"

// Account is a credit account. Balances and debt are kept in the ledger, keyed by ID.
type Account struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOwner reports whether the user may submit batches for the account.
func (a Account) IsOwner(user string) bool {
	return a.Owner == user
}
