package creditservice

import (
	"context"
	"sort"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/google/uuid"
)

// batch is the in-flight state of one account update.
type batch struct {
	id      string
	account domain.Account
	now     time.Time
	overlay *ledgerrepo.Overlay

	// borrowed and repaid track lender debt changes that are not yet executed,
	// so that pooled debt reads within the batch include them. borrowed holds
	// the debt growth projected by the lender, not the borrowed amounts.
	borrowed map[string]mathpkg.Uint128
	repaid   map[string]mathpkg.Uint128

	// sent are the attached funds, deposited is what deposits consumed of them.
	sent      map[string]mathpkg.Uint128
	deposited map[string]mathpkg.Uint128

	messages []domain.Message
	attrs    []domain.Attribute
}

func newBatch(account domain.Account, base ledgerrepo.Reader, funds []domain.Coin, now time.Time) (*batch, error) {
	b := &batch{
		id:        uuid.NewString(),
		account:   account,
		now:       now,
		overlay:   ledgerrepo.NewOverlay(base),
		borrowed:  make(map[string]mathpkg.Uint128),
		repaid:    make(map[string]mathpkg.Uint128),
		sent:      make(map[string]mathpkg.Uint128),
		deposited: make(map[string]mathpkg.Uint128),
	}

	for _, c := range funds {
		sent, err := b.sent[c.Denom].CheckedAdd(c.Amount)
		if err != nil {
			return nil, err
		}

		b.sent[c.Denom] = sent
	}

	return b, nil
}

// emit queues a message to be sent once the batch commits.
func (b *batch) emit(m domain.Message) {
	m.ID = uuid.NewString()
	m.BatchID = b.id
	m.AccountID = b.account.ID
	m.CreatedAt = b.now

	b.messages = append(b.messages, m)
}

func (b *batch) attr(key, value string) {
	b.attrs = append(b.attrs, domain.Attribute{Key: key, Value: value})
}

// takeFunds consumes c from the attached funds.
func (b *batch) takeFunds(c domain.Coin) error {
	deposited, err := b.deposited[c.Denom].CheckedAdd(c.Amount)
	if err != nil {
		return err
	}

	if b.sent[c.Denom].LessThan(deposited) {
		return domain.FundsMismatchError{
			Denom:     c.Denom,
			Sent:      b.sent[c.Denom].String(),
			Requested: deposited.String(),
		}
	}

	b.deposited[c.Denom] = deposited

	return nil
}

// checkFunds fails when attached funds were not deposited in full.
func (b *batch) checkFunds() error {
	denoms := make([]string, 0, len(b.sent))
	for denom := range b.sent {
		denoms = append(denoms, denom)
	}

	sort.Strings(denoms)

	for _, denom := range denoms {
		if !b.sent[denom].Equal(b.deposited[denom]) {
			return domain.FundsMismatchError{
				Denom:     denom,
				Sent:      b.sent[denom].String(),
				Requested: b.deposited[denom].String(),
			}
		}
	}

	return nil
}

// debtFunc returns the pooled debt of denom.
type debtFunc func(ctx context.Context, denom string) (mathpkg.Uint128, error)

// pooledDebt returns the lender debt as it will be once the batch messages are executed.
func (b *batch) pooledDebt(rb RedBank) debtFunc {
	return func(ctx context.Context, denom string) (mathpkg.Uint128, error) {
		debt, err := rb.UserDebt(ctx, denom)
		if err != nil {
			return mathpkg.Zero(), err
		}

		debt, err = debt.CheckedAdd(b.borrowed[denom])
		if err != nil {
			return mathpkg.Zero(), err
		}

		return debt.CheckedSub(b.repaid[denom])
	}
}

func add(amount mathpkg.Uint128) func(mathpkg.Uint128) (mathpkg.Uint128, error) {
	return func(old mathpkg.Uint128) (mathpkg.Uint128, error) {
		return old.CheckedAdd(amount)
	}
}

func sub(amount mathpkg.Uint128) func(mathpkg.Uint128) (mathpkg.Uint128, error) {
	return func(old mathpkg.Uint128) (mathpkg.Uint128, error) {
		return old.CheckedSub(amount)
	}
}
