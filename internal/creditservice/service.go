// Package creditservice manages business logic layer of credit account updates.
//
// An update is a batch of actions applied to a staged copy of the ledger.
// The batch is committed together with its outgoing messages only if every
// action succeeds and the account stays below its max LTV afterwards.
package creditservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/internal/metrics"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// redeliverPageSize bounds the outbox page read on redelivery.
const redeliverPageSize = 100

// AccountRepo provides the credit accounts needed by credit service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package creditservice
type AccountRepo interface {
	Get(ctx context.Context, id string) (domain.Account, error)
}

// Registry provides the whitelisted coins and vaults with their risk parameters.
type Registry interface {
	CoinInfo(ctx context.Context, denom string) (domain.CoinInfo, error)
	VaultInfo(ctx context.Context, address string) (domain.VaultInfo, error)
}

// Ledger provides data access layer interface needed by credit service layer.
type Ledger interface {
	CoinBalance(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error)
	DebtShares(ctx context.Context, accountID, denom string) (mathpkg.Uint128, error)
	TotalDebtShares(ctx context.Context, denom string) (mathpkg.Uint128, error)
	VaultPosition(ctx context.Context, accountID, vault string) (domain.VaultPosition, error)
	CoinBalances(ctx context.Context, accountID string) ([]domain.Coin, error)
	AccountDebtShares(ctx context.Context, accountID string) ([]domain.DebtShares, error)
	VaultPositions(ctx context.Context, accountID string) ([]domain.VaultPositionWithAddr, error)
	AllCoinBalances(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.CoinBalance, error)
	AllDebtShares(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.AccountDebtShares, error)
	AllTotalDebtShares(ctx context.Context, startAfter string, limit int32) ([]domain.DebtShares, error)
	Apply(ctx context.Context, cs ledgerrepo.Changeset, msgs []domain.Message) error
	PendingMessages(ctx context.Context, limit int32) ([]domain.Message, error)
	MarkDispatched(ctx context.Context, ids []string) error
}

// RedBank reports the debt the credit manager owes to the external lender.
type RedBank interface {
	UserDebt(ctx context.Context, denom string) (mathpkg.Uint128, error)
	// PreviewBorrow returns how much the pooled debt grows when coin is borrowed,
	// including anything the lender accrues on the borrow itself.
	PreviewBorrow(ctx context.Context, coin domain.Coin) (mathpkg.Uint128, error)
}

// Oracle prices denoms.
type Oracle interface {
	Price(ctx context.Context, denom string) (decimal.Decimal, error)
}

// VaultAdapter previews vault operations without executing them.
type VaultAdapter interface {
	PreviewDeposit(ctx context.Context, vault string, coins []domain.Coin) (mathpkg.Uint128, error)
	PreviewRedeem(ctx context.Context, vault string, amount mathpkg.Uint128) ([]domain.Coin, error)
	ReserveUnlock(ctx context.Context, vault string, amount mathpkg.Uint128) (domain.UnlockStatus, error)
	UnlockStatus(ctx context.Context, vault string, id uint64) (domain.UnlockStatus, error)
}

// Dispatcher delivers the messages of committed batches.
type Dispatcher interface {
	Dispatch(ctx context.Context, msgs []domain.Message) error
}

// Service facilitates credit service layer logic.
type Service struct {
	// mu serializes batches so that each one sees the result of the previous.
	mu sync.Mutex

	accounts   AccountRepo
	registry   Registry
	ledger     Ledger
	redBank    RedBank
	oracle     Oracle
	vaults     VaultAdapter
	dispatcher Dispatcher
	metrics    *metrics.Metrics
	now        func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock sets the clock used for message timestamps and unlock maturity.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Deps holds the collaborators of the Service.
type Deps struct {
	Accounts   AccountRepo
	Registry   Registry
	Ledger     Ledger
	RedBank    RedBank
	Oracle     Oracle
	Vaults     VaultAdapter
	Dispatcher Dispatcher
	Metrics    *metrics.Metrics
}

// New returns credit service struct to manage account updates.
func New(d Deps, opts ...Option) *Service {
	s := &Service{
		accounts:   d.Accounts,
		registry:   d.Registry,
		ledger:     d.Ledger,
		redBank:    d.RedBank,
		oracle:     d.Oracle,
		vaults:     d.Vaults,
		dispatcher: d.Dispatcher,
		metrics:    d.Metrics,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpdateAccount applies the actions of params to the account as one batch.
//
// Either every action is committed together with its messages, or nothing is.
// Messages are dispatched after the commit. A dispatch failure leaves them in
// the outbox for RedeliverPending and does not fail the update.
func (s *Service) UpdateAccount(ctx context.Context, caller string, params domain.UpdateAccountParams) (domain.UpdateAccountResult, error) {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()

	account, err := s.accounts.Get(ctx, params.AccountID)
	if err != nil {
		s.metrics.ObserveBatch(metrics.OutcomeFailed, s.now().Sub(start))
		return domain.UpdateAccountResult{}, err
	}

	if !account.IsOwner(caller) {
		l.Info().Str("caller", caller).Str("account_id", account.ID).Msg("update rejected")
		s.metrics.ObserveBatch(metrics.OutcomeRejected, s.now().Sub(start))

		return domain.UpdateAccountResult{}, domain.NotTokenOwnerError{User: caller, AccountID: account.ID}
	}

	b, err := newBatch(account, s.ledger, params.Funds, start)
	if err != nil {
		s.metrics.ObserveBatch(metrics.OutcomeRejected, s.now().Sub(start))
		return domain.UpdateAccountResult{}, err
	}

	if err := s.run(ctx, b, params.Actions); err != nil {
		l.Info().Err(err).Str("account_id", account.ID).Str("batch_id", b.id).Msg("batch discarded")
		s.metrics.ObserveBatch(outcome(err), s.now().Sub(start))

		return domain.UpdateAccountResult{}, err
	}

	if err := s.ledger.Apply(ctx, b.overlay.Changes(), b.messages); err != nil {
		s.metrics.ObserveBatch(metrics.OutcomeFailed, s.now().Sub(start))
		return domain.UpdateAccountResult{}, err
	}

	for _, a := range params.Actions {
		s.metrics.AddAction(string(a.Kind))
	}

	s.metrics.ObserveBatch(metrics.OutcomeCommitted, s.now().Sub(start))

	l.Info().Str("account_id", account.ID).Str("batch_id", b.id).
		Int("actions", len(params.Actions)).Int("messages", len(b.messages)).Msg("batch committed")

	s.dispatch(ctx, b.messages)

	return domain.UpdateAccountResult{
		AccountID:  account.ID,
		Messages:   b.messages,
		Attributes: b.attrs,
	}, nil
}

// run applies actions on the batch overlay, then checks attached funds and health.
func (s *Service) run(ctx context.Context, b *batch, actions []domain.Action) error {
	for _, a := range actions {
		if err := s.apply(ctx, b, a); err != nil {
			return err
		}
	}

	if err := b.checkFunds(); err != nil {
		return err
	}

	if len(actions) == 0 {
		return nil
	}

	pos, err := s.position(ctx, b.overlay, b.account.ID, b.pooledDebt(s.redBank))
	if err != nil {
		return err
	}

	h, err := s.health(ctx, pos)
	if err != nil {
		return err
	}

	if h.AboveMaxLTV {
		return domain.AboveMaxLTVError{AccountID: b.account.ID, HealthFactor: h.MaxLTVHealthFactor.String()}
	}

	return nil
}

func (s *Service) apply(ctx context.Context, b *batch, a domain.Action) error {
	switch a.Kind {
	case domain.ActionDeposit:
		return s.deposit(ctx, b, a.Coin)
	case domain.ActionWithdraw:
		return s.withdraw(ctx, b, a.Coin)
	case domain.ActionBorrow:
		_, err := s.borrow(ctx, b, a.Coin)
		return err
	case domain.ActionRepay:
		return s.repay(ctx, b, a.Coin)
	case domain.ActionVaultDeposit:
		return s.vaultDeposit(ctx, b, a.Vault, a.Coins)
	case domain.ActionVaultRequestUnlock:
		return s.vaultRequestUnlock(ctx, b, a.Vault, a.Amount)
	case domain.ActionVaultWithdrawUnlocked:
		return s.vaultWithdrawUnlocked(ctx, b, a.Vault, a.PositionID)
	}

	return fmt.Errorf("%w: %s", domain.ErrUnknownAction, a.Kind)
}

// outcome classifies a discarded batch for metrics.
func outcome(err error) string {
	if domain.IsRejection(err) {
		return metrics.OutcomeRejected
	}

	return metrics.OutcomeFailed
}

// dispatch sends msgs and marks them as delivered.
func (s *Service) dispatch(ctx context.Context, msgs []domain.Message) int {
	l := zerolog.Ctx(ctx)

	if len(msgs) == 0 {
		return 0
	}

	if err := s.dispatcher.Dispatch(ctx, msgs); err != nil {
		l.Warn().Err(err).Str("batch_id", msgs[0].BatchID).Msg("dispatch failed, messages kept in outbox")
		s.metrics.AddDispatchFailure()

		return 0
	}

	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}

	if err := s.ledger.MarkDispatched(ctx, ids); err != nil {
		l.Error().Err(err).Str("batch_id", msgs[0].BatchID).Msg("cannot mark messages as dispatched")
		return 0
	}

	return len(msgs)
}

// RedeliverPending dispatches messages left in the outbox by failed dispatches.
// It returns the number of delivered messages.
func (s *Service) RedeliverPending(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0

	for {
		msgs, err := s.ledger.PendingMessages(ctx, redeliverPageSize)
		if err != nil {
			return total, err
		}

		if len(msgs) == 0 {
			return total, nil
		}

		n := s.dispatch(ctx, msgs)
		total += n

		if n == 0 {
			return total, nil
		}
	}
}
