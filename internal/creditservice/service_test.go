package creditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/internal/metrics"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	accounts   *MockAccountRepo
	registry   *MockRegistry
	ledger     *MockLedger
	redBank    *MockRedBank
	oracle     *MockOracle
	vaults     *MockVaultAdapter
	dispatcher *MockDispatcher
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		accounts:   NewMockAccountRepo(ctrl),
		registry:   NewMockRegistry(ctrl),
		ledger:     NewMockLedger(ctrl),
		redBank:    NewMockRedBank(ctrl),
		oracle:     NewMockOracle(ctrl),
		vaults:     NewMockVaultAdapter(ctrl),
		dispatcher: NewMockDispatcher(ctrl),
	}
}

func (m mocks) service() *Service {
	return New(Deps{
		Accounts:   m.accounts,
		Registry:   m.registry,
		Ledger:     m.ledger,
		RedBank:    m.redBank,
		Oracle:     m.oracle,
		Vaults:     m.vaults,
		Dispatcher: m.dispatcher,
		Metrics:    metrics.New(prometheus.NewRegistry()),
	}, WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }))
}

// stubEmptyAccount makes the ledger report an account holding nothing.
func stubEmptyAccount(m mocks) {
	m.ledger.EXPECT().CoinBalance(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(mathpkg.Zero(), nil)
	m.ledger.EXPECT().CoinBalances(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	m.ledger.EXPECT().AccountDebtShares(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	m.ledger.EXPECT().VaultPositions(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
}

func TestUpdateAccount(t *testing.T) {
	account := domain.Account{ID: "acc-1", Owner: owner}
	deposit := domain.NewCoin(100, osmo)
	osmoInfo := domain.CoinInfo{Denom: osmo, MaxLTV: ratio("0.7"), LiquidationThreshold: ratio("0.8")}

	testCases := []struct {
		name          string
		caller        string
		params        domain.UpdateAccountParams
		buildStubs    func(m mocks)
		checkResponse func(t *testing.T, res domain.UpdateAccountResult, err error)
	}{
		{
			name:   "AccountNotFound",
			caller: owner,
			params: domain.UpdateAccountParams{AccountID: "missing"},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq("missing")).
					Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
			},
		},
		{
			name:   "NotTokenOwner",
			caller: "mallory",
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Deposit(deposit)},
				Funds:     []domain.Coin{deposit},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Any()).Times(0)
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.Equal(t, domain.NotTokenOwnerError{User: "mallory", AccountID: account.ID}, err)
			},
		},
		{
			name:   "OracleUnavailable",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Deposit(deposit)},
				Funds:     []domain.Coin{deposit},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(osmoInfo, nil)
				stubEmptyAccount(m)
				m.oracle.EXPECT().Price(gomock.Any(), gomock.Eq(osmo)).
					Times(1).Return(decimal.Zero, errors.New("oracle: connection refused"))
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.EqualError(t, err, "oracle: connection refused")
			},
		},
		{
			name:   "LenderUnavailable",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Borrow(deposit)},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).Times(1).Return(osmoInfo, nil)
				m.redBank.EXPECT().UserDebt(gomock.Any(), gomock.Eq(osmo)).
					Times(1).Return(mathpkg.Zero(), errors.New("red bank: timeout"))
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.EqualError(t, err, "red bank: timeout")
			},
		},
		{
			name:   "ApplyFailed",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Deposit(deposit)},
				Funds:     []domain.Coin{deposit},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(osmoInfo, nil)
				stubEmptyAccount(m)
				m.oracle.EXPECT().Price(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(decimal.NewFromInt(1), nil)
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).Return(errorspkg.ErrInternal)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name:   "DepositCommitted",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Deposit(deposit)},
				Funds:     []domain.Coin{deposit},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(osmoInfo, nil)
				stubEmptyAccount(m)
				m.oracle.EXPECT().Price(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(decimal.NewFromInt(1), nil)

				want := ledgerrepo.Changeset{
					CoinBalances: []domain.CoinBalance{{AccountID: account.ID, Denom: osmo, Amount: deposit.Amount}},
				}
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Eq(want), gomock.Len(0)).Times(1).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.NoError(t, err)
				require.Equal(t, account.ID, res.AccountID)
				require.Empty(t, res.Messages)
			},
		},
		{
			name:   "DispatchFailedKeepsCommit",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Withdraw(deposit)},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(osmoInfo, nil)
				m.ledger.EXPECT().CoinBalance(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(osmo)).
					Times(1).Return(deposit.Amount, nil)
				m.ledger.EXPECT().CoinBalances(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).Return([]domain.Coin{deposit}, nil)
				m.ledger.EXPECT().AccountDebtShares(gomock.Any(), gomock.Any()).Times(1).Return(nil, nil)
				m.ledger.EXPECT().VaultPositions(gomock.Any(), gomock.Any()).Times(1).Return(nil, nil)
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Len(1)).Times(1).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Len(1)).
					Times(1).Return(errors.New("nats: no responders available for request"))
				m.ledger.EXPECT().MarkDispatched(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.NoError(t, err)
				require.Len(t, res.Messages, 1)

				msg := res.Messages[0]
				require.Equal(t, domain.MessageTransfer, msg.Kind)
				require.Equal(t, owner, msg.Recipient)
				require.Equal(t, account.ID, msg.AccountID)
				require.NotEmpty(t, msg.ID)
				require.NotEmpty(t, msg.BatchID)
			},
		},
		{
			name:   "DispatchedAndMarked",
			caller: owner,
			params: domain.UpdateAccountParams{
				AccountID: account.ID,
				Actions:   []domain.Action{domain.Withdraw(deposit)},
			},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).AnyTimes().Return(osmoInfo, nil)
				m.ledger.EXPECT().CoinBalance(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(osmo)).
					Times(1).Return(deposit.Amount, nil)
				m.ledger.EXPECT().CoinBalances(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).Return([]domain.Coin{deposit}, nil)
				m.ledger.EXPECT().AccountDebtShares(gomock.Any(), gomock.Any()).Times(1).Return(nil, nil)
				m.ledger.EXPECT().VaultPositions(gomock.Any(), gomock.Any()).Times(1).Return(nil, nil)
				m.ledger.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Len(1)).Times(1).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Len(1)).Times(1).Return(nil)
				m.ledger.EXPECT().MarkDispatched(gomock.Any(), gomock.Len(1)).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, res domain.UpdateAccountResult, err error) {
				require.NoError(t, err)
				require.Len(t, res.Messages, 1)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			res, err := m.service().UpdateAccount(context.Background(), tc.caller, tc.params)
			tc.checkResponse(t, res, err)
		})
	}
}

func TestRedeliverPending(t *testing.T) {
	msgs := []domain.Message{
		{ID: "m-1", BatchID: "b-1", Kind: domain.MessageBorrow, Coins: []domain.Coin{domain.NewCoin(10, osmo)}},
		{ID: "m-2", BatchID: "b-1", Kind: domain.MessageTransfer, Coins: []domain.Coin{domain.NewCoin(10, osmo)}},
	}

	testCases := []struct {
		name       string
		buildStubs func(m mocks)
		wantN      int
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(m mocks) {
				gomock.InOrder(
					m.ledger.EXPECT().PendingMessages(gomock.Any(), gomock.Eq(int32(redeliverPageSize))).Return(msgs, nil),
					m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Eq(msgs)).Return(nil),
					m.ledger.EXPECT().MarkDispatched(gomock.Any(), gomock.Eq([]string{"m-1", "m-2"})).Return(nil),
					m.ledger.EXPECT().PendingMessages(gomock.Any(), gomock.Any()).Return(nil, nil),
				)
			},
			wantN: 2,
		},
		{
			name: "DispatchFailed",
			buildStubs: func(m mocks) {
				m.ledger.EXPECT().PendingMessages(gomock.Any(), gomock.Any()).Times(1).Return(msgs, nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(1).Return(errors.New("down"))
				m.ledger.EXPECT().MarkDispatched(gomock.Any(), gomock.Any()).Times(0)
			},
			wantN: 0,
		},
		{
			name: "OutboxUnavailable",
			buildStubs: func(m mocks) {
				m.ledger.EXPECT().PendingMessages(gomock.Any(), gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			n, err := m.service().RedeliverPending(context.Background())
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.wantN, n)
		})
	}
}

func TestHealthFactorTruncation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(osmo)).
		Return(domain.CoinInfo{Denom: osmo, MaxLTV: ratio("0.7"), LiquidationThreshold: ratio("0.8")}, nil)
	m.registry.EXPECT().CoinInfo(gomock.Any(), gomock.Eq(notListed)).
		Return(domain.CoinInfo{}, domain.NotWhitelistedError{Denom: notListed})

	pos := domain.Position{
		Coins: []domain.CoinValue{
			{Denom: osmo, Value: decimal.NewFromInt(1000)},
			{Denom: notListed, Value: decimal.NewFromInt(500)},
		},
		Debt: []domain.DebtSharesValue{{Denom: osmo, Value: decimal.NewFromInt(3)}},
	}

	h, err := m.service().health(context.Background(), pos)
	require.NoError(t, err)
	require.Equal(t, "1500", h.TotalCollateralValue.String())
	require.Equal(t, "233.333333333333333333", h.MaxLTVHealthFactor.String())
	require.Equal(t, "266.666666666666666666", h.LiquidationHealthFactor.String())
	require.False(t, h.AboveMaxLTV)
}
