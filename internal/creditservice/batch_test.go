package creditservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-petr/credit-manager/internal/accountrepo"
	"github.com/go-petr/credit-manager/internal/dispatch"
	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/internal/metrics"
	"github.com/go-petr/credit-manager/internal/oracle"
	"github.com/go-petr/credit-manager/internal/redbank"
	"github.com/go-petr/credit-manager/internal/registryrepo"
	"github.com/go-petr/credit-manager/internal/sharepool"
	"github.com/go-petr/credit-manager/internal/vaultadapter"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	owner     = "alice"
	osmo      = "uosmo"
	atom      = "uatom"
	vaultLP   = "osmo1vault"
	lockup    = 24 * time.Hour
	notListed = "ujake"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// switchDispatcher fails while fail is set, then delegates to next.
type switchDispatcher struct {
	fail bool
	next Dispatcher
}

func (d *switchDispatcher) Dispatch(ctx context.Context, msgs []domain.Message) error {
	if d.fail {
		return errors.New("broker unavailable")
	}

	return d.next.Dispatch(ctx, msgs)
}

type env struct {
	svc        *Service
	accounts   *accountrepo.RepoSQL
	ledger     *ledgerrepo.RepoSQL
	redBank    *redbank.Mock
	oracle     *oracle.Mock
	vaults     *vaultadapter.Mock
	dispatcher *switchDispatcher
	clock      *testClock
	reg        *prometheus.Registry
}

func ratio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func u(n uint64) mathpkg.Uint128 { return mathpkg.NewUint128(n) }

func newEnv(t *testing.T, simulatedYield uint64, maxLTV string) *env {
	t.Helper()

	ctx := context.Background()
	db := dbpkg.SetupDB(t)

	err := registryrepo.NewRepoSQL(db).ReplaceConfig(ctx,
		[]domain.CoinInfo{
			{Denom: osmo, MaxLTV: ratio(maxLTV), LiquidationThreshold: ratio("0.8")},
			{Denom: atom, MaxLTV: ratio("0.6"), LiquidationThreshold: ratio("0.7")},
		},
		[]domain.VaultInfo{
			{Address: vaultLP, MaxLTV: ratio("0.5"), LiquidationThreshold: ratio("0.6")},
		},
	)
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	e := &env{
		accounts: accountrepo.NewRepoSQL(db),
		ledger:   ledgerrepo.NewRepoSQL(db),
		redBank:  redbank.NewMock(simulatedYield),
		oracle: oracle.NewMock(map[string]decimal.Decimal{
			osmo: decimal.NewFromInt(1),
			atom: decimal.NewFromInt(10),
		}),
		vaults: vaultadapter.NewMock(lockup, clock.Now),
		clock:  clock,
		reg:    prometheus.NewRegistry(),
	}

	e.vaults.AddVault(vaultLP, osmo)
	e.dispatcher = &switchDispatcher{next: dispatch.NewLocal(e.redBank, e.vaults)}

	e.svc = New(Deps{
		Accounts:   e.accounts,
		Registry:   registryrepo.NewRepoSQL(db),
		Ledger:     e.ledger,
		RedBank:    e.redBank,
		Oracle:     e.oracle,
		Vaults:     e.vaults,
		Dispatcher: e.dispatcher,
		Metrics:    metrics.New(e.reg),
	}, WithClock(clock.Now))

	return e
}

func (e *env) newAccount(t *testing.T, owner string) string {
	t.Helper()

	a, err := e.accounts.Create(context.Background(), owner)
	require.NoError(t, err)

	return a.ID
}

func (e *env) update(accountID string, funds []domain.Coin, actions ...domain.Action) (domain.UpdateAccountResult, error) {
	return e.svc.UpdateAccount(context.Background(), owner, domain.UpdateAccountParams{
		AccountID: accountID,
		Actions:   actions,
		Funds:     funds,
	})
}

func (e *env) requireBalance(t *testing.T, accountID, denom string, want uint64) {
	t.Helper()

	got, err := e.ledger.CoinBalance(context.Background(), accountID, denom)
	require.NoError(t, err)
	require.Equal(t, u(want).String(), got.String())
}

func (e *env) requireShares(t *testing.T, accountID, denom string, want uint64) {
	t.Helper()

	got, err := e.ledger.DebtShares(context.Background(), accountID, denom)
	require.NoError(t, err)
	require.Equal(t, u(want).String(), got.String())
}

// requireConservation checks that account debt shares sum up to the pool totals.
func (e *env) requireConservation(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	all, err := e.ledger.AllDebtShares(ctx, "", "", 1000)
	require.NoError(t, err)

	sums := make(map[string]mathpkg.Uint128)
	for _, d := range all {
		sums[d.Denom], err = sums[d.Denom].CheckedAdd(d.Shares)
		require.NoError(t, err)
	}

	totals, err := e.ledger.AllTotalDebtShares(ctx, "", 1000)
	require.NoError(t, err)
	require.Len(t, totals, len(sums))

	for _, total := range totals {
		require.Equal(t, total.Shares.String(), sums[total.Denom].String(), total.Denom)
	}
}

func coins(cs ...domain.Coin) []domain.Coin { return cs }

func TestBorrowFromEmptyPool(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	res, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)
	require.Equal(t, id, res.AccountID)
	require.Len(t, res.Messages, 1)
	require.Equal(t, domain.MessageBorrow, res.Messages[0].Kind)
	require.Contains(t, res.Attributes, domain.Attribute{Key: "debt_shares_added", Value: "100000000"})

	e.requireBalance(t, id, osmo, 400)
	e.requireShares(t, id, osmo, 100*sharepool.DefaultSharesPerUnit)
	e.requireConservation(t)

	debt, err := e.redBank.UserDebt(context.Background(), osmo)
	require.NoError(t, err)
	require.Equal(t, "100", debt.String())

	pending, err := e.ledger.PendingMessages(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestBorrowProportional(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	a := e.newAccount(t, owner)
	b := e.newAccount(t, owner)

	_, err := e.update(a, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)

	require.NoError(t, e.redBank.Accrue(osmo, u(25)))

	_, err = e.update(b, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(30, osmo)),
	)
	require.NoError(t, err)

	// floor(100_000_000 * 30 / 125)
	e.requireShares(t, b, osmo, 24_000_000)
	e.requireConservation(t)
}

func TestTwoDepositorsShareAccruedDebt(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 1, "0.7")
	a := e.newAccount(t, owner)
	b := e.newAccount(t, owner)

	_, err := e.update(a, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(50, osmo)),
	)
	require.NoError(t, err)
	e.requireShares(t, a, osmo, 50*sharepool.DefaultSharesPerUnit)

	debt, err := e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.Equal(t, "51", debt.String())

	_, err = e.update(b, coins(domain.NewCoin(450, osmo)),
		domain.Deposit(domain.NewCoin(450, osmo)),
		domain.Borrow(domain.NewCoin(50, osmo)),
	)
	require.NoError(t, err)

	// floor(50 * 50_000_000 / 51)
	e.requireShares(t, b, osmo, 49_019_607)
	e.requireConservation(t)

	total, err := e.svc.TotalDebtShares(ctx, osmo)
	require.NoError(t, err)
	require.Equal(t, "99019607", total.Shares.String())

	debt, err = e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.Equal(t, "102", debt.String())

	posA, err := e.svc.Position(ctx, a)
	require.NoError(t, err)
	posB, err := e.svc.Position(ctx, b)
	require.NoError(t, err)

	require.Len(t, posA.Debt, 1)
	require.Len(t, posB.Debt, 1)
	require.Equal(t, "51", posA.Debt[0].Amount.String())
	require.Equal(t, "50", posB.Debt[0].Amount.String())

	owed := posA.Debt[0].Value.Add(posB.Debt[0].Value)
	require.True(t, owed.LessThanOrEqual(debt.Decimal()), "owed %s, pooled %s", owed, debt)
}

func TestHealthGateDiscardsBatch(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.65")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(700, osmo)),
	)

	var ltvErr domain.AboveMaxLTVError
	require.ErrorAs(t, err, &ltvErr)
	require.Equal(t, id, ltvErr.AccountID)
	require.Equal(t, "0.928571428571428571", ltvErr.HealthFactor)

	e.requireBalance(t, id, osmo, 0)
	e.requireShares(t, id, osmo, 0)

	total, err := e.svc.TotalDebtShares(ctx, osmo)
	require.NoError(t, err)
	require.True(t, total.Shares.IsZero())

	debt, err := e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.True(t, debt.IsZero())

	pending, err := e.ledger.PendingMessages(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestBorrowRejectedByLenderYield(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 1, "0.7")
	id := e.newAccount(t, owner)

	// 1000 of collateral at 0.7 covers 700 of debt, but the lender records 701.
	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(700, osmo)),
	)

	var ltvErr domain.AboveMaxLTVError
	require.ErrorAs(t, err, &ltvErr)
	require.Equal(t, id, ltvErr.AccountID)
	require.Equal(t, "0.998573466476462196", ltvErr.HealthFactor)

	e.requireBalance(t, id, osmo, 0)
	e.requireShares(t, id, osmo, 0)

	debt, err := e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.True(t, debt.IsZero())
}

func TestHealthAfterYield(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 1, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(600, osmo)),
	)
	require.NoError(t, err)

	h, err := e.svc.Health(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "900", h.TotalCollateralValue.String())
	require.Equal(t, "601", h.TotalDebtValue.String())
	require.NotNil(t, h.MaxLTVHealthFactor)
	require.Equal(t, "1.048252911813643926", h.MaxLTVHealthFactor.String())
	require.False(t, h.AboveMaxLTV)

	// Interest accrued after the commit can still push the account above max LTV.
	require.NoError(t, e.redBank.Accrue(osmo, u(30)))

	h, err = e.svc.Health(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "631", h.TotalDebtValue.String())
	require.Equal(t, "0.998415213946117274", h.MaxLTVHealthFactor.String())
	require.True(t, h.AboveMaxLTV)
	require.False(t, h.Liquidatable)
}

func TestHealthWithoutDebt(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(5, atom)), domain.Deposit(domain.NewCoin(5, atom)))
	require.NoError(t, err)

	h, err := e.svc.Health(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "50", h.TotalCollateralValue.String())
	require.Equal(t, "30", h.MaxLTVAdjustedCollateral.String())
	require.Nil(t, h.MaxLTVHealthFactor)
	require.Nil(t, h.LiquidationHealthFactor)
	require.False(t, h.AboveMaxLTV)
}

func TestRejectedActionsMutateNothing(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)), domain.Deposit(domain.NewCoin(300, osmo)))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		funds   []domain.Coin
		actions []domain.Action
		check   func(t *testing.T, err error)
	}{
		{
			name:    "BorrowZero",
			actions: []domain.Action{domain.Borrow(domain.NewCoin(0, osmo))},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrNoAmount)
			},
		},
		{
			name:    "WithdrawZero",
			actions: []domain.Action{domain.Withdraw(domain.NewCoin(0, osmo))},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrNoAmount)
			},
		},
		{
			name: "BorrowNotWhitelisted",
			actions: []domain.Action{
				domain.Borrow(domain.NewCoin(10, osmo)),
				domain.Borrow(domain.NewCoin(10, notListed)),
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrNotWhitelisted)
				require.ErrorContains(t, err, notListed)
			},
		},
		{
			name:    "DepositNotWhitelisted",
			funds:   coins(domain.NewCoin(10, notListed)),
			actions: []domain.Action{domain.Deposit(domain.NewCoin(10, notListed))},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrNotWhitelisted)
			},
		},
		{
			name:    "WithdrawTooMuch",
			actions: []domain.Action{domain.Withdraw(domain.NewCoin(400, osmo))},
			check: func(t *testing.T, err error) {
				var overflow mathpkg.OverflowError
				require.ErrorAs(t, err, &overflow)
				require.EqualError(t, err, "Cannot Sub with 300 and 400")
			},
		},
		{
			name:    "RepayWithoutDebt",
			actions: []domain.Action{domain.Repay(domain.NewCoin(10, osmo))},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrNoDebt)
			},
		},
		{
			name:    "FundsNotDeposited",
			funds:   coins(domain.NewCoin(100, osmo)),
			actions: []domain.Action{domain.Deposit(domain.NewCoin(50, osmo))},
			check: func(t *testing.T, err error) {
				require.Equal(t, domain.FundsMismatchError{Denom: osmo, Sent: "100", Requested: "50"}, err)
			},
		},
		{
			name:    "DepositWithoutFunds",
			funds:   coins(domain.NewCoin(50, osmo)),
			actions: []domain.Action{domain.Deposit(domain.NewCoin(100, osmo))},
			check: func(t *testing.T, err error) {
				require.Equal(t, domain.FundsMismatchError{Denom: osmo, Sent: "50", Requested: "100"}, err)
			},
		},
		{
			name:    "UnknownAction",
			actions: []domain.Action{{Kind: "liquidate"}},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrUnknownAction)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			_, err := e.update(id, tc.funds, tc.actions...)
			tc.check(t, err)

			e.requireBalance(t, id, osmo, 300)
			e.requireBalance(t, id, notListed, 0)
			e.requireShares(t, id, osmo, 0)
		})
	}
}

func TestNotTokenOwner(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.svc.UpdateAccount(context.Background(), "mallory", domain.UpdateAccountParams{
		AccountID: id,
		Actions:   []domain.Action{domain.Deposit(domain.NewCoin(0, osmo))},
	})
	require.Equal(t, domain.NotTokenOwnerError{User: "mallory", AccountID: id}, err)

	_, err = e.update("missing", nil)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestEmptyBatchIsNoop(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)

	res, err := e.update(id, nil)
	require.NoError(t, err)
	require.Empty(t, res.Messages)

	e.requireBalance(t, id, osmo, 400)
	e.requireShares(t, id, osmo, 100*sharepool.DefaultSharesPerUnit)
	e.requireConservation(t)
}

func TestRepay(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 1, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)

	// Pooled debt is 101 for 100_000_000 shares.
	res, err := e.update(id, nil, domain.Repay(domain.NewCoin(40, osmo)))
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	require.Equal(t, domain.MessageRepay, res.Messages[0].Kind)

	// floor(100_000_000 * 40 / 101)
	e.requireShares(t, id, osmo, 100_000_000-39_603_960)
	e.requireBalance(t, id, osmo, 360)
	e.requireConservation(t)

	res, err = e.update(id, nil, domain.Repay(domain.NewCoin(1000, osmo)))
	require.NoError(t, err)
	require.Equal(t, "61", res.Messages[0].Coins[0].Amount.String())

	e.requireShares(t, id, osmo, 0)
	e.requireBalance(t, id, osmo, 299)
	e.requireConservation(t)

	total, err := e.svc.TotalDebtShares(ctx, osmo)
	require.NoError(t, err)
	require.True(t, total.Shares.IsZero())

	debt, err := e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.True(t, debt.IsZero())

	_, err = e.update(id, nil, domain.Repay(domain.NewCoin(1, osmo)))
	require.ErrorIs(t, err, domain.ErrNoDebt)
}

func TestBorrowAndRepayInOneBatch(t *testing.T) {
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
		domain.Repay(domain.NewCoin(100, osmo)),
		domain.Withdraw(domain.NewCoin(300, osmo)),
	)
	require.NoError(t, err)

	e.requireBalance(t, id, osmo, 0)
	e.requireShares(t, id, osmo, 0)
	e.requireConservation(t)
}

func TestVaultUnlockFlow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(100, osmo)),
		domain.Deposit(domain.NewCoin(100, osmo)),
		domain.VaultDeposit(vaultLP, domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)
	e.requireBalance(t, id, osmo, 0)

	supply, err := e.vaults.Supply(vaultLP)
	require.NoError(t, err)
	require.Equal(t, "100", supply.String())

	res, err := e.update(id, nil, domain.VaultRequestUnlock(vaultLP, u(40)))
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)

	positionID := res.Messages[0].PositionID

	p, err := e.ledger.VaultPosition(ctx, id, vaultLP)
	require.NoError(t, err)
	require.Equal(t, "60", p.Locked.String())
	require.Equal(t, []domain.UnlockingPosition{{ID: positionID, Amount: u(40)}}, p.Unlocking)

	_, err = e.update(id, nil, domain.VaultWithdrawUnlocked(vaultLP, positionID))
	require.ErrorIs(t, err, domain.ErrUnlockNotReady)

	_, err = e.update(id, nil, domain.VaultRequestUnlock(vaultLP, u(61)))
	var overflow mathpkg.OverflowError
	require.ErrorAs(t, err, &overflow)

	e.clock.Advance(lockup + time.Hour)

	_, err = e.update(id, nil, domain.VaultWithdrawUnlocked(vaultLP, positionID+1))
	require.ErrorIs(t, err, domain.ErrVaultPositionNotFound)

	_, err = e.update(id, nil, domain.VaultWithdrawUnlocked(vaultLP, positionID))
	require.NoError(t, err)

	e.requireBalance(t, id, osmo, 40)

	p, err = e.ledger.VaultPosition(ctx, id, vaultLP)
	require.NoError(t, err)
	require.Equal(t, "60", p.Locked.String())
	require.Empty(t, p.Unlocking)

	supply, err = e.vaults.Supply(vaultLP)
	require.NoError(t, err)
	require.Equal(t, "60", supply.String())

	pos, err := e.svc.Position(ctx, id)
	require.NoError(t, err)
	require.Len(t, pos.Vaults, 1)
	require.Equal(t, "60", pos.Vaults[0].Value.String())

	h, err := e.svc.Health(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "100", h.TotalCollateralValue.String())
	require.Equal(t, "58", h.MaxLTVAdjustedCollateral.String())
}

func TestDiscardedUnlockRequest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	_, err := e.update(id, coins(domain.NewCoin(100, osmo)),
		domain.Deposit(domain.NewCoin(100, osmo)),
		domain.VaultDeposit(vaultLP, domain.NewCoin(100, osmo)),
	)
	require.NoError(t, err)

	// The unlock reserves an id before the withdraw fails and discards the batch.
	_, err = e.update(id, nil,
		domain.VaultRequestUnlock(vaultLP, u(40)),
		domain.Withdraw(domain.NewCoin(1, osmo)),
	)
	require.Error(t, err)

	p, err := e.ledger.VaultPosition(ctx, id, vaultLP)
	require.NoError(t, err)
	require.Equal(t, "100", p.Locked.String())
	require.Empty(t, p.Unlocking)

	res, err := e.update(id, nil, domain.VaultRequestUnlock(vaultLP, u(40)))
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)

	positionID := res.Messages[0].PositionID

	_, err = e.vaults.UnlockStatus(ctx, vaultLP, positionID-1)
	require.ErrorIs(t, err, domain.ErrVaultPositionNotFound)

	e.clock.Advance(lockup)

	_, err = e.update(id, nil, domain.VaultWithdrawUnlocked(vaultLP, positionID))
	require.NoError(t, err)
	e.requireBalance(t, id, osmo, 40)

	supply, err := e.vaults.Supply(vaultLP)
	require.NoError(t, err)
	require.Equal(t, "60", supply.String())
}

func TestDispatchFailureKeepsBatch(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.7")
	id := e.newAccount(t, owner)

	e.dispatcher.fail = true

	_, err := e.update(id, coins(domain.NewCoin(300, osmo)),
		domain.Deposit(domain.NewCoin(300, osmo)),
		domain.Borrow(domain.NewCoin(100, osmo)),
		domain.Withdraw(domain.NewCoin(50, osmo)),
	)
	require.NoError(t, err)
	e.requireBalance(t, id, osmo, 350)

	pending, err := e.ledger.PendingMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, domain.MessageBorrow, pending[0].Kind)
	require.Equal(t, domain.MessageTransfer, pending[1].Kind)
	require.Equal(t, owner, pending[1].Recipient)

	n, err := e.svc.RedeliverPending(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	e.dispatcher.fail = false

	n, err = e.svc.RedeliverPending(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	debt, err := e.redBank.UserDebt(ctx, osmo)
	require.NoError(t, err)
	require.Equal(t, "100", debt.String())

	pending, err = e.ledger.PendingMessages(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)

	failures, err := testutil.GatherAndCount(e.reg, "credit_dispatch_failures_total")
	require.NoError(t, err)
	require.Equal(t, 1, failures)
}

func TestDumps(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, 0, "0.7")
	a := e.newAccount(t, owner)
	b := e.newAccount(t, owner)

	for _, id := range []string{a, b} {
		_, err := e.update(id, coins(domain.NewCoin(100, osmo), domain.NewCoin(10, atom)),
			domain.Deposit(domain.NewCoin(100, osmo)),
			domain.Deposit(domain.NewCoin(10, atom)),
			domain.Borrow(domain.NewCoin(10, osmo)),
		)
		require.NoError(t, err)
	}

	balances, err := e.svc.AllCoinBalances(ctx, "", "", 0)
	require.NoError(t, err)
	require.Len(t, balances, 4)

	first := balances[0]

	rest, err := e.svc.AllCoinBalances(ctx, first.AccountID, first.Denom, 0)
	require.NoError(t, err)
	require.Equal(t, balances[1:], rest)

	shares, err := e.svc.AllDebtShares(ctx, "", "", 1)
	require.NoError(t, err)
	require.Len(t, shares, 1)

	totals, err := e.svc.AllTotalDebtShares(ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, []domain.DebtShares{{Denom: osmo, Shares: u(20 * sharepool.DefaultSharesPerUnit)}}, totals)

	_, err = e.svc.Position(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	batches, err := testutil.GatherAndCount(e.reg, "credit_batches_total")
	require.NoError(t, err)
	require.Equal(t, 1, batches)
}
