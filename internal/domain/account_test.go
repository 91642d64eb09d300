package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(balance int64) *Account {
	account := NewAccount(1, "0001", nil)
	if balance > 0 {
		_ = account.Deposit(balance)
	}
	return account
}

func newTestCheckingAccount(balance int64, policy CheckingPolicy) *Account {
	account := NewCheckingAccount(1, "0001", nil, policy)
	if balance > 0 {
		_ = account.Deposit(balance)
	}
	return account
}

func TestDeposit_RejectsNonPositiveAmounts(t *testing.T) {
	account := newTestAccount(500)

	for _, amount := range []int64{0, -1, -500} {
		err := account.Deposit(amount)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, int64(500), account.Balance())
	}
}

func TestDeposit_CreditsBalance(t *testing.T) {
	account := newTestAccount(0)

	err := account.Deposit(12345)

	require.NoError(t, err)
	assert.Equal(t, int64(12345), account.Balance())
	// Recording is the caller's job, not Deposit's.
	assert.Equal(t, 0, account.History().Len())
}

func TestWithdraw_RejectsNonPositiveAmounts(t *testing.T) {
	account := newTestAccount(500)

	for _, amount := range []int64{0, -1} {
		err := account.Withdraw(amount)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, int64(500), account.Balance())
	}
}

func TestWithdraw_DebitsUpToBalance(t *testing.T) {
	account := newTestAccount(500)

	require.NoError(t, account.Withdraw(200))
	assert.Equal(t, int64(300), account.Balance())

	require.NoError(t, account.Withdraw(300))
	assert.Equal(t, int64(0), account.Balance())
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	account := newTestAccount(500)

	err := account.Withdraw(501)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(500), account.Balance())
}

func TestWithdraw_AmountCheckedBeforeFunds(t *testing.T) {
	account := newTestAccount(0)

	// Invalid amount wins over the empty balance.
	assert.ErrorIs(t, account.Withdraw(-10), ErrInvalidAmount)
}

func TestWithdraw_FundsCheckedBeforePolicyLimit(t *testing.T) {
	account := newTestCheckingAccount(100, CheckingPolicy{WithdrawalLimit: 500, MaxWithdrawals: 3})

	// 600 violates both the balance and the limit; funds are reported.
	assert.ErrorIs(t, account.Withdraw(600), ErrInsufficientFunds)
}

func TestWithdraw_ExceedsPolicyLimit(t *testing.T) {
	account := newTestCheckingAccount(100000, CheckingPolicy{WithdrawalLimit: 500, MaxWithdrawals: 3})

	err := account.Withdraw(501)

	assert.ErrorIs(t, err, ErrWithdrawalLimitExceeded)
	assert.Equal(t, int64(100000), account.Balance())
}

func TestWithdraw_CountsOnlyRecordedWithdrawals(t *testing.T) {
	account := newTestCheckingAccount(100000, CheckingPolicy{WithdrawalLimit: 500, MaxWithdrawals: 2})

	// Raw Withdraw calls do not append to the history, so the count
	// rule never triggers for them.
	require.NoError(t, account.Withdraw(100))
	require.NoError(t, account.Withdraw(100))
	require.NoError(t, account.Withdraw(100))
}

func TestWithdraw_MaxCountReached(t *testing.T) {
	account := newTestCheckingAccount(100000, CheckingPolicy{WithdrawalLimit: 500, MaxWithdrawals: 3})

	for i := 0; i < 3; i++ {
		tx, err := NewWithdrawal(100)
		require.NoError(t, err)
		require.NoError(t, tx.Apply(account))
	}

	err := account.Withdraw(100)

	assert.ErrorIs(t, err, ErrWithdrawalCountExceeded)
	assert.Equal(t, int64(100000-300), account.Balance())
}

func TestAccount_StatementScenario(t *testing.T) {
	account := newTestCheckingAccount(0, CheckingPolicy{WithdrawalLimit: 50000, MaxWithdrawals: 3})

	deposit, err := NewDeposit(1000)
	require.NoError(t, err)
	require.NoError(t, deposit.Apply(account))
	assert.Equal(t, int64(1000), account.Balance())
	assert.Equal(t, 1, account.History().Len())

	withdraw := func(amount int64) error {
		tx, err := NewWithdrawal(amount)
		require.NoError(t, err)
		return tx.Apply(account)
	}

	require.NoError(t, withdraw(200))
	assert.Equal(t, int64(800), account.Balance())
	assert.Equal(t, 2, account.History().Len())

	// Over the balance: nothing changes.
	assert.ErrorIs(t, withdraw(900), ErrInsufficientFunds)
	assert.Equal(t, int64(800), account.Balance())
	assert.Equal(t, 2, account.History().Len())

	require.NoError(t, withdraw(200))
	require.NoError(t, withdraw(200))
	assert.Equal(t, int64(400), account.Balance())
	assert.Equal(t, 4, account.History().Len())

	// Third successful withdrawal hit the daily maximum.
	assert.ErrorIs(t, withdraw(100), ErrWithdrawalCountExceeded)
	assert.Equal(t, int64(400), account.Balance())
	assert.Equal(t, 4, account.History().Len())
}
