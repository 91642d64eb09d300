package domain

import "time"

// CheckingPolicy holds the withdrawal rules of a checking account:
// a cap on each single withdrawal and a cap on how many withdrawals
// may succeed per statement day.
type CheckingPolicy struct {
	WithdrawalLimit int64 // per withdrawal, in centavos
	MaxWithdrawals  int   // successful withdrawals per day
}

// Account holds a balance and its transaction history. The balance is
// never negative and changes only through Deposit and Withdraw.
type Account struct {
	Number int
	Branch string

	owner   *Customer
	balance int64
	history *History
	policy  *CheckingPolicy // nil for accounts without withdrawal rules
}

// NewAccount creates a plain account bound to its owner, starting at
// balance zero with an empty history.
func NewAccount(number int, branch string, owner *Customer) *Account {
	return &Account{
		Number:  number,
		Branch:  branch,
		owner:   owner,
		history: NewHistory(),
	}
}

// NewCheckingAccount creates an account governed by the given withdrawal
// policy.
func NewCheckingAccount(number int, branch string, owner *Customer, policy CheckingPolicy) *Account {
	account := NewAccount(number, branch, owner)
	account.policy = &policy
	return account
}

func (a *Account) Owner() *Customer {
	return a.owner
}

func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) History() *History {
	return a.history
}

// Deposit credits the amount. It does not touch the history; recording a
// successful transaction is the caller's job.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	return nil
}

// Withdraw debits the amount. Checks run in a fixed order: amount
// validity, then funds, then the policy's per-withdrawal limit, then the
// daily withdrawal count. The count considers only withdrawals already
// recorded in the history, i.e. only those that actually succeeded.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	if a.policy != nil {
		if amount > a.policy.WithdrawalLimit {
			return ErrWithdrawalLimitExceeded
		}
		if a.history.CountOnDay(KindWithdrawal, time.Now()) >= a.policy.MaxWithdrawals {
			return ErrWithdrawalCountExceeded
		}
	}
	a.balance -= amount
	return nil
}
