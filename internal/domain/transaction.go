package domain

// Transaction is an immutable instruction to move money on an account.
// Apply mutates the account through its own methods and records a history
// entry only when the mutation succeeded.
type Transaction interface {
	Kind() TransactionKind
	Amount() int64
	Apply(account *Account) error
}

type Deposit struct {
	amount int64
}

// NewDeposit rejects non-positive amounts. The account re-validates on
// Apply; both gates hold independently.
func NewDeposit(amount int64) (*Deposit, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Deposit{amount: amount}, nil
}

func (d *Deposit) Kind() TransactionKind { return KindDeposit }

func (d *Deposit) Amount() int64 { return d.amount }

func (d *Deposit) Apply(account *Account) error {
	if err := account.Deposit(d.amount); err != nil {
		return err
	}
	account.History().Record(KindDeposit, d.amount)
	return nil
}

type Withdrawal struct {
	amount int64
}

func NewWithdrawal(amount int64) (*Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Withdrawal{amount: amount}, nil
}

func (w *Withdrawal) Kind() TransactionKind { return KindWithdrawal }

func (w *Withdrawal) Amount() int64 { return w.amount }

func (w *Withdrawal) Apply(account *Account) error {
	if err := account.Withdraw(w.amount); err != nil {
		return err
	}
	account.History().Record(KindWithdrawal, w.amount)
	return nil
}
