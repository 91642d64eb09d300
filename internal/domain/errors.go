package domain

import "errors"

// Domain errors
var (
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInsufficientFunds       = errors.New("insufficient funds for withdrawal")
	ErrWithdrawalLimitExceeded = errors.New("withdrawal exceeds per-transaction limit")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals reached")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrCustomerExists          = errors.New("customer with this CPF already exists")
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountNotOwned         = errors.New("account does not belong to customer")
)
