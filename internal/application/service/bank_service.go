package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bancoverde/banking-service/internal/domain"
	"go.uber.org/zap"
)

// BankService implements the menu-facing use cases: customer registration,
// account opening, deposits, withdrawals and statements. Every operation
// is logged with its timestamp and outcome.
type BankService struct {
	customers domain.CustomerRepository
	accounts  domain.AccountRepository
	branch    string
	policy    domain.CheckingPolicy
	logger    *zap.Logger
}

func NewBankService(
	customers domain.CustomerRepository,
	accounts domain.AccountRepository,
	branch string,
	policy domain.CheckingPolicy,
	logger *zap.Logger,
) *BankService {
	return &BankService{
		customers: customers,
		accounts:  accounts,
		branch:    branch,
		policy:    policy,
		logger:    logger,
	}
}

type RegisterCustomerRequest struct {
	Name      string
	BirthDate time.Time
	CPF       string
	Address   string
}

// RegisterCustomer creates an individual customer. The CPF must not be
// registered yet; format validation happens at the input boundary.
func (s *BankService) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.Customer, error) {
	if _, err := s.customers.FindByCPF(ctx, req.CPF); err == nil {
		s.logger.Info("registration rejected, CPF already in use",
			zap.String("cpf", req.CPF),
		)
		return nil, domain.ErrCustomerExists
	}

	customer := domain.NewIndividualCustomer(req.Name, req.BirthDate, req.CPF, req.Address)
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("customer registered",
		zap.String("cpf", req.CPF),
		zap.String("name", req.Name),
	)

	return customer, nil
}

// OpenAccount opens a checking account for the customer with the given
// CPF, using the configured branch code and withdrawal policy. Account
// numbers are sequential and assigned by the account repository.
func (s *BankService) OpenAccount(ctx context.Context, cpf string) (*domain.Account, error) {
	customer, err := s.customers.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	number, err := s.accounts.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign account number: %w", err)
	}

	account := domain.NewCheckingAccount(number, s.branch, customer, s.policy)
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	customer.AddAccount(account)

	s.logger.Info("account opened",
		zap.String("cpf", cpf),
		zap.Int("account_number", number),
		zap.String("branch", s.branch),
	)

	return account, nil
}

type TransactionResult struct {
	AccountNumber int
	Kind          domain.TransactionKind
	Amount        int64
	Balance       int64
}

// Deposit credits the account identified by number on behalf of the
// customer identified by CPF.
func (s *BankService) Deposit(ctx context.Context, cpf string, accountNumber int, amount int64) (*TransactionResult, error) {
	tx, err := domain.NewDeposit(amount)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, cpf, accountNumber, tx)
}

// Withdraw debits the account identified by number on behalf of the
// customer identified by CPF, subject to the account's withdrawal rules.
func (s *BankService) Withdraw(ctx context.Context, cpf string, accountNumber int, amount int64) (*TransactionResult, error) {
	tx, err := domain.NewWithdrawal(amount)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, cpf, accountNumber, tx)
}

func (s *BankService) execute(ctx context.Context, cpf string, accountNumber int, tx domain.Transaction) (*TransactionResult, error) {
	customer, err := s.customers.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := customer.Execute(account, tx); err != nil {
		s.logger.Info("transaction rejected",
			zap.String("operation", string(tx.Kind())),
			zap.String("cpf", cpf),
			zap.Int("account_number", accountNumber),
			zap.Int64("amount", tx.Amount()),
			zap.String("reason", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("transaction executed",
		zap.String("operation", string(tx.Kind())),
		zap.String("cpf", cpf),
		zap.Int("account_number", accountNumber),
		zap.Int64("amount", tx.Amount()),
		zap.Int64("balance", account.Balance()),
	)

	return &TransactionResult{
		AccountNumber: account.Number,
		Kind:          tx.Kind(),
		Amount:        tx.Amount(),
		Balance:       account.Balance(),
	}, nil
}

type StatementResult struct {
	Branch        string
	AccountNumber int
	HolderName    string
	Balance       int64
	Entries       []domain.Entry
}

// Statement returns the account's full history plus its current balance.
// The account must belong to the customer making the request.
func (s *BankService) Statement(ctx context.Context, cpf string, accountNumber int) (*StatementResult, error) {
	customer, err := s.customers.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if !customer.Owns(account) {
		return nil, domain.ErrAccountNotOwned
	}

	s.logger.Info("statement generated",
		zap.String("cpf", cpf),
		zap.Int("account_number", accountNumber),
		zap.Int("entries", account.History().Len()),
	)

	return &StatementResult{
		Branch:        account.Branch,
		AccountNumber: account.Number,
		HolderName:    customer.DisplayName(),
		Balance:       account.Balance(),
		Entries:       slices.Collect(account.History().Entries("")),
	}, nil
}

// FindCustomer resolves a customer by CPF, for account selection at the
// menu layer.
func (s *BankService) FindCustomer(ctx context.Context, cpf string) (*domain.Customer, error) {
	return s.customers.FindByCPF(ctx, cpf)
}

func (s *BankService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *BankService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}
