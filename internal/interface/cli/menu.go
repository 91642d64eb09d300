package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bancoverde/banking-service/internal/application/service"
	"github.com/bancoverde/banking-service/internal/domain"
	"go.uber.org/zap"
)

const birthDateLayout = "02-01-2006"

const menuText = `
================ MENU ================
[d]   deposit
[s]   withdraw
[e]   statement
[nc]  new account
[lc]  list accounts
[nu]  new customer
[lu]  list customers
[q]   quit
=> `

// Menu drives the interactive session. It owns no banking state; every
// action is dispatched to the service and the result printed.
type Menu struct {
	svc     *service.BankService
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
	greeted bool
}

func NewMenu(svc *service.BankService, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the user quits, input ends, or the context is canceled.
// Each menu action runs to completion before the next prompt.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Info("interactive session started")
	defer m.logger.Info("interactive session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !m.greeted {
			fmt.Fprintln(m.out, "\nWelcome! Pick one of the options below.")
			m.greeted = true
		}

		option, ok := m.read(menuText)
		if !ok {
			return nil
		}

		switch option {
		case "d":
			m.deposit(ctx)
		case "s":
			m.withdraw(ctx)
		case "e":
			m.statement(ctx)
		case "nc":
			m.newAccount(ctx)
		case "lc":
			m.listAccounts(ctx)
		case "nu":
			m.newCustomer(ctx)
		case "lu":
			m.listCustomers(ctx)
		case "q":
			fmt.Fprintln(m.out, "\nThank you for banking with us!")
			return nil
		default:
			fmt.Fprintln(m.out, "\nInvalid option, please pick one from the menu.")
		}
	}
}

func (m *Menu) deposit(ctx context.Context) {
	cpf, account, ok := m.selectAccount(ctx)
	if !ok {
		return
	}
	amount, ok := m.promptAmount()
	if !ok {
		return
	}

	result, err := m.svc.Deposit(ctx, cpf, account.Number, amount)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nDeposit completed. Balance: %s\n", FormatAmount(result.Balance))
}

func (m *Menu) withdraw(ctx context.Context) {
	cpf, account, ok := m.selectAccount(ctx)
	if !ok {
		return
	}
	amount, ok := m.promptAmount()
	if !ok {
		return
	}

	result, err := m.svc.Withdraw(ctx, cpf, account.Number, amount)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nWithdrawal completed. Balance: %s\n", FormatAmount(result.Balance))
}

func (m *Menu) statement(ctx context.Context) {
	cpf, account, ok := m.selectAccount(ctx)
	if !ok {
		return
	}

	result, err := m.svc.Statement(ctx, cpf, account.Number)
	if err != nil {
		m.fail(err)
		return
	}

	fmt.Fprintln(m.out, "\n================ STATEMENT ================")
	if len(result.Entries) == 0 {
		fmt.Fprintln(m.out, "No transactions on this account.")
	}
	for _, entry := range result.Entries {
		fmt.Fprintf(m.out, "%s  %-10s  %s\n",
			entry.Timestamp.Format("02-01-2006 15:04:05"),
			entry.Kind,
			FormatAmount(entry.Amount),
		)
	}
	fmt.Fprintf(m.out, "\nBalance: %s\n", FormatAmount(result.Balance))
	fmt.Fprintln(m.out, "===========================================")
}

func (m *Menu) newAccount(ctx context.Context) {
	cpf, ok := m.promptCPF()
	if !ok {
		return
	}

	account, err := m.svc.OpenAccount(ctx, cpf)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "\nAccount %d opened at branch %s.\n", account.Number, account.Branch)
}

func (m *Menu) newCustomer(ctx context.Context) {
	cpf, ok := m.promptCPF()
	if !ok {
		return
	}

	name, ok := m.read("Full name: ")
	if !ok {
		return
	}

	birthRaw, ok := m.read("Birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	birthDate, err := time.Parse(birthDateLayout, birthRaw)
	if err != nil {
		fmt.Fprintln(m.out, "\nOperation failed: birth date must be in dd-mm-yyyy format.")
		return
	}

	address, ok := m.read("Address (street, number - district - city/state): ")
	if !ok {
		return
	}

	_, err = m.svc.RegisterCustomer(ctx, service.RegisterCustomerRequest{
		Name:      name,
		BirthDate: birthDate,
		CPF:       cpf,
		Address:   address,
	})
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintln(m.out, "\nCustomer registered.")
}

func (m *Menu) listAccounts(ctx context.Context) {
	accounts, err := m.svc.ListAccounts(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "\nNo accounts registered.")
		return
	}
	for _, account := range accounts {
		fmt.Fprintln(m.out, "\n"+formatAccount(account))
	}
}

func (m *Menu) listCustomers(ctx context.Context) {
	customers, err := m.svc.ListCustomers(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "\nNo customers registered.")
		return
	}
	fmt.Fprintln(m.out, "\n========== Customers ==========")
	for _, customer := range customers {
		fmt.Fprintf(m.out, "Name: %s, CPF: %s, Address: %s\n",
			customer.DisplayName(), customer.CPF(), customer.Address)
	}
}

func formatAccount(account *domain.Account) string {
	return fmt.Sprintf("Branch:\t\t%s\nNumber:\t\t%d\nHolder:\t\t%s\nBalance:\t%s",
		account.Branch, account.Number, account.Owner().DisplayName(), FormatAmount(account.Balance()))
}

// selectAccount identifies the customer by CPF and picks one of their
// accounts: the only one automatically, or by prompt when there are
// several.
func (m *Menu) selectAccount(ctx context.Context) (string, *domain.Account, bool) {
	cpf, ok := m.promptCPF()
	if !ok {
		return "", nil, false
	}

	customer, err := m.svc.FindCustomer(ctx, cpf)
	if err != nil {
		m.fail(err)
		return "", nil, false
	}

	accounts := customer.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "\nCustomer has no account.")
		return "", nil, false
	}
	if len(accounts) == 1 {
		return cpf, accounts[0], true
	}

	fmt.Fprintln(m.out, "\nChoose an account:")
	for i, account := range accounts {
		fmt.Fprintf(m.out, "%d - branch %s, number %d\n", i, account.Branch, account.Number)
	}
	choiceRaw, ok := m.read("Account index: ")
	if !ok {
		return "", nil, false
	}
	choice, err := strconv.Atoi(choiceRaw)
	if err != nil || choice < 0 || choice >= len(accounts) {
		fmt.Fprintln(m.out, "\nInvalid account choice.")
		return "", nil, false
	}
	return cpf, accounts[choice], true
}

func (m *Menu) promptCPF() (string, bool) {
	cpf, ok := m.read("Customer CPF (digits only): ")
	if !ok {
		return "", false
	}
	if !ValidCPF(cpf) {
		fmt.Fprintln(m.out, "\nInvalid CPF: it must contain exactly 11 numeric digits.")
		return "", false
	}
	return cpf, true
}

func (m *Menu) promptAmount() (int64, bool) {
	raw, ok := m.read("Amount: ")
	if !ok {
		return 0, false
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		fmt.Fprintf(m.out, "\nOperation failed: %s.\n", err)
		return 0, false
	}
	return amount, true
}

// read prints the prompt and returns the next trimmed input line. The
// second return is false once input is exhausted.
func (m *Menu) read(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// fail prints the human-readable message for a recoverable operation
// error and hands control back to the menu.
func (m *Menu) fail(err error) {
	fmt.Fprintf(m.out, "\nOperation failed: %s.\n", reason(err))
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "the amount entered is invalid"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "you do not have sufficient funds"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "the withdrawal exceeds the per-transaction limit"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "the maximum number of withdrawals was reached"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer not found"
	case errors.Is(err, domain.ErrCustomerExists):
		return "a customer with this CPF already exists"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account not found"
	case errors.Is(err, domain.ErrAccountNotOwned):
		return "this account belongs to another customer"
	default:
		return err.Error()
	}
}
