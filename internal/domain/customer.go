package domain

import "time"

type CustomerKind string

const (
	CustomerKindIndividual CustomerKind = "INDIVIDUAL"
)

// Individual carries the identity fields of a natural-person customer.
type Individual struct {
	Name      string
	BirthDate time.Time
	CPF       string // 11 numeric digits, validated at the input boundary
}

// Customer owns zero or more accounts and is the unit of transaction
// authorization. Kind selects which identity payload is set; only
// individual customers exist today.
type Customer struct {
	Kind       CustomerKind
	Address    string
	Individual *Individual

	accounts []*Account
}

func NewIndividualCustomer(name string, birthDate time.Time, cpf, address string) *Customer {
	return &Customer{
		Kind:    CustomerKindIndividual,
		Address: address,
		Individual: &Individual{
			Name:      name,
			BirthDate: birthDate,
			CPF:       cpf,
		},
	}
}

// CPF returns the customer's national ID, or "" for kinds without one.
func (c *Customer) CPF() string {
	if c.Individual == nil {
		return ""
	}
	return c.Individual.CPF
}

func (c *Customer) DisplayName() string {
	if c.Individual == nil {
		return ""
	}
	return c.Individual.Name
}

// AddAccount appends to the owned account list. Number uniqueness is the
// caller's guarantee.
func (c *Customer) AddAccount(account *Account) {
	c.accounts = append(c.accounts, account)
}

func (c *Customer) Accounts() []*Account {
	return c.accounts
}

func (c *Customer) Owns(account *Account) bool {
	for _, owned := range c.accounts {
		if owned == account {
			return true
		}
	}
	return false
}

// Execute is the sole entry point for moving money. It refuses accounts
// the customer does not own.
func (c *Customer) Execute(account *Account, tx Transaction) error {
	if !c.Owns(account) {
		return ErrAccountNotOwned
	}
	return tx.Apply(account)
}
