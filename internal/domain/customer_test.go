package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(cpf string) *Customer {
	return NewIndividualCustomer(
		"Maria Oliveira",
		time.Date(1991, time.March, 14, 0, 0, 0, 0, time.UTC),
		cpf,
		"Rua das Flores, 100 - Centro - Sao Paulo/SP",
	)
}

func TestNewIndividualCustomer(t *testing.T) {
	customer := newTestCustomer("12345678901")

	assert.Equal(t, CustomerKindIndividual, customer.Kind)
	assert.Equal(t, "12345678901", customer.CPF())
	assert.Equal(t, "Maria Oliveira", customer.DisplayName())
	assert.Empty(t, customer.Accounts())
}

func TestCustomer_AddAccountKeepsOrder(t *testing.T) {
	customer := newTestCustomer("12345678901")
	first := NewAccount(1, "0001", customer)
	second := NewAccount(2, "0001", customer)

	customer.AddAccount(first)
	customer.AddAccount(second)

	require.Len(t, customer.Accounts(), 2)
	assert.Same(t, first, customer.Accounts()[0])
	assert.Same(t, second, customer.Accounts()[1])
}

func TestCustomer_Owns(t *testing.T) {
	customer := newTestCustomer("12345678901")
	owned := NewAccount(1, "0001", customer)
	customer.AddAccount(owned)

	other := NewAccount(2, "0001", newTestCustomer("98765432100"))

	assert.True(t, customer.Owns(owned))
	assert.False(t, customer.Owns(other))
}

func TestCustomer_ExecuteAppliesToOwnedAccount(t *testing.T) {
	customer := newTestCustomer("12345678901")
	account := NewAccount(1, "0001", customer)
	customer.AddAccount(account)

	tx, err := NewDeposit(1000)
	require.NoError(t, err)

	require.NoError(t, customer.Execute(account, tx))
	assert.Equal(t, int64(1000), account.Balance())
	assert.Equal(t, 1, account.History().Len())
}

func TestCustomer_ExecuteRejectsForeignAccount(t *testing.T) {
	customer := newTestCustomer("12345678901")
	stranger := newTestCustomer("98765432100")
	account := NewAccount(1, "0001", stranger)
	stranger.AddAccount(account)

	tx, err := NewDeposit(1000)
	require.NoError(t, err)

	assert.ErrorIs(t, customer.Execute(account, tx), ErrAccountNotOwned)
	assert.Equal(t, int64(0), account.Balance())
	assert.Equal(t, 0, account.History().Len())
}
