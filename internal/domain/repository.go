package domain

import "context"

type CustomerRepository interface {
	FindByCPF(ctx context.Context, cpf string) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	List(ctx context.Context) ([]*Customer, error)
}

type AccountRepository interface {
	FindByNumber(ctx context.Context, number int) (*Account, error)
	Save(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]*Account, error)
	NextNumber(ctx context.Context) (int, error)
}
