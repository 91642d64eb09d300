package memory

import (
	"context"

	"github.com/bancoverde/banking-service/internal/domain"
)

// CustomerRepository keeps customers in process memory, indexed by CPF.
// Listing preserves registration order. The menu loop is single-threaded,
// so no locking is needed here.
type CustomerRepository struct {
	byCPF map[string]*domain.Customer
	order []*domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byCPF: make(map[string]*domain.Customer),
	}
}

func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	customer, ok := r.byCPF[cpf]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	cpf := customer.CPF()
	if _, ok := r.byCPF[cpf]; !ok {
		r.order = append(r.order, customer)
	}
	r.byCPF[cpf] = customer
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, len(r.order))
	copy(out, r.order)
	return out, nil
}
