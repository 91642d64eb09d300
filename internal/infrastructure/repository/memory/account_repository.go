package memory

import (
	"context"

	"github.com/bancoverde/banking-service/internal/domain"
)

// AccountRepository keeps accounts in process memory, indexed by number.
// NextNumber hands out sequential numbers starting at 1.
type AccountRepository struct {
	byNumber map[int]*domain.Account
	order    []*domain.Account
	next     int
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byNumber: make(map[int]*domain.Account),
		next:     1,
	}
}

func (r *AccountRepository) FindByNumber(ctx context.Context, number int) (*domain.Account, error) {
	account, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if _, ok := r.byNumber[account.Number]; !ok {
		r.order = append(r.order, account)
	}
	r.byNumber[account.Number] = account
	return nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, len(r.order))
	copy(out, r.order)
	return out, nil
}

func (r *AccountRepository) NextNumber(ctx context.Context) (int, error) {
	number := r.next
	r.next++
	return number, nil
}
