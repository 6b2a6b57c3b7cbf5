package employee

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrRecordNotFound  = errors.New("employee record not found")
	ErrDuplicateRecord = errors.New("employee record already exists")
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	UpdateBalance(ctx context.Context, id int64, balance int) error
}

// repository keeps employees in process memory. Records are stored by
// value so callers never hold references into the store.
type repository struct {
	mu    sync.RWMutex
	byID  map[int64]Employee
	order []int64
}

func NewRepository() Repository {
	return &repository{byID: make(map[int64]Employee)}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; exists {
		return ErrDuplicateRecord
	}
	r.byID[e.ID] = *e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		employees = append(employees, r.byID[id])
	}
	return employees, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &e, nil
}

func (r *repository) UpdateBalance(ctx context.Context, id int64, balance int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return ErrRecordNotFound
	}
	e.LeaveBalance = balance
	r.byID[id] = e
	return nil
}
