package counter

import (
	"context"
	"sync"
)

const (
	TypeEmployeeID     = "employee_id"
	TypeLeaveRequestID = "leave_request_id"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	// GetNextValue increments the named sequence and returns the new value.
	// The first value of every sequence is 1.
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	mu     sync.Mutex
	values map[string]int64
}

func NewRepository() Repository {
	return &repository{values: make(map[string]int64)}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[counterType]++
	return r.values[counterType], nil
}
