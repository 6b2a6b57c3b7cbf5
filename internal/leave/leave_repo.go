package leave

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-leave/internal/shared/calendar"
)

var (
	ErrRecordNotFound  = errors.New("leave record not found")
	ErrDuplicateRecord = errors.New("leave record already exists")
)

type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id int64) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	HasOverlappingPeriod(ctx context.Context, employeeID int64, startDate, endDate time.Time) (bool, error)
}

type repository struct {
	mu    sync.RWMutex
	byID  map[int64]LeaveRequest
	order []int64
}

func NewRepository() Repository {
	return &repository{byID: make(map[int64]LeaveRequest)}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[l.ID]; exists {
		return ErrDuplicateRecord
	}
	r.byID[l.ID] = *l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	leaves := make([]LeaveRequest, 0, len(r.order))
	for _, id := range r.order {
		leaves = append(leaves, r.byID[id])
	}
	return leaves, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*LeaveRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[l.ID]; !ok {
		return ErrRecordNotFound
	}
	r.byID[l.ID] = *l
	return nil
}

// HasOverlappingPeriod reports whether any non-rejected request of the
// employee shares a day with [startDate, endDate].
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID int64, startDate, endDate time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		l := r.byID[id]
		if l.EmployeeID != employeeID || l.Status == StatusRejected {
			continue
		}
		if calendar.Overlaps(startDate, endDate, l.StartDate, l.EndDate) {
			return true, nil
		}
	}
	return false, nil
}
