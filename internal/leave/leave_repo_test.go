package leave_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/leave"

	"github.com/stretchr/testify/assert"
)

func day(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

func TestLeaveRepository_HasOverlappingPeriod(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository()

	assert.NoError(t, repo.Create(ctx, &leave.LeaveRequest{
		ID: 1, EmployeeID: 1, StartDate: day("2025-03-10"), EndDate: day("2025-03-12"), Days: 3, Status: leave.StatusPending,
	}))
	assert.NoError(t, repo.Create(ctx, &leave.LeaveRequest{
		ID: 2, EmployeeID: 1, StartDate: day("2025-04-01"), EndDate: day("2025-04-05"), Days: 5, Status: leave.StatusRejected,
	}))

	tests := []struct {
		name       string
		employeeID int64
		start, end string
		want       bool
	}{
		{name: "shared first day", employeeID: 1, start: "2025-03-08", end: "2025-03-10", want: true},
		{name: "shared last day", employeeID: 1, start: "2025-03-12", end: "2025-03-15", want: true},
		{name: "contained", employeeID: 1, start: "2025-03-11", end: "2025-03-11", want: true},
		{name: "covering", employeeID: 1, start: "2025-03-01", end: "2025-03-31", want: true},
		{name: "adjacent after", employeeID: 1, start: "2025-03-13", end: "2025-03-15", want: false},
		{name: "adjacent before", employeeID: 1, start: "2025-03-05", end: "2025-03-09", want: false},
		{name: "rejected ignored", employeeID: 1, start: "2025-04-02", end: "2025-04-03", want: false},
		{name: "other employee", employeeID: 2, start: "2025-03-10", end: "2025-03-12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasOverlappingPeriod(ctx, tt.employeeID, day(tt.start), day(tt.end))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeaveRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := leave.NewRepository()

	l := &leave.LeaveRequest{ID: 1, EmployeeID: 1, Status: leave.StatusPending}
	assert.NoError(t, repo.Create(ctx, l))
	assert.ErrorIs(t, repo.Create(ctx, l), leave.ErrDuplicateRecord)

	got, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	got.Status = leave.StatusApproved

	stored, _ := repo.FindByID(ctx, 1)
	assert.Equal(t, leave.StatusPending, stored.Status)

	assert.NoError(t, repo.Update(ctx, got))
	stored, _ = repo.FindByID(ctx, 1)
	assert.Equal(t, leave.StatusApproved, stored.Status)

	assert.ErrorIs(t, repo.Update(ctx, &leave.LeaveRequest{ID: 7}), leave.ErrRecordNotFound)
	_, err = repo.FindByID(ctx, 7)
	assert.ErrorIs(t, err, leave.ErrRecordNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = repo.FindAll(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
