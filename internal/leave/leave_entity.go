package leave

import (
	"time"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest covers whole days from StartDate through EndDate. Days is
// fixed when the request is filed.
type LeaveRequest struct {
	ID         int64
	EmployeeID int64

	StartDate time.Time
	EndDate   time.Time
	Days      int

	Status    string
	CreatedAt time.Time
	DecidedAt *time.Time
}
