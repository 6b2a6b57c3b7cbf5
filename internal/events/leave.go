package events

import "time"

const (
	LeaveRequestedTopic = "hr.leave.requested.v1"
	LeaveDecidedTopic   = "hr.leave.decided.v1"
)

type LeaveRequestedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID int64     `json:"leave_request_id"`
	EmployeeID     int64     `json:"employee_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Days           int       `json:"days"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID int64     `json:"leave_request_id"`
	EmployeeID     int64     `json:"employee_id"`
	Status         string    `json:"status"`
	Days           int       `json:"days"`
	BalanceAfter   int       `json:"balance_after"`
	OccurredAt     time.Time `json:"occurred_at"`
}
