package events

import "time"

const EmployeeRegisteredTopic = "hr.employee.registered.v1"

type EmployeeRegisteredEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  int64     `json:"employee_id"`
	Department  string    `json:"department"`
	JoiningDate string    `json:"joining_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
