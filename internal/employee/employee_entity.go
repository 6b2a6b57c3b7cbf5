package employee

import "time"

// DefaultLeaveBalance is the number of leave days every new employee gets.
const DefaultLeaveBalance = 20

type Employee struct {
	ID           int64
	Name         string
	Email        string
	Department   string
	JoiningDate  time.Time
	LeaveBalance int
	CreatedAt    time.Time
}
