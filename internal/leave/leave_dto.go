package leave

type ApplyLeaveRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeaveResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       int     `json:"days"`
	Status     string  `json:"status"`
	DecidedAt  *string `json:"decided_at,omitempty"`
}

type BalanceResponse struct {
	EmployeeID   int64  `json:"employee_id"`
	Name         string `json:"name"`
	LeaveBalance int    `json:"leave_balance"`
}
