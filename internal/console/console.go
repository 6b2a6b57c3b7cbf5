// Package console is the interactive menu boundary over the directory and
// the ledger. Every action prints one result line and the loop continues
// whatever the outcome.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/calendar"

	"go.uber.org/zap"
)

const menu = `
--- Leave Management System ---
1. Add Employee
2. Apply for Leave
3. Approve/Reject Leave
4. Fetch Leave Balance
5. Display All Employees
6. Display All Leave Requests
7. Exit`

type Console struct {
	directory employee.Service
	ledger    leave.Service
	in        *bufio.Scanner
	out       io.Writer
	logger    *zap.Logger
}

func New(directory employee.Service, ledger leave.Service, in io.Reader, out io.Writer, logger ...*zap.Logger) *Console {
	l := zap.L().Named("console")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console")
	}
	return &Console{
		directory: directory,
		ledger:    ledger,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    l,
	}
}

// Run loops until the user picks Exit, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(menu)
		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return c.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = c.addEmployee(ctx)
		case "2":
			ok = c.applyForLeave(ctx)
		case "3":
			ok = c.decideLeave(ctx)
		case "4":
			ok = c.fetchBalance(ctx)
		case "5":
			c.listEmployees(ctx)
		case "6":
			c.listRequests(ctx)
		case "7":
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if !ok {
			return c.in.Err()
		}
	}
}

func (c *Console) addEmployee(ctx context.Context) bool {
	name, ok := c.prompt("Enter Name: ")
	if !ok {
		return false
	}
	email, ok := c.prompt("Enter Email: ")
	if !ok {
		return false
	}
	department, ok := c.prompt("Enter Department: ")
	if !ok {
		return false
	}
	joiningDate, ok := c.prompt("Enter Joining Date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	resp, err := c.directory.Create(ctx, employee.CreateEmployeeRequest{
		Name:        name,
		Email:       email,
		Department:  department,
		JoiningDate: joiningDate,
	})
	if err != nil {
		c.printError(err, "")
		return true
	}
	c.printf("Employee %s added successfully with ID: %d\n", resp.Name, resp.ID)
	return true
}

func (c *Console) applyForLeave(ctx context.Context) bool {
	employeeID, ok, valid := c.promptID("Enter Employee ID: ", "Employee ID")
	if !ok || !valid {
		return ok
	}
	startDate, ok := c.prompt("Enter Leave Start Date (YYYY-MM-DD): ")
	if !ok {
		return false
	}
	endDate, ok := c.prompt("Enter Leave End Date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	resp, err := c.ledger.Apply(ctx, leave.ApplyLeaveRequest{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		c.printError(err, "Error: Insufficient leave balance.")
		return true
	}
	c.printf("Leave request submitted successfully with ID: %d\n", resp.ID)
	return true
}

func (c *Console) decideLeave(ctx context.Context) bool {
	requestID, ok, valid := c.promptID("Enter Leave Request ID: ", "Leave Request ID")
	if !ok || !valid {
		return ok
	}
	status, ok := c.prompt("Enter Status (Approved/Rejected): ")
	if !ok {
		return false
	}

	resp, err := c.ledger.Decide(ctx, requestID, status)
	if err != nil {
		c.printError(err, "Error: Cannot approve, insufficient leave balance.")
		return true
	}
	c.printf("Leave request %d has been %s.\n", resp.ID, strings.ToLower(resp.Status))
	return true
}

func (c *Console) fetchBalance(ctx context.Context) bool {
	employeeID, ok, valid := c.promptID("Enter Employee ID: ", "Employee ID")
	if !ok || !valid {
		return ok
	}

	resp, err := c.ledger.GetBalance(ctx, employeeID)
	if err != nil {
		c.printError(err, "")
		return true
	}
	c.printf("Leave balance for Employee ID %d: %d days\n", resp.EmployeeID, resp.LeaveBalance)
	return true
}

func (c *Console) listEmployees(ctx context.Context) {
	employees, err := c.directory.GetAll(ctx)
	if err != nil {
		c.printError(err, "")
		return
	}
	c.println("\n--- All Employees ---")
	for _, e := range employees {
		c.printf("ID: %d, Name: %s, Department: %s, Joining Date: %s, Balance: %d\n",
			e.ID, e.Name, e.Department, e.JoiningDate, e.LeaveBalance)
	}
}

func (c *Console) listRequests(ctx context.Context) {
	requests, err := c.ledger.GetAll(ctx)
	if err != nil {
		c.printError(err, "")
		return
	}
	c.println("\n--- All Leave Requests ---")
	for _, r := range requests {
		c.printf("ID: %d, Employee ID: %d, Start: %s, End: %s, Days: %d, Status: %s\n",
			r.ID, r.EmployeeID, r.StartDate, r.EndDate, r.Days, r.Status)
	}
}

// prompt returns false once input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

// promptID reads a numeric id. valid is false when the text is not a
// number; the error line has already been printed then.
func (c *Console) promptID(label, field string) (id int64, ok, valid bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		c.printf("Error: %s must be a number.\n", field)
		return 0, true, false
	}
	return id, true, true
}

// printError writes the user-facing line for err. insufficientBalance
// overrides the line for an insufficient balance, which reads differently
// on submission and on approval.
func (c *Console) printError(err error, insufficientBalance string) {
	switch {
	case errors.Is(err, calendar.ErrInvalidDateFormat):
		c.println("Invalid date format. Please use YYYY-MM-DD.")
	case errors.Is(err, employeeerrors.ErrEmployeeNotFound):
		c.println("Error: Employee not found.")
	case errors.Is(err, leaveerrors.ErrLeaveNotFound):
		c.println("Error: Leave request not found.")
	case errors.Is(err, leaveerrors.ErrLeaveBeforeJoining):
		c.println("Error: Cannot apply for leave before the joining date.")
	case errors.Is(err, leaveerrors.ErrInvalidDateRange):
		c.println("Error: End date cannot be before the start date.")
	case errors.Is(err, leaveerrors.ErrInsufficientBalance) && insufficientBalance != "":
		c.println(insufficientBalance)
	case errors.Is(err, leaveerrors.ErrLeaveOverlap):
		c.println("Error: Overlapping leave request found.")
	case errors.Is(err, leaveerrors.ErrInvalidStatus):
		c.println("Error: Invalid status. Please use 'Approved' or 'Rejected'.")
	case errors.Is(err, leaveerrors.ErrAlreadyDecided):
		c.println("Error: Leave request has already been decided.")
	default:
		c.logger.Warn("console action failed", zap.Error(err))
		c.printf("Error: %s\n", apperror.ToHTTP(err).Message)
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
