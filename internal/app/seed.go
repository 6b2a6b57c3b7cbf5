package app

import (
	"context"

	"go-leave/internal/employee"

	"go.uber.org/zap"
)

var sampleEmployees = []employee.CreateEmployeeRequest{
	{Name: "Prudhvi", Email: "prudhvi@gmail.com", Department: "Engineering", JoiningDate: "2025-01-15"},
	{Name: "Pavan", Email: "pavan@gmail.com", Department: "HR", JoiningDate: "2025-02-20"},
}

// SeedSampleData registers the two demo employees.
func SeedSampleData(ctx context.Context, directory employee.Service) error {
	for _, req := range sampleEmployees {
		resp, err := directory.Create(ctx, req)
		if err != nil {
			return err
		}
		zap.L().Named("app.seed").Info("sample employee registered",
			zap.Int64("employee_id", resp.ID),
			zap.String("name", resp.Name),
		)
	}
	return nil
}
