package report

import "context"

type Service interface {
	GetMyReport(ctx context.Context, from, to string) (*Report, error)
	GetEmployeeReport(ctx context.Context, employeeID, from, to string) (*Report, error)
	ListDepartmentReports(ctx context.Context, department, from, to string) ([]Report, error)
}
