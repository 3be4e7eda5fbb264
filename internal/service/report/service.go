package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
	"github.com/tracklite/attendance-backend-go/internal/domain/report"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	user.EmployeeRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo user.EmployeeRepository) report.Service {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// GetMyReport implements report.Service.
func (r *ReportServiceImpl) GetMyReport(ctx context.Context, from, to string) (*report.Report, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}
	return r.buildReport(ctx, employeeID, from, to)
}

// GetEmployeeReport implements report.Service.
func (r *ReportServiceImpl) GetEmployeeReport(ctx context.Context, employeeID, from, to string) (*report.Report, error) {
	exists, err := r.EmployeeRepository.Exists(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return nil, user.ErrEmployeeNotFound
	}
	return r.buildReport(ctx, employeeID, from, to)
}

// ListDepartmentReports implements report.Service.
func (r *ReportServiceImpl) ListDepartmentReports(ctx context.Context, department, from, to string) ([]report.Report, error) {
	employees, err := r.EmployeeRepository.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by department: %w", err)
	}

	reports := make([]report.Report, 0, len(employees))
	for i := range employees {
		rep, err := r.buildReport(ctx, employees[i].ID, from, to)
		if err != nil {
			return nil, err
		}
		rep.EmployeeName = &employees[i].Name
		reports = append(reports, *rep)
	}
	return reports, nil
}

func (r *ReportServiceImpl) buildReport(ctx context.Context, employeeID, from, to string) (*report.Report, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report start date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report end date: %w", err)
	}
	if toDate.Before(fromDate) {
		return nil, report.ErrInvalidRange
	}

	records, err := r.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var name *string
	if len(records) > 0 && records[0].EmployeeName != nil {
		name = records[0].EmployeeName
	}

	rep := toReport(Calculate(records), employeeID, name, from, to)
	return &rep, nil
}
