package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/dashboard"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
)

type DashboardServiceImpl struct {
	dashboard.Repository
	user.EmployeeRepository
}

func NewDashboardService(repo dashboard.Repository, employeeRepo user.EmployeeRepository) dashboard.Service {
	return &DashboardServiceImpl{
		Repository:         repo,
		EmployeeRepository: employeeRepo,
	}
}

// GetAdminStats implements dashboard.Service.
func (d *DashboardServiceImpl) GetAdminStats(ctx context.Context) (*dashboard.AdminStats, error) {
	today := time.Now().UTC().Format("2006-01-02")

	total, err := d.EmployeeRepository.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	present, err := d.Repository.CountPresentOn(ctx, today, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count present employees: %w", err)
	}
	late, err := d.Repository.CountLateOn(ctx, today, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count late check-ins: %w", err)
	}
	onLeave, err := d.Repository.CountOnLeave(ctx, today, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	pendingLeaves, err := d.Repository.CountPendingLeaves(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	pendingComplaints, err := d.Repository.CountPendingComplaints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending complaints: %w", err)
	}

	return &dashboard.AdminStats{
		TotalEmployees:    total,
		PresentToday:      present,
		LateToday:         late,
		OnLeaveToday:      onLeave,
		PendingLeaves:     pendingLeaves,
		PendingComplaints: pendingComplaints,
	}, nil
}

// GetManagerStats implements dashboard.Service.
func (d *DashboardServiceImpl) GetManagerStats(ctx context.Context) (*dashboard.ManagerStats, error) {
	today := time.Now().UTC().Format("2006-01-02")

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	manager, err := d.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, user.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	department := manager.Department

	counts, err := d.EmployeeRepository.CountByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count department employees: %w", err)
	}
	teamSize := counts[department]
	present, err := d.Repository.CountPresentOn(ctx, today, department)
	if err != nil {
		return nil, fmt.Errorf("failed to count present employees: %w", err)
	}
	late, err := d.Repository.CountLateOn(ctx, today, department)
	if err != nil {
		return nil, fmt.Errorf("failed to count late check-ins: %w", err)
	}
	onLeave, err := d.Repository.CountOnLeave(ctx, today, department)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	pendingLeaves, err := d.Repository.CountPendingLeaves(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return &dashboard.ManagerStats{
		Department:    department,
		TeamSize:      teamSize,
		PresentToday:  present,
		LateToday:     late,
		OnLeaveToday:  onLeave,
		PendingLeaves: pendingLeaves,
	}, nil
}
