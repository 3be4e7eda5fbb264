package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	user.EmployeeRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo user.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkIn := nowUTC
	if req.Timestamp != "" {
		if parsed, ok := parseTimestamp(req.Timestamp); ok {
			checkIn = parsed
		}
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, checkIn)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	if err := ValidateCheckIn(existing, nowUTC); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CheckIn:    checkIn,
		CreatedAt:  nowUTC,
		UpdatedAt:  nowUTC,
	}
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toResponse(&created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var record attendance.Attendance
	if req.AttendanceID != "" {
		record, err = a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
		}
		if record.EmployeeID != employeeID {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
	} else {
		open, err := a.AttendanceRepository.GetOpenSession(ctx, employeeID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance session: %w", err)
		}
		if open == nil {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		record = *open
	}

	checkOut := nowUTC
	if req.Timestamp != "" {
		if parsed, ok := parseTimestamp(req.Timestamp); ok {
			checkOut = parsed
		}
	}

	if err := ValidateCheckOut(&record, checkOut); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.CheckOut = &checkOut
	record.UpdatedAt = nowUTC
	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(&record), nil
}

// ManualEntry implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	exists, err := a.EmployeeRepository.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, user.ErrEmployeeNotFound
	}

	checkIn, _ := parseTimestamp(req.CheckIn)
	var checkOut *time.Time
	if req.CheckOut != nil {
		parsed, _ := parseTimestamp(*req.CheckOut)
		checkOut = &parsed
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, checkIn)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	if err := ValidateManualEntry(existing, checkIn, checkOut, req.Reason, nowUTC); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	reason := req.Reason
	record := attendance.Attendance{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		ManualReason: &reason,
		CreatedAt:    nowUTC,
		UpdatedAt:    nowUTC,
	}
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toResponse(&created), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	newCheckIn := record.CheckIn
	if req.CheckIn != nil {
		newCheckIn, _ = parseTimestamp(*req.CheckIn)
	}

	newCheckOut := record.CheckOut
	if req.ClearCheckOut {
		newCheckOut = nil
	} else if req.CheckOut != nil {
		parsed, _ := parseTimestamp(*req.CheckOut)
		newCheckOut = &parsed
	}

	if err := ValidateEdit(&record, newCheckIn, newCheckOut, nowUTC); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.CheckIn = newCheckIn
	record.CheckOut = newCheckOut
	record.UpdatedAt = nowUTC
	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(&record), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	nowUTC := time.Now().UTC()

	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to get attendance record: %w", err)
	}

	if err := ValidateDelete(&record, nowUTC); err != nil {
		return err
	}

	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return toResponse(&record), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	nowUTC := time.Now().UTC()

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, nowUTC)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	if record == nil {
		return attendance.TodayStatusResponse{}, nil
	}

	status := attendance.TodayStatusResponse{
		HasCheckedIn:  true,
		HasCheckedOut: record.CheckOut != nil,
		AttendanceID:  &record.ID,
	}
	in := record.CheckIn.Format(time.RFC3339)
	status.CheckInTime = &in
	if record.CheckOut != nil {
		out := record.CheckOut.Format(time.RFC3339)
		status.CheckOutTime = &out
	}
	return status, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.list(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		From:       filter.From,
		To:         filter.To,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return a.list(ctx, filter)
}

// ListLateCheckIns implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListLateCheckIns(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0)
	for i := range records {
		if attendance.IsLateCheckIn(records[i].CheckIn) {
			responses = append(responses, toResponse(&records[i]))
		}
	}
	return responses, nil
}

// ListEarlyCheckOuts implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEarlyCheckOuts(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0)
	for i := range records {
		if records[i].CheckOut != nil && attendance.IsEarlyCheckOut(*records[i].CheckOut) {
			responses = append(responses, toResponse(&records[i]))
		}
	}
	return responses, nil
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toResponse(&records[i]))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// parseTimestamp accepts RFC3339 with or without fractional seconds.
// The DTO validators have already rejected anything else.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toResponse(record *attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                 record.ID,
		EmployeeID:         record.EmployeeID,
		EmployeeName:       derefOr(record.EmployeeName),
		EmployeeDepartment: derefOr(record.EmployeeDepartment),
		Date:               record.CheckIn.Format("2006-01-02"),
		CheckInTime:        record.CheckIn.Format(time.RFC3339),
		IsLate:             attendance.IsLateCheckIn(record.CheckIn),
		Status:             "in_progress",
	}
	if record.CheckOut != nil {
		out := record.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &out

		early := attendance.IsEarlyCheckOut(*record.CheckOut)
		resp.IsEarlyLeave = &early

		d := record.CheckOut.Sub(record.CheckIn)
		hours := math.Round(d.Hours()*100) / 100
		resp.WorkingHours = &hours
		resp.IsFullDay = d >= attendance.FullDayDuration
		resp.Status = "completed"
	}
	return resp
}
