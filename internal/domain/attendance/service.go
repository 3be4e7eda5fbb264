package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the authenticated employee's presence for today
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the authenticated employee's open record
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// ManualEntry creates a back-dated record with a reason (admin)
	ManualEntry(ctx context.Context, req ManualEntryRequest) (AttendanceResponse, error)

	// UpdateAttendance edits a record's clock times (admin) - for fixing wrong data
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a recent record (admin)
	DeleteAttendance(ctx context.Context, id string) error

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// GetTodayStatus reports the authenticated employee's state for today
	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/manager)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListLateCheckIns lists records checked in after 09:00 on a date
	ListLateCheckIns(ctx context.Context, date time.Time) ([]AttendanceResponse, error)

	// ListEarlyCheckOuts lists records checked out before 17:30 on a date
	ListEarlyCheckOuts(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
}
