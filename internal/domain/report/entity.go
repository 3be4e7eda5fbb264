package report

import "time"

// Report summarizes one employee's attendance over a date range.
type Report struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	From                string  `json:"from"`
	To                  string  `json:"to"`
	TotalPresentDays    int     `json:"total_present_days"`
	TotalWorkingDays    int     `json:"total_working_days"`
	TotalWorkingHours   float64 `json:"total_working_hours"`
	AverageWorkingHours float64 `json:"average_working_hours"`
	LateCount           int     `json:"late_count"`
	EarlyLeaveCount     int     `json:"early_leave_count"`
	FullDayCount        int     `json:"full_day_count"`
	Score               float64 `json:"score"`
}

type Filter struct {
	EmployeeID string
	From       time.Time
	To         time.Time
}
