package report

import (
	"math"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
	"github.com/tracklite/attendance-backend-go/internal/domain/report"
)

const (
	latePenaltyWeight       = 5.0
	earlyLeavePenaltyWeight = 3.0
)

// Metrics is the pure aggregate of one employee's records over a range.
type Metrics struct {
	TotalPresentDays    int
	TotalWorkingDays    int
	TotalWorkingHours   float64
	AverageWorkingHours float64
	LateCount           int
	EarlyLeaveCount     int
	FullDayCount        int
}

// Calculate aggregates the supplied records. Present days count every
// record; working days and hours count only closed ones.
func Calculate(records []attendance.Attendance) Metrics {
	var m Metrics
	m.TotalPresentDays = len(records)

	for i := range records {
		rec := &records[i]
		if attendance.IsLateCheckIn(rec.CheckIn) {
			m.LateCount++
		}
		if rec.CheckOut == nil {
			continue
		}
		m.TotalWorkingDays++
		d := rec.CheckOut.Sub(rec.CheckIn)
		m.TotalWorkingHours += d.Hours()
		if attendance.IsEarlyCheckOut(*rec.CheckOut) {
			m.EarlyLeaveCount++
		}
		if d >= attendance.FullDayDuration {
			m.FullDayCount++
		}
	}

	if m.TotalWorkingDays > 0 {
		m.AverageWorkingHours = m.TotalWorkingHours / float64(m.TotalWorkingDays)
	}
	return m
}

// Score grades the metrics on a 0-100 scale. Late arrivals weigh five
// points per percentage point of present days, early leaves three. An
// empty range scores zero.
func Score(m Metrics) float64 {
	if m.TotalPresentDays == 0 {
		return 0
	}

	score := 100.0
	score -= (float64(m.LateCount) / float64(m.TotalPresentDays)) * 100 * latePenaltyWeight
	score = math.Max(score, 0)
	score -= (float64(m.EarlyLeaveCount) / float64(m.TotalPresentDays)) * 100 * earlyLeavePenaltyWeight
	return math.Max(score, 0)
}

// toReport rounds the metrics for display.
func toReport(m Metrics, employeeID string, name *string, from, to string) report.Report {
	return report.Report{
		EmployeeID:          employeeID,
		EmployeeName:        name,
		From:                from,
		To:                  to,
		TotalPresentDays:    m.TotalPresentDays,
		TotalWorkingDays:    m.TotalWorkingDays,
		TotalWorkingHours:   math.Round(m.TotalWorkingHours*100) / 100,
		AverageWorkingHours: math.Round(m.AverageWorkingHours*100) / 100,
		LateCount:           m.LateCount,
		EarlyLeaveCount:     m.EarlyLeaveCount,
		FullDayCount:        m.FullDayCount,
		Score:               math.Round(Score(m)*100) / 100,
	}
}
