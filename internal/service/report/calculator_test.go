package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
)

func record(day, inHour, inMin int, outHour, outMin int) attendance.Attendance {
	in := time.Date(2025, 3, day, inHour, inMin, 0, 0, time.UTC)
	out := time.Date(2025, 3, day, outHour, outMin, 0, 0, time.UTC)
	return attendance.Attendance{EmployeeID: "emp-1", CheckIn: in, CheckOut: &out}
}

func openRecord(day, inHour, inMin int) attendance.Attendance {
	in := time.Date(2025, 3, day, inHour, inMin, 0, 0, time.UTC)
	return attendance.Attendance{EmployeeID: "emp-1", CheckIn: in}
}

func TestCalculate(t *testing.T) {
	records := []attendance.Attendance{
		record(3, 8, 0, 17, 45),  // on time, full day
		record(4, 9, 30, 18, 0),  // late, full day
		record(5, 8, 30, 17, 0),  // early leave, full day (8h30m)
		record(6, 8, 0, 12, 0),   // early leave, half day
		openRecord(7, 8, 15),     // still in progress
	}

	m := Calculate(records)

	assert.Equal(t, 5, m.TotalPresentDays)
	assert.Equal(t, 4, m.TotalWorkingDays)
	assert.Equal(t, 1, m.LateCount)
	assert.Equal(t, 2, m.EarlyLeaveCount)
	assert.Equal(t, 3, m.FullDayCount)
	assert.InDelta(t, 9.75+8.5+8.5+4.0, m.TotalWorkingHours, 0.001)
	assert.InDelta(t, m.TotalWorkingHours/4, m.AverageWorkingHours, 0.001)
}

func TestCalculateEmpty(t *testing.T) {
	m := Calculate(nil)
	assert.Equal(t, 0, m.TotalPresentDays)
	assert.Equal(t, 0.0, m.AverageWorkingHours)
	assert.Equal(t, 0.0, Score(m))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want float64
	}{
		{"clean month", Metrics{TotalPresentDays: 20}, 100},
		{"one late of twenty", Metrics{TotalPresentDays: 20, LateCount: 1}, 75},
		{"one early of twenty", Metrics{TotalPresentDays: 20, EarlyLeaveCount: 1}, 85},
		{"one of each", Metrics{TotalPresentDays: 20, LateCount: 1, EarlyLeaveCount: 1}, 60},
		{"every day late", Metrics{TotalPresentDays: 5, LateCount: 5}, 0},
		{"floor stays at zero", Metrics{TotalPresentDays: 2, LateCount: 2, EarlyLeaveCount: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.m), 0.001)
		})
	}
}

func TestScoreBoundsAndMonotonicity(t *testing.T) {
	const present = 10
	prev := 101.0
	for late := 0; late <= present; late++ {
		s := Score(Metrics{TotalPresentDays: present, LateCount: late})
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	prev = 101.0
	for early := 0; early <= present; early++ {
		s := Score(Metrics{TotalPresentDays: present, EarlyLeaveCount: early})
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
		assert.LessOrEqual(t, s, prev)
		prev = s
	}
}
