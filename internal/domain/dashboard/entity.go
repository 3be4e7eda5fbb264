package dashboard

// AdminStats is the company-wide snapshot for today.
type AdminStats struct {
	TotalEmployees     int64 `json:"total_employees"`
	PresentToday       int64 `json:"present_today"`
	LateToday          int64 `json:"late_today"`
	OnLeaveToday       int64 `json:"on_leave_today"`
	PendingLeaves      int64 `json:"pending_leaves"`
	PendingComplaints  int64 `json:"pending_complaints"`
}

// ManagerStats narrows the snapshot to one department.
type ManagerStats struct {
	Department     string `json:"department"`
	TeamSize       int64  `json:"team_size"`
	PresentToday   int64  `json:"present_today"`
	LateToday      int64  `json:"late_today"`
	OnLeaveToday   int64  `json:"on_leave_today"`
	PendingLeaves  int64  `json:"pending_leaves"`
}
