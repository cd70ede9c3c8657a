package model

// Stats holds the aggregate counters computed server-side for one user.
type Stats struct {
	TotalTasks     int            `json:"total_tasks"`
	StatusCounts   map[string]int `json:"status_counts"`
	PriorityCounts map[string]int `json:"priority_counts"`
	OverdueCount   int            `json:"overdue_count"`
}
