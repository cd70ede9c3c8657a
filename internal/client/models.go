package client

// Task is the wire shape of a task as served by /api/tasks.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Username    string  `json:"username"`
	FirstName   string  `json:"first_name,omitempty"`
	LastName    string  `json:"last_name,omitempty"`
}

// OwnerName is the display name of the task owner.
func (t Task) OwnerName() string {
	if t.FirstName != "" {
		return t.FirstName
	}
	return t.Username
}

// TaskCreate is the body of POST /api/tasks.
type TaskCreate struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// TaskUpdate is a partial update; nil fields are omitted from the request.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type Stats struct {
	TotalTasks     int            `json:"total_tasks"`
	StatusCounts   map[string]int `json:"status_counts"`
	PriorityCounts map[string]int `json:"priority_counts"`
	OverdueCount   int            `json:"overdue_count"`
}

type Health struct {
	Status         string  `json:"status"`
	Database       string  `json:"database,omitempty"`
	Version        string  `json:"version,omitempty"`
	Timestamp      string  `json:"timestamp,omitempty"`
	ResponseTimeMs float64 `json:"response_time_ms,omitempty"`
}
