package model

import "time"

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether the status is one of the four known values.
// No transition graph is enforced: any status may replace any other.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint         `gorm:"primaryKey"`
	UserID      uint         `gorm:"not null;index"`
	Title       string       `gorm:"not null"`
	Description string
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:pending"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:medium"`
	DueDate     *time.Time
	CreatedAt   time.Time    `gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID"`
}
