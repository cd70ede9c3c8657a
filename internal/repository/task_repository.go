package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskapp/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task owned by the given user
func (r *TaskRepository) GetByID(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("User").
		First(&task, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetByUserID retrieves all tasks for a user, most recently updated first
func (r *TaskRepository) GetByUserID(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update applies a partial field map to a task owned by the given user
func (r *TaskRepository) Update(ctx context.Context, id, userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task owned by the given user
func (r *TaskRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

type countRow struct {
	Key   string
	Count int
}

// Stats aggregates per-status counts, per-priority counts and the number of
// overdue tasks (due before today and not completed) for one user.
func (r *TaskRepository) Stats(ctx context.Context, userID uint) (*model.Stats, error) {
	stats := &model.Stats{
		StatusCounts:   map[string]int{},
		PriorityCounts: map[string]int{},
	}

	var statusRows []countRow
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status AS key, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&statusRows)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, row := range statusRows {
		stats.StatusCounts[row.Key] = row.Count
		stats.TotalTasks += row.Count
	}

	var priorityRows []countRow
	result = r.db.WithContext(ctx).Model(&model.Task{}).
		Select("priority AS key, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("priority").
		Scan(&priorityRows)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, row := range priorityRows {
		stats.PriorityCounts[row.Key] = row.Count
	}

	var overdue int64
	result = r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND due_date < CURRENT_DATE AND status <> ?", userID, model.StatusCompleted).
		Count(&overdue)
	if result.Error != nil {
		return nil, result.Error
	}
	stats.OverdueCount = int(overdue)

	return stats, nil
}
