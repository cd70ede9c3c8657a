package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskapp/internal/model"
	"taskapp/internal/repository"
)

const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	taskRepo TaskStore
	userRepo UserStore
}

func NewTaskHandler(taskRepo TaskStore, userRepo UserStore) *TaskHandler {
	return &TaskHandler{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// TaskCreateRequest is the body of POST /api/tasks
type TaskCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// TaskUpdateRequest is the body of PUT /api/tasks/:id. All fields are
// optional; absent fields are left untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// TaskResponse is the wire shape of a task
type TaskResponse struct {
	ID          uint    `json:"id"`
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

func newTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		Username:    task.User.Username,
		FirstName:   task.User.FirstName,
		LastName:    task.User.LastName,
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.Format(dueDateLayout)
		response.DueDate = &dueDate
	}
	return response
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(dueDateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all tasks of the authenticated user
// @Summary      List tasks
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} handler.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tasks, err := h.taskRepo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, newTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create creates a new task for the authenticated user
// @Summary      Create task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        task body handler.TaskCreateRequest true "Task"
// @Success      201 {object} handler.TaskResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	priority := model.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = model.PriorityMedium
	}

	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusPending,
		Priority:    priority,
	}

	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
			return
		}
		task.DueDate = dueDate
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	owner, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err == nil {
		task.User = *owner
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// Update applies a partial update to a task
// @Summary      Update task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path int true "Task ID"
// @Param        task body handler.TaskUpdateRequest true "Fields to update"
// @Success      200 {object} handler.TaskResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		if !model.TaskStatus(*req.Status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		if !model.TaskPriority(*req.Priority).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		fields["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
			return
		}
		fields["due_date"] = dueDate
	}

	if len(fields) > 0 {
		if err := h.taskRepo.Update(c.Request.Context(), uint(taskID), userID, fields); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			}
			return
		}
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), uint(taskID), userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task
// @Summary      Delete task
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), uint(taskID), userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
