package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskapp/internal/middleware"
	"taskapp/internal/model"
)

// TaskStore is the slice of the task repository the handlers need.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id, userID uint) (*model.Task, error)
	GetByUserID(ctx context.Context, userID uint) ([]model.Task, error)
	Update(ctx context.Context, id, userID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id, userID uint) error
	Stats(ctx context.Context, userID uint) (*model.Stats, error)
}

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
