package repository_test

import (
	"context"
	"testing"

	"taskapp/internal/model"
	"taskapp/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	user := &model.User{
		Username:       "demo_user",
		Email:          "demo@example.com",
		HashedPassword: "hashed_password",
		FirstName:      "Demo",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// Act
	err := userRepo.Create(context.Background(), user)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
		WithArgs("demo_user", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "hashed_password", "first_name"}).
			AddRow(1, "demo_user", "demo@example.com", "hashed_password", "Demo"))

	// Act
	user, err := userRepo.FindByUsername(context.Background(), "demo_user")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Demo", user.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act: absence is not an error, just a nil user
	user, err := userRepo.FindByUsername(context.Background(), "nobody")

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	user, err := userRepo.GetByID(context.Background(), 99)

	// Assert
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
