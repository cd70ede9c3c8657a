package model

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	FirstName      string
	LastName       string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// DisplayName is what the dashboard shows as the task owner.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
