package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false;type:varchar(36)"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate carries the editable fields of a user. An empty PasswordHash leaves the stored hash untouched.
type UserUpdate struct {
	Name         string
	Email        string
	PasswordHash string
}
