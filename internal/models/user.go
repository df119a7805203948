// Package models contains the persisted entities, response shapes and error types.
package models

import "time"

// User represents an account. Password holds a bcrypt hash and is never serialized.
type User struct {
	UserID    uint      `gorm:"primaryKey" json:"userID"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	JoinDate  time.Time `gorm:"autoCreateTime;not null" json:"joinDate"`
}

// TableName overrides the table name used by User.
func (User) TableName() string { return "users" }

// UserSummary is the list projection of a User.
type UserSummary struct {
	UserID    uint      `json:"userID"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	JoinDate  time.Time `json:"joinDate"`
}

// CreatedUser echoes a newly created user without the credential.
type CreatedUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateUserResponse is the 201 body of POST /api/users.
type CreateUserResponse struct {
	Message string      `json:"message"`
	UserID  uint        `json:"userID"`
	User    CreatedUser `json:"user"`
}
