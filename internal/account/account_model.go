package account

import "gorm.io/gorm"

// User is a coach or staff account.
type User struct {
	gorm.Model
	Email        string `gorm:"not null;unique" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"type:VARCHAR(20);default:'coach'" json:"role"`
	TeamID       uint   `json:"team_id"`
	Team         Team   `json:"team,omitempty"`
}

// Team holds the program-level settings a user's schedules default to.
type Team struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Program string `json:"program"`
	Motto   string `json:"motto,omitempty"`
}

// RegisterInput is the payload for creating an account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	TeamID   uint   `json:"team_id"`
}

// LoginInput is the payload for signing in
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileInput is the payload for updating account settings
type ProfileInput struct {
	Name   string `json:"name"`
	TeamID uint   `json:"team_id"`
}

// TeamInput is the payload for updating team settings
type TeamInput struct {
	Name    string `json:"name" binding:"required"`
	Program string `json:"program"`
	Motto   string `json:"motto"`
}
