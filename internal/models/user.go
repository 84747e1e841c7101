package models

import "time"

// User é a identidade usada no login. Apenas o hash bcrypt da senha é guardado.
type User struct {
	ID           uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:80;uniqueIndex;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:120;uniqueIndex;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }
