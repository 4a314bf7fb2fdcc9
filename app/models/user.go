package models

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	Email         string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Role          string    `gorm:"size:32;not null;default:user" json:"role"`
	UploadedBooks []Ebook   `gorm:"foreignKey:UploaderID" json:"uploadedBooks,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (u *User) IsAdmin() bool { return u.Role == "admin" }
