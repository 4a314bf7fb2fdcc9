package models

import "time"

// Ebook carries a denormalized uploader snapshot taken at upload time.
// The snapshot is never resynced after later account edits.
type Ebook struct {
	ID              uint      `gorm:"primaryKey" json:"_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	Genre           string    `gorm:"size:128;not null" json:"genre"`
	PublicationYear int       `gorm:"not null" json:"publicationYear"`
	Content         string    `gorm:"type:longtext" json:"content,omitempty"`
	UploaderID      uint      `gorm:"index" json:"-"`
	UploaderName    string    `gorm:"size:191" json:"uploaderName"`
	UploaderEmail   string    `gorm:"size:191" json:"uploaderEmail"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
