package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is one entry in a session's discussion thread. Comments live next
// to the annotation set but never appear in export documents.
type Comment struct {
	gorm.Model
	SessionID string    `json:"session_id" gorm:"not null;index"`
	Author    string    `json:"author" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	PostedAt  time.Time `json:"posted_at" gorm:"not null"`
}

// BeforeCreate stamps the posting time when the caller leaves it zero.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.PostedAt.IsZero() {
		c.PostedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}
