package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session owns all mutable annotation state for one logical user session:
// the current waveform, the annotation set, the comment thread, and the
// quality-control status. Sessions never share state with each other.
type Session struct {
	gorm.Model
	UUID         string        `json:"uuid" gorm:"uniqueIndex;not null"`
	FileName     string        `json:"file_name" gorm:"not null;default:simulated-ecg"`
	SelectedLead Lead          `json:"selected_lead" gorm:"not null"`
	Annotator    string        `json:"annotator"`
	Status       QualityStatus `json:"status" gorm:"not null;default:pending"`

	// Set when the session enters under-review; the auto-approval deadline
	// is computed from it on the next status read.
	ReviewRequestedAt *time.Time `json:"review_requested_at,omitempty"`

	// Last annotation id handed out for this session. Incremented under a
	// transaction so ids stay collision-free.
	LastAnnotationID int64 `json:"-" gorm:"not null;default:0"`
}

// BeforeCreate generates a UUID and fills enum defaults before insert.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.SelectedLead == "" {
		s.SelectedLead = LeadII
	}
	if s.Status == "" {
		s.Status = QualityPending
	}
	if s.FileName == "" {
		s.FileName = "simulated-ecg"
	}
	return nil
}

// TableName returns the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}
