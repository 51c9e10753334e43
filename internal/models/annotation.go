package models

import (
	"gorm.io/gorm"
)

// Annotation is a time-indexed marker on a session's waveform. Annotations
// are never updated in place; a type or time change is modeled as a remove
// followed by an add. The gorm primary key doubles as insertion order for
// tie-breaking in sorted reads.
type Annotation struct {
	gorm.Model
	SessionID    string           `json:"session_id" gorm:"not null;index;uniqueIndex:idx_session_annotation_id"`
	AnnotationID int64            `json:"id" gorm:"not null;uniqueIndex:idx_session_annotation_id"` // Unique within a session
	Time         float64          `json:"time" gorm:"not null;index"`                               // Seconds from waveform start
	Type         AnnotationType   `json:"type" gorm:"not null"`
	Lead         Lead             `json:"lead" gorm:"not null"`
	Source       AnnotationSource `json:"source" gorm:"not null;default:manual"`
	Confidence   float64          `json:"confidence"`       // Meaningful only for auto-detected annotations
	Author       string           `json:"author,omitempty"` // Optional for manual annotations
}

// AIGenerated reports whether the detection engine placed this annotation.
func (a *Annotation) AIGenerated() bool {
	return a.Source == SourceAutoDetected
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}
