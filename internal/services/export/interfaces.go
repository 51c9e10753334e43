package export

import (
	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Metadata identifies the recording an export was taken from.
type Metadata struct {
	FileName   string `json:"fileName"`
	Lead       string `json:"lead"`
	ExportDate string `json:"exportDate"` // RFC3339, UTC
	Annotator  string `json:"annotator"`
}

// ExportedAnnotation is the wire form of a single annotation. Manual
// annotations always carry confidence 0.0.
type ExportedAnnotation struct {
	Time        float64 `json:"time"`
	Type        string  `json:"type"`
	AIGenerated bool    `json:"aiGenerated"`
	Confidence  float64 `json:"confidence"`
}

// ExportDocument is the complete export payload. Two exports of the same
// session differ only in exportDate.
type ExportDocument struct {
	Metadata    Metadata             `json:"metadata"`
	Annotations []ExportedAnnotation `json:"annotations"`
}

// SessionMeta is what the caller knows about the session being exported.
type SessionMeta struct {
	FileName  string
	Lead      models.Lead
	Annotator string
}

// Service builds export documents and turns them back into annotations.
type Service interface {
	// Export serializes the annotation set, sorted ascending by time.
	Export(annotations []models.Annotation, meta SessionMeta) (*ExportDocument, error)

	// Import reconstructs annotations from a document. Ids are not carried
	// on the wire; the caller assigns fresh ones before storing.
	Import(doc *ExportDocument) ([]models.Annotation, error)
}
