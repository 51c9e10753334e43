// Package export serializes a session's annotations into the interchange
// document consumed by downstream review tooling, and reads such documents
// back in.
package export

import (
	"log"
	"sort"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Clock abstracts time.Now so export documents are reproducible in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	clock Clock
}

// NewService creates a new export service using the system clock.
func NewService() Service {
	return &ServiceImpl{clock: systemClock{}}
}

// NewServiceWithClock creates an export service with an injected clock.
func NewServiceWithClock(clock Clock) Service {
	return &ServiceImpl{clock: clock}
}

// Export serializes the annotation set, sorted ascending by time with
// insertion order breaking ties. The input slice is not mutated.
func (s *ServiceImpl) Export(annotations []models.Annotation, meta SessionMeta) (*ExportDocument, error) {
	if !meta.Lead.Valid() {
		return nil, ErrInvalidLead
	}

	sorted := make([]models.Annotation, len(annotations))
	copy(sorted, annotations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	exported := make([]ExportedAnnotation, 0, len(sorted))
	for _, a := range sorted {
		confidence := a.Confidence
		if !a.AIGenerated() {
			confidence = 0.0
		}
		exported = append(exported, ExportedAnnotation{
			Time:        a.Time,
			Type:        string(a.Type),
			AIGenerated: a.AIGenerated(),
			Confidence:  confidence,
		})
	}

	doc := &ExportDocument{
		Metadata: Metadata{
			FileName:   meta.FileName,
			Lead:       string(meta.Lead),
			ExportDate: s.clock.Now().UTC().Format(time.RFC3339),
			Annotator:  meta.Annotator,
		},
		Annotations: exported,
	}

	log.Printf("[DEBUG] Exported %d annotations for %s", len(exported), meta.FileName)
	return doc, nil
}

// Import reconstructs annotations from a document. Every entry must carry a
// known type; the document's lead applies to all of them.
func (s *ServiceImpl) Import(doc *ExportDocument) ([]models.Annotation, error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}

	lead, err := models.ParseLead(doc.Metadata.Lead)
	if err != nil {
		return nil, ErrInvalidLead
	}

	annotations := make([]models.Annotation, 0, len(doc.Annotations))
	for _, e := range doc.Annotations {
		annType, err := models.ParseAnnotationType(e.Type)
		if err != nil {
			return nil, ErrUnknownType
		}

		source := models.SourceManual
		confidence := 0.0
		if e.AIGenerated {
			source = models.SourceAutoDetected
			confidence = e.Confidence
		}

		annotations = append(annotations, models.Annotation{
			Time:       e.Time,
			Type:       annType,
			Lead:       lead,
			Source:     source,
			Confidence: confidence,
			Author:     doc.Metadata.Annotator,
		})
	}

	return annotations, nil
}
