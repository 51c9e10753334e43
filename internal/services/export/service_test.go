package export

import (
	"testing"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock always reports the same instant.
type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

func testMeta() SessionMeta {
	return SessionMeta{
		FileName:  "simulated-ecg",
		Lead:      models.LeadII,
		Annotator: "Dr. Chen",
	}
}

func TestServiceImpl_Export(t *testing.T) {
	clock := fixedClock{at: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}
	service := NewServiceWithClock(clock)

	t.Run("sorts annotations ascending by time", func(t *testing.T) {
		annotations := []models.Annotation{
			{AnnotationID: 1, Time: 5.0, Type: models.AnnotationTWave, Lead: models.LeadII, Source: models.SourceManual},
			{AnnotationID: 2, Time: 1.0, Type: models.AnnotationRPeak, Lead: models.LeadII, Source: models.SourceAutoDetected, Confidence: 0.92},
			{AnnotationID: 3, Time: 3.0, Type: models.AnnotationPWave, Lead: models.LeadII, Source: models.SourceManual},
		}

		doc, err := service.Export(annotations, testMeta())
		require.NoError(t, err)
		require.Len(t, doc.Annotations, 3)

		assert.Equal(t, 1.0, doc.Annotations[0].Time)
		assert.Equal(t, 3.0, doc.Annotations[1].Time)
		assert.Equal(t, 5.0, doc.Annotations[2].Time)

		// The input order must be untouched.
		assert.Equal(t, 5.0, annotations[0].Time)
	})

	t.Run("manual annotations export confidence zero", func(t *testing.T) {
		annotations := []models.Annotation{
			{AnnotationID: 1, Time: 1.0, Type: models.AnnotationRPeak, Lead: models.LeadII, Source: models.SourceManual, Confidence: 0.77},
			{AnnotationID: 2, Time: 2.0, Type: models.AnnotationRPeak, Lead: models.LeadII, Source: models.SourceAutoDetected, Confidence: 0.95},
		}

		doc, err := service.Export(annotations, testMeta())
		require.NoError(t, err)

		assert.False(t, doc.Annotations[0].AIGenerated)
		assert.Zero(t, doc.Annotations[0].Confidence)
		assert.True(t, doc.Annotations[1].AIGenerated)
		assert.Equal(t, 0.95, doc.Annotations[1].Confidence)
	})

	t.Run("metadata carries the clock in RFC3339 UTC", func(t *testing.T) {
		doc, err := service.Export(nil, testMeta())
		require.NoError(t, err)

		assert.Equal(t, "simulated-ecg", doc.Metadata.FileName)
		assert.Equal(t, "Lead II", doc.Metadata.Lead)
		assert.Equal(t, "Dr. Chen", doc.Metadata.Annotator)
		assert.Equal(t, "2025-03-14T09:26:53Z", doc.Metadata.ExportDate)
		assert.Empty(t, doc.Annotations)
	})

	t.Run("two exports differ only in exportDate", func(t *testing.T) {
		annotations := []models.Annotation{
			{AnnotationID: 1, Time: 1.0, Type: models.AnnotationRPeak, Lead: models.LeadII, Source: models.SourceManual},
		}

		first, err := service.Export(annotations, testMeta())
		require.NoError(t, err)

		later := NewServiceWithClock(fixedClock{at: clock.at.Add(time.Hour)})
		second, err := later.Export(annotations, testMeta())
		require.NoError(t, err)

		assert.Equal(t, first.Annotations, second.Annotations)
		assert.NotEqual(t, first.Metadata.ExportDate, second.Metadata.ExportDate)
		first.Metadata.ExportDate = second.Metadata.ExportDate
		assert.Equal(t, first.Metadata, second.Metadata)
	})

	t.Run("rejects an invalid lead", func(t *testing.T) {
		meta := testMeta()
		meta.Lead = "XIII"

		_, err := service.Export(nil, meta)
		assert.ErrorIs(t, err, ErrInvalidLead)
	})
}

func TestServiceImpl_Import(t *testing.T) {
	clock := fixedClock{at: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}
	service := NewServiceWithClock(clock)

	t.Run("round-trips time and type through a document", func(t *testing.T) {
		original := []models.Annotation{
			{AnnotationID: 1, Time: 0.28, Type: models.AnnotationRPeak, Lead: models.LeadII, Source: models.SourceAutoDetected, Confidence: 0.93},
			{AnnotationID: 2, Time: 4.5, Type: models.AnnotationTWave, Lead: models.LeadII, Source: models.SourceManual},
		}

		doc, err := service.Export(original, testMeta())
		require.NoError(t, err)

		restored, err := service.Import(doc)
		require.NoError(t, err)
		require.Len(t, restored, 2)

		assert.Equal(t, 0.28, restored[0].Time)
		assert.Equal(t, models.AnnotationRPeak, restored[0].Type)
		assert.Equal(t, models.SourceAutoDetected, restored[0].Source)
		assert.Equal(t, 0.93, restored[0].Confidence)

		assert.Equal(t, 4.5, restored[1].Time)
		assert.Equal(t, models.AnnotationTWave, restored[1].Type)
		assert.Equal(t, models.SourceManual, restored[1].Source)
		assert.Zero(t, restored[1].Confidence)

		for _, a := range restored {
			assert.Equal(t, models.LeadII, a.Lead)
			assert.Equal(t, "Dr. Chen", a.Author)
			assert.Zero(t, a.AnnotationID) // ids are assigned on store
		}
	})

	t.Run("rejects a nil document", func(t *testing.T) {
		_, err := service.Import(nil)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("rejects an unknown annotation type", func(t *testing.T) {
		doc := &ExportDocument{
			Metadata:    Metadata{Lead: "Lead II"},
			Annotations: []ExportedAnnotation{{Time: 1.0, Type: "Spindle"}},
		}

		_, err := service.Import(doc)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("rejects an unknown lead", func(t *testing.T) {
		doc := &ExportDocument{Metadata: Metadata{Lead: "XIII"}}

		_, err := service.Import(doc)
		assert.ErrorIs(t, err, ErrInvalidLead)
	})
}
