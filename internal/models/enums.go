package models

import "fmt"

// AnnotationType identifies the semantic kind of a marker placed on the
// waveform. The set is closed; values outside it are rejected at parse time.
type AnnotationType string

const (
	AnnotationRPeak      AnnotationType = "R-Peak"
	AnnotationPWave      AnnotationType = "P-Wave"
	AnnotationPRSegment  AnnotationType = "PR-Segment"
	AnnotationTWave      AnnotationType = "T-Wave"
	AnnotationQRSStart   AnnotationType = "QRS-Start"
	AnnotationQRSEnd     AnnotationType = "QRS-End"
	AnnotationJPoint     AnnotationType = "J-Point"
	AnnotationSTSegment  AnnotationType = "ST-Segment"
	AnnotationArrhythmia AnnotationType = "Arrhythmia"
)

// AnnotationTypeInfo carries the display attributes for an annotation type.
type AnnotationTypeInfo struct {
	Name   AnnotationType `json:"name"`
	Color  string         `json:"color"`
	Symbol string         `json:"symbol"`
}

// AnnotationTypes lists every supported annotation type in display order.
var AnnotationTypes = []AnnotationTypeInfo{
	{AnnotationRPeak, "#ef4444", "R"},
	{AnnotationPWave, "#3b82f6", "P"},
	{AnnotationPRSegment, "#a78bfa", "PR"},
	{AnnotationTWave, "#10b981", "T"},
	{AnnotationQRSStart, "#f59e0b", "Q"},
	{AnnotationQRSEnd, "#8b5cf6", "S"},
	{AnnotationJPoint, "#f97316", "J"},
	{AnnotationSTSegment, "#06b6d4", "ST"},
	{AnnotationArrhythmia, "#ec4899", "A"},
}

// ParseAnnotationType validates a raw string against the closed type set.
func ParseAnnotationType(s string) (AnnotationType, error) {
	for _, info := range AnnotationTypes {
		if string(info.Name) == s {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unknown annotation type: %q", s)
}

// Info returns the display attributes for the type.
func (t AnnotationType) Info() (AnnotationTypeInfo, bool) {
	for _, info := range AnnotationTypes {
		if info.Name == t {
			return info, true
		}
	}
	return AnnotationTypeInfo{}, false
}

// Valid reports whether the type belongs to the closed set.
func (t AnnotationType) Valid() bool {
	_, ok := t.Info()
	return ok
}

// Lead names one channel of the standard 12-lead recording.
type Lead string

const (
	LeadI   Lead = "Lead I"
	LeadII  Lead = "Lead II"
	LeadIII Lead = "Lead III"
	LeadAVR Lead = "aVR"
	LeadAVL Lead = "aVL"
	LeadAVF Lead = "aVF"
	LeadV1  Lead = "V1"
	LeadV2  Lead = "V2"
	LeadV3  Lead = "V3"
	LeadV4  Lead = "V4"
	LeadV5  Lead = "V5"
	LeadV6  Lead = "V6"
)

// Leads lists the fixed 12-lead enumeration in conventional order.
var Leads = []Lead{
	LeadI, LeadII, LeadIII,
	LeadAVR, LeadAVL, LeadAVF,
	LeadV1, LeadV2, LeadV3, LeadV4, LeadV5, LeadV6,
}

// ParseLead validates a raw string against the 12-lead enumeration.
func ParseLead(s string) (Lead, error) {
	for _, l := range Leads {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown lead: %q", s)
}

// Valid reports whether the lead belongs to the 12-lead set.
func (l Lead) Valid() bool {
	for _, known := range Leads {
		if known == l {
			return true
		}
	}
	return false
}

// AnnotationSource records whether a human or the detector placed the marker.
type AnnotationSource string

const (
	SourceManual       AnnotationSource = "manual"
	SourceAutoDetected AnnotationSource = "auto-detected"
)

// Valid reports whether the source is one of the two known origins.
func (s AnnotationSource) Valid() bool {
	return s == SourceManual || s == SourceAutoDetected
}

// QualityStatus tracks the session-wide review state.
type QualityStatus string

const (
	QualityPending     QualityStatus = "pending"
	QualityUnderReview QualityStatus = "under-review"
	QualityApproved    QualityStatus = "approved"
)
