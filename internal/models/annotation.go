package models

import "time"

// AnnotationType distinguishes freeform notes from catalyst entries.
type AnnotationType string

const (
	AnnotationNote     AnnotationType = "note"
	AnnotationCatalyst AnnotationType = "catalyst"
)

// Annotation is a dated note attached to a trade. Annotations are
// append-only; there is no update or delete operation.
type Annotation struct {
	ID      string         `json:"id"`
	TradeID string         `json:"tradeId"`
	Type    AnnotationType `json:"type"`
	Content string         `json:"content"`
	Date    time.Time      `json:"date"`
}

// AnnotationCreate is the payload for appending an annotation; the
// backend assigns the id and date.
type AnnotationCreate struct {
	TradeID string         `json:"tradeId"`
	Type    AnnotationType `json:"type"`
	Content string         `json:"content"`
}
