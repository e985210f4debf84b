package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un documento.
const (
	DocumentStatusNew       = "new"
	DocumentStatusInReview  = "in_review"
	DocumentStatusProcessed = "processed"
	DocumentStatusRejected  = "rejected"
)

// ValidDocumentStatus valida el enum de estado de documento.
func ValidDocumentStatus(s string) bool {
	switch s {
	case DocumentStatusNew, DocumentStatusInReview, DocumentStatusProcessed, DocumentStatusRejected:
		return true
	}
	return false
}

// Document representa un documento contable subido por una empresa o su
// contador. ProcessingDate se estampa una sola vez, cuando el estado llega
// por primera vez a processed.
type Document struct {
	ID             string
	CompanyID      string
	CategoryID     string
	FileName       string
	FileURL        string
	StorageKey     string // clave interna en el almacenamiento de objetos
	MimeType       string
	SizeBytes      int64
	UploadedBy     string // users.id
	Status         string // new, in_review, processed, rejected
	UploadDate     time.Time
	ProcessingDate *time.Time
	Amount         decimal.Decimal
	Vendor         string
	Reference      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
