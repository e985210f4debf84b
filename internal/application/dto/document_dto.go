package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadDocumentRequest metadatos del multipart de subida (el archivo viaja aparte).
type UploadDocumentRequest struct {
	CompanyID  string `form:"company_id" validate:"required,uuid"`
	CategoryID string `form:"category_id" validate:"required,max=60"`
	Amount     string `form:"amount" validate:"omitempty"`
	Vendor     string `form:"vendor" validate:"omitempty,max=200"`
	Reference  string `form:"reference" validate:"omitempty,max=100"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	CategoryID     string          `json:"category_id"`
	FileName       string          `json:"file_name"`
	FileURL        string          `json:"file_url"`
	MimeType       string          `json:"mime_type"`
	SizeBytes      int64           `json:"size_bytes"`
	UploadedBy     string          `json:"uploaded_by"`
	Status         string          `json:"status"`
	UploadDate     time.Time       `json:"upload_date"`
	ProcessingDate *time.Time      `json:"processing_date,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Vendor         string          `json:"vendor,omitempty"`
	Reference      string          `json:"reference,omitempty"`
}

// DocumentListResponse listado paginado de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// UpdateDocumentStatusRequest entrada para cambio de estado de documento.
type UpdateDocumentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_review processed rejected"`
}
