package repository

import (
	"context"
	"time"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

// DocumentFilter filtros opcionales para listados de documentos.
type DocumentFilter struct {
	Status     string
	CategoryID string
}

// DocumentRepository define el puerto de persistencia para documentos.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	ListByCompany(ctx context.Context, companyID string, filter DocumentFilter, limit, offset int) ([]*entity.Document, error)
	// UpdateStatus cambia el estado; processingDate no-nil estampa la fecha de
	// procesamiento (solo la primera vez que se alcanza processed).
	UpdateStatus(ctx context.Context, id, status string, processingDate *time.Time, updatedAt time.Time) error
}
