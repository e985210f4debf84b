package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, company_id, category_id, file_name, file_url, storage_key, mime_type,
	size_bytes, uploaded_by, status, upload_date, processing_date, amount, vendor, reference,
	created_at, updated_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste un documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (id, company_id, category_id, file_name, file_url, storage_key, mime_type,
			size_bytes, uploaded_by, status, upload_date, processing_date, amount, vendor, reference,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.CategoryID, d.FileName, d.FileURL, d.StorageKey, d.MimeType,
		d.SizeBytes, d.UploadedBy, d.Status, d.UploadDate, d.ProcessingDate, d.Amount,
		d.Vendor, d.Reference, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CompanyID, &d.CategoryID, &d.FileName, &d.FileURL, &d.StorageKey, &d.MimeType,
		&d.SizeBytes, &d.UploadedBy, &d.Status, &d.UploadDate, &d.ProcessingDate, &d.Amount,
		&d.Vendor, &d.Reference, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByCompany lista documentos de una empresa con filtros opcionales y paginación.
func (r *DocumentRepo) ListByCompany(ctx context.Context, companyID string, filter repository.DocumentFilter, limit, offset int) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE company_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR category_id = $3)
		ORDER BY upload_date DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, filter.Status, filter.CategoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.CategoryID, &d.FileName, &d.FileURL, &d.StorageKey, &d.MimeType,
			&d.SizeBytes, &d.UploadedBy, &d.Status, &d.UploadDate, &d.ProcessingDate, &d.Amount,
			&d.Vendor, &d.Reference, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado; processingDate viaja tal cual (el caso de
// uso decide si se estampa o se conserva la existente).
func (r *DocumentRepo) UpdateStatus(ctx context.Context, id, status string, processingDate *time.Time, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE documents SET status = $2, processing_date = $3, updated_at = $4 WHERE id = $1`,
		id, status, processingDate, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}
