package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/ports"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// allowedDocumentMIME tipos aceptados por el pipeline de subida.
var allowedDocumentMIME = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// DocumentUseCase pipeline de subida y ciclo de vida de documentos.
type DocumentUseCase struct {
	documentRepo     repository.DocumentRepository
	companyRepo      repository.CompanyRepository
	accountantRepo   repository.AccountantRepository
	notificationRepo repository.NotificationRepository
	tx               DocumentTxRunner
	storage          ports.FileStorage
	thumbnails       ports.ThumbnailGenerator
	maxDocumentBytes int64
	log              zerolog.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	documentRepo repository.DocumentRepository,
	companyRepo repository.CompanyRepository,
	accountantRepo repository.AccountantRepository,
	notificationRepo repository.NotificationRepository,
	tx DocumentTxRunner,
	storage ports.FileStorage,
	thumbnails ports.ThumbnailGenerator,
	maxDocumentBytes int64,
	log zerolog.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		documentRepo:     documentRepo,
		companyRepo:      companyRepo,
		accountantRepo:   accountantRepo,
		notificationRepo: notificationRepo,
		tx:               tx,
		storage:          storage,
		thumbnails:       thumbnails,
		maxDocumentBytes: maxDocumentBytes,
		log:              log,
	}
}

// Upload valida, sube el archivo al almacenamiento y registra documento +
// notificación en una transacción. El orden importa: las validaciones van
// antes de cualquier escritura en storage, y si la transacción de DB falla
// el objeto subido se borra para no dejar basura ni filas parciales.
func (uc *DocumentUseCase) Upload(ctx context.Context, id auth.Identity, in dto.UploadDocumentRequest, fileName, mimeType string, data []byte) (*dto.DocumentResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !canView(id, company) {
		return nil, domain.ErrForbidden
	}
	if _, ok := allowedDocumentMIME[mimeType]; !ok {
		return nil, domain.ErrFileTypeNotAllowed
	}
	if int64(len(data)) > uc.maxDocumentBytes {
		return nil, domain.ErrFileTooLarge
	}
	amount := decimal.Zero
	if in.Amount != "" {
		amount, err = decimal.NewFromString(in.Amount)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	key := fmt.Sprintf("documents/%s/%d_%s", company.ID, now.UnixNano(), sanitizeFileName(fileName))
	url, err := uc.storage.Upload(ctx, key, data)
	if err != nil {
		return nil, err
	}

	// Miniatura best-effort; un fallo aquí nunca bloquea la subida.
	if thumb, err := uc.thumbnails.Generate(ctx, data, mimeType); err == nil && thumb != nil {
		_, _ = uc.storage.Upload(ctx, key+".thumb.jpg", thumb)
	}

	doc := &entity.Document{
		ID:         uuid.New().String(),
		CompanyID:  company.ID,
		CategoryID: in.CategoryID,
		FileName:   fileName,
		FileURL:    url,
		StorageKey: key,
		MimeType:   mimeType,
		SizeBytes:  int64(len(data)),
		UploadedBy: id.UserID,
		Status:     entity.DocumentStatusNew,
		UploadDate: now,
		Amount:     amount,
		Vendor:     in.Vendor,
		Reference:  in.Reference,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.tx.RunDocumentIntake(ctx, func(
		docs repository.DocumentRepository,
		notifications repository.NotificationRepository,
	) error {
		if err := docs.Create(ctx, doc); err != nil {
			return err
		}
		if company.AccountantID == nil {
			return nil
		}
		accountant, err := uc.accountantRepo.GetByID(ctx, *company.AccountantID)
		if err != nil || accountant == nil {
			return err
		}
		return notifications.Create(ctx, &entity.Notification{
			ID:            uuid.New().String(),
			RecipientType: entity.RoleAccountant,
			RecipientID:   accountant.UserID,
			Title:         "Nuevo documento",
			Message:       fmt.Sprintf("La empresa %s subió el documento %s", company.Name, fileName),
			Type:          entity.NotificationInfo,
			CompanyID:     &company.ID,
			DocumentID:    &doc.ID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		_ = uc.storage.Delete(ctx, key)
		return nil, err
	}

	return toDocumentResponse(doc), nil
}

// ListByCompany lista los documentos de una empresa con la misma visibilidad
// por rol que el recurso empresa.
func (uc *DocumentUseCase) ListByCompany(ctx context.Context, id auth.Identity, companyID string, filter repository.DocumentFilter, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !canView(id, company) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.documentRepo.ListByCompany(ctx, companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get devuelve un documento aplicando la visibilidad de su empresa.
func (uc *DocumentUseCase) Get(ctx context.Context, id auth.Identity, documentID string) (*dto.DocumentResponse, error) {
	doc, err := uc.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, doc.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !canView(id, company) {
		return nil, domain.ErrForbidden
	}
	return toDocumentResponse(doc), nil
}

// UpdateStatus cambia el estado de un documento (contador asignado o admin).
// La primera transición a processed estampa processing_date; después ya no
// se vuelve a tocar.
func (uc *DocumentUseCase) UpdateStatus(ctx context.Context, id auth.Identity, documentID, status string) (*dto.DocumentResponse, error) {
	if !entity.ValidDocumentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	doc, err := uc.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, doc.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !id.IsAdmin() {
		if !id.IsAccountant() || company.AccountantID == nil || *company.AccountantID != id.ProfileID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	processingDate := doc.ProcessingDate
	if status == entity.DocumentStatusProcessed && processingDate == nil {
		processingDate = &now
	}
	if err := uc.documentRepo.UpdateStatus(ctx, documentID, status, processingDate, now); err != nil {
		return nil, err
	}
	doc.Status = status
	doc.ProcessingDate = processingDate
	doc.UpdatedAt = now

	kind := entity.NotificationInfo
	switch status {
	case entity.DocumentStatusProcessed:
		kind = entity.NotificationSuccess
	case entity.DocumentStatusRejected:
		kind = entity.NotificationError
	}
	n := &entity.Notification{
		ID:            uuid.New().String(),
		RecipientType: entity.RoleCompany,
		RecipientID:   company.UserID,
		Title:         "Documento actualizado",
		Message:       fmt.Sprintf("El documento %s pasó al estado %q", doc.FileName, status),
		Type:          kind,
		CompanyID:     &company.ID,
		DocumentID:    &doc.ID,
		CreatedAt:     now,
	}
	// Best-effort: el cambio de estado ya está persistido; un fallo del aviso
	// no lo revierte, pero sí queda en el log.
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		uc.log.Warn().Err(err).
			Str("document_id", doc.ID).
			Str("status", status).
			Msg("no se pudo crear la notificación de cambio de estado")
	}

	return toDocumentResponse(doc), nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:             d.ID,
		CompanyID:      d.CompanyID,
		CategoryID:     d.CategoryID,
		FileName:       d.FileName,
		FileURL:        d.FileURL,
		MimeType:       d.MimeType,
		SizeBytes:      d.SizeBytes,
		UploadedBy:     d.UploadedBy,
		Status:         d.Status,
		UploadDate:     d.UploadDate,
		ProcessingDate: d.ProcessingDate,
		Amount:         d.Amount,
		Vendor:         d.Vendor,
		Reference:      d.Reference,
	}
}
