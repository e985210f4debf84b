package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

const maxDocBytes = 1024

func buildDocumentUC() (*usecase.DocumentUseCase, *fakeDocumentRepo, *fakeNotificationRepo, *fakeStorage) {
	companies, accountants, notifications := buildCompanyFixture()
	docs := newFakeDocumentRepo()
	storage := &fakeStorage{}
	tx := &fakeDocumentTx{docs: docs, notifications: notifications}
	uc := usecase.NewDocumentUseCase(docs, companies, accountants, notifications, tx, storage, fakeThumbnails{}, maxDocBytes, zerolog.Nop())
	return uc, docs, notifications, storage
}

func uploadReq() dto.UploadDocumentRequest {
	return dto.UploadDocumentRequest{
		CompanyID:  comID,
		CategoryID: "facturas",
		Amount:     "120.50",
		Vendor:     "Proveedor SA",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_RegistraDocumentoYNotificaContador(t *testing.T) {
	uc, docs, notifications, storage := buildDocumentUC()

	out, err := uc.Upload(context.Background(), companyID, uploadReq(), "factura enero.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentStatusNew, out.Status)
	assert.Equal(t, comID, out.CompanyID)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Len(t, docs.byID, 1)
	assert.Len(t, storage.uploads, 1)

	require.Len(t, notifications.created, 1, "el contador asignado debe recibir aviso")
	n := notifications.created[0]
	assert.Equal(t, entity.RoleAccountant, n.RecipientType)
	assert.Equal(t, accUserID, n.RecipientID)
	require.NotNil(t, n.DocumentID)
	assert.Equal(t, out.ID, *n.DocumentID)
}

func TestUpload_EmpresaSinContadorNoNotifica(t *testing.T) {
	uc, docs, notifications, _ := buildDocumentUC()

	in := uploadReq()
	in.CompanyID = otherComID // Globex no tiene contador asignado
	_, err := uc.Upload(context.Background(), adminID, in, "recibo.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Len(t, docs.byID, 1)
	assert.Empty(t, notifications.created)
}

func TestUpload_TipoNoPermitidoAntesDeStorage(t *testing.T) {
	uc, docs, _, storage := buildDocumentUC()

	_, err := uc.Upload(context.Background(), companyID, uploadReq(), "script.sh", "application/x-sh", []byte("#!"))
	assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)
	assert.Empty(t, storage.uploads, "la validación de tipo va antes de cualquier escritura")
	assert.Empty(t, docs.byID)
}

func TestUpload_DemasiadoGrandeAntesDeStorage(t *testing.T) {
	uc, _, _, storage := buildDocumentUC()

	big := make([]byte, maxDocBytes+1)
	_, err := uc.Upload(context.Background(), companyID, uploadReq(), "gigante.pdf", "application/pdf", big)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, storage.uploads)
}

func TestUpload_ImporteInvalido(t *testing.T) {
	uc, _, _, storage := buildDocumentUC()

	in := uploadReq()
	in.Amount = "doce euros"
	_, err := uc.Upload(context.Background(), companyID, in, "factura.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, storage.uploads)
}

func TestUpload_OtroTenantProhibido(t *testing.T) {
	uc, _, _, storage := buildDocumentUC()

	in := uploadReq()
	in.CompanyID = otherComID
	_, err := uc.Upload(context.Background(), companyID, in, "factura.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, storage.uploads)
}

// Si la transacción de DB falla después de subir el archivo, el objeto se
// borra del storage y no queda fila de documento ni notificación.
func TestUpload_FalloDeDBBorraElObjetoSubido(t *testing.T) {
	uc, docs, notifications, storage := buildDocumentUC()
	docs.createErr = errors.New("insert falló")

	_, err := uc.Upload(context.Background(), companyID, uploadReq(), "factura.pdf", "application/pdf", []byte("%PDF"))
	require.Error(t, err)

	require.Len(t, storage.uploads, 1)
	require.Len(t, storage.deletes, 1, "el objeto subido debe borrarse tras el rollback")
	assert.Equal(t, storage.uploads[0], storage.deletes[0])
	assert.Empty(t, docs.byID)
	assert.Empty(t, notifications.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura
// ──────────────────────────────────────────────────────────────────────────────

func seedDocument(docs *fakeDocumentRepo, id, companyID, status string) *entity.Document {
	d := &entity.Document{
		ID:         id,
		CompanyID:  companyID,
		CategoryID: "facturas",
		FileName:   id + ".pdf",
		Status:     status,
		Amount:     decimal.Zero,
		UploadDate: time.Now(),
	}
	docs.byID[d.ID] = d
	return d
}

func TestListByCompany_FiltraPorEstado(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)
	seedDocument(docs, "doc-2", comID, entity.DocumentStatusProcessed)
	seedDocument(docs, "doc-3", otherComID, entity.DocumentStatusNew)

	out, err := uc.ListByCompany(context.Background(), adminID, comID,
		repository.DocumentFilter{Status: entity.DocumentStatusNew}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "doc-1", out.Items[0].ID)
}

func TestDocumentGet_VisibilidadDeLaEmpresa(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-ajeno", otherComID, entity.DocumentStatusNew)

	_, err := uc.Get(context.Background(), companyID, "doc-ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un documento de otra empresa no es visible aunque el id sea conocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentUpdateStatus_ContadorAsignado(t *testing.T) {
	uc, docs, notifications, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)

	out, err := uc.UpdateStatus(context.Background(), accountantID, "doc-1", entity.DocumentStatusInReview)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusInReview, out.Status)
	assert.Nil(t, out.ProcessingDate)

	require.Len(t, notifications.created, 1, "la empresa debe recibir aviso del cambio")
	assert.Equal(t, entity.RoleCompany, notifications.created[0].RecipientType)
	assert.Equal(t, comUserID, notifications.created[0].RecipientID)
}

func TestDocumentUpdateStatus_EmpresaNoPuede(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)

	_, err := uc.UpdateStatus(context.Background(), companyID, "doc-1", entity.DocumentStatusProcessed)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDocumentUpdateStatus_ContadorNoAsignadoProhibido(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-ajeno", otherComID, entity.DocumentStatusNew)

	_, err := uc.UpdateStatus(context.Background(), accountantID, "doc-ajeno", entity.DocumentStatusInReview)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"solo el contador asignado a la empresa (o un admin) puede cambiar el estado")
}

// processing_date se estampa con la primera transición a processed y queda
// congelada en transiciones posteriores.
func TestDocumentUpdateStatus_ProcessingDateSoloUnaVez(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)
	ctx := context.Background()

	first, err := uc.UpdateStatus(ctx, adminID, "doc-1", entity.DocumentStatusProcessed)
	require.NoError(t, err)
	require.NotNil(t, first.ProcessingDate)
	stamped := *first.ProcessingDate

	_, err = uc.UpdateStatus(ctx, adminID, "doc-1", entity.DocumentStatusInReview)
	require.NoError(t, err)
	second, err := uc.UpdateStatus(ctx, adminID, "doc-1", entity.DocumentStatusProcessed)
	require.NoError(t, err)

	require.NotNil(t, second.ProcessingDate)
	assert.Equal(t, stamped, *second.ProcessingDate,
		"la fecha de procesamiento no debe cambiar en la segunda transición")
}

// El aviso al destinatario es best-effort: si su inserción falla, el cambio
// de estado ya persistido no se revierte ni la operación devuelve error.
func TestDocumentUpdateStatus_FalloDeAvisoNoBloquea(t *testing.T) {
	uc, docs, notifications, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)
	notifications.createErr = errors.New("notifications caída")

	out, err := uc.UpdateStatus(context.Background(), accountantID, "doc-1", entity.DocumentStatusInReview)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusInReview, out.Status)
	assert.Equal(t, entity.DocumentStatusInReview, docs.byID["doc-1"].Status,
		"el estado persistido no se revierte aunque falle el aviso")
	assert.Empty(t, notifications.created)
}

func TestDocumentUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, docs, _, _ := buildDocumentUC()
	seedDocument(docs, "doc-1", comID, entity.DocumentStatusNew)

	_, err := uc.UpdateStatus(context.Background(), adminID, "doc-1", "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
