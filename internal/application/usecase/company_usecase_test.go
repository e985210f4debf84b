package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

const (
	accID      = "acc-1"
	accUserID  = "user-acc-1"
	comID      = "com-1"
	comUserID  = "user-com-1"
	otherComID = "com-2"
)

func strPtr(s string) *string { return &s }

func buildCompanyFixture() (*fakeCompanyRepo, *fakeAccountantRepo, *fakeNotificationRepo) {
	companies := newFakeCompanyRepo(
		&entity.Company{ID: comID, UserID: comUserID, Name: "ACME", Status: entity.CompanyStatusPending, AccountantID: strPtr(accID)},
		&entity.Company{ID: otherComID, UserID: "user-com-2", Name: "Globex", Status: entity.CompanyStatusActive},
	)
	accountants := newFakeAccountantRepo(
		&entity.Accountant{ID: accID, UserID: accUserID, Name: "Conta Uno"},
	)
	return companies, accountants, newFakeNotificationRepo()
}

func buildCompanyUC() (*usecase.CompanyUseCase, *fakeCompanyRepo, *fakeAccountantRepo, *fakeNotificationRepo, *fakeStorage) {
	companies, accountants, notifications := buildCompanyFixture()
	storage := &fakeStorage{}
	uc := usecase.NewCompanyUseCase(companies, accountants, notifications, storage, 1024)
	return uc, companies, accountants, notifications, storage
}

var (
	adminID      = auth.Identity{UserID: "user-admin", Role: entity.RoleAdmin}
	accountantID = auth.Identity{UserID: accUserID, ProfileID: accID, Role: entity.RoleAccountant}
	companyID    = auth.Identity{UserID: comUserID, ProfileID: comID, Role: entity.RoleCompany}
)

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyList_AdminVeTodas(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	out, err := uc.List(context.Background(), adminID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestCompanyList_ContadorSoloSuCartera(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	out, err := uc.List(context.Background(), accountantID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el contador solo ve las empresas de su cartera")
	assert.Equal(t, comID, out.Items[0].ID)
}

func TestCompanyList_EmpresaSoloSuFila(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	out, err := uc.List(context.Background(), companyID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, comID, out.Items[0].ID)
}

// Una fila que existe pero pertenece a otro tenant responde 403, no 404.
func TestCompanyGet_OtroTenantProhibido(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	_, err := uc.Get(context.Background(), companyID, otherComID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompanyGet_Inexistente(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	_, err := uc.Get(context.Background(), adminID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de contador
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignAccountant_NotificaAAmbos(t *testing.T) {
	uc, companies, _, notifications, _ := buildCompanyUC()

	out, err := uc.AssignAccountant(context.Background(), otherComID, accID)
	require.NoError(t, err)
	require.NotNil(t, out.AccountantID)
	assert.Equal(t, accID, *out.AccountantID)
	assert.Equal(t, accID, *companies.byID[otherComID].AccountantID)

	require.Len(t, notifications.created, 2, "empresa y contador deben ser notificados")
	recipients := map[string]bool{}
	for _, n := range notifications.created {
		recipients[n.RecipientID] = true
	}
	assert.True(t, recipients["user-com-2"])
	assert.True(t, recipients[accUserID])
}

func TestAssignAccountant_VacioDesasigna(t *testing.T) {
	uc, companies, _, notifications, _ := buildCompanyUC()

	out, err := uc.AssignAccountant(context.Background(), comID, "")
	require.NoError(t, err)
	assert.Nil(t, out.AccountantID)
	assert.Nil(t, companies.byID[comID].AccountantID)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, entity.NotificationWarning, notifications.created[0].Type)
}

func TestAssignAccountant_ContadorInexistente(t *testing.T) {
	uc, companies, _, _, _ := buildCompanyUC()

	_, err := uc.AssignAccountant(context.Background(), otherComID, "acc-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, companies.byID[otherComID].AccountantID, "una validación fallida no debe escribir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado y activation_date
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyUpdateStatus_ActivarEstampaFecha(t *testing.T) {
	uc, companies, _, _, _ := buildCompanyUC()

	out, err := uc.UpdateStatus(context.Background(), comID, entity.CompanyStatusActive)
	require.NoError(t, err)

	assert.Equal(t, entity.CompanyStatusActive, out.Status)
	require.NotNil(t, out.ActivationDate, "activar debe estampar activation_date")
	require.NotNil(t, companies.byID[comID].ActivationDate)
}

func TestCompanyUpdateStatus_DesactivarLimpiaFecha(t *testing.T) {
	uc, companies, _, _, _ := buildCompanyUC()

	_, err := uc.UpdateStatus(context.Background(), comID, entity.CompanyStatusActive)
	require.NoError(t, err)
	out, err := uc.UpdateStatus(context.Background(), comID, entity.CompanyStatusInactive)
	require.NoError(t, err)

	assert.Nil(t, out.ActivationDate, "sólo una empresa activa conserva activation_date")
	assert.Nil(t, companies.byID[comID].ActivationDate)
}

func TestCompanyUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _, _, _, _ := buildCompanyUC()

	_, err := uc.UpdateStatus(context.Background(), comID, "suspendida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Foto de perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfilePicture_PropiaEmpresa(t *testing.T) {
	uc, companies, _, _, storage := buildCompanyUC()

	out, err := uc.UpdateProfilePicture(context.Background(), companyID, comID, "logo.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ProfilePicture)
	assert.Equal(t, out.ProfilePicture, companies.byID[comID].ProfilePicture)
	assert.Len(t, storage.uploads, 1)
}

func TestUpdateProfilePicture_OtraEmpresaProhibido(t *testing.T) {
	uc, _, _, _, storage := buildCompanyUC()

	_, err := uc.UpdateProfilePicture(context.Background(), companyID, otherComID, "logo.png", "image/png", []byte("png"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, storage.uploads, "una petición prohibida no debe tocar el storage")
}

func TestUpdateProfilePicture_SoloImagenes(t *testing.T) {
	uc, _, _, _, storage := buildCompanyUC()

	_, err := uc.UpdateProfilePicture(context.Background(), companyID, comID, "doc.pdf", "application/pdf", []byte("pdf"))
	assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)
	assert.Empty(t, storage.uploads)
}

func TestUpdateProfilePicture_DemasiadoGrande(t *testing.T) {
	uc, _, _, _, storage := buildCompanyUC()

	big := make([]byte, 2048) // límite del fixture: 1024
	_, err := uc.UpdateProfilePicture(context.Background(), companyID, comID, "logo.png", "image/png", big)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, storage.uploads)
}
