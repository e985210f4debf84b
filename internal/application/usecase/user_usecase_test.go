package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

func buildUserUC() (*usecase.UserUseCase, *fakeUserRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: "u-admin", Email: "admin@example.com", Role: entity.RoleAdmin, Status: "active"},
		&entity.User{ID: accUserID, Email: "conta@example.com", Role: entity.RoleAccountant, Status: "active"},
		&entity.User{ID: comUserID, Email: "acme@example.com", Role: entity.RoleCompany, Status: "active"},
	)
	companies, accountants, _ := buildCompanyFixture()
	return usecase.NewUserUseCase(users, accountants, companies), users
}

func TestListUsers_FiltraPorRol(t *testing.T) {
	uc, _ := buildUserUC()

	out, err := uc.ListUsers(context.Background(), "accountant", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, accUserID, out[0].ID)
}

func TestListUsers_FiltroLegadoComptable(t *testing.T) {
	uc, _ := buildUserUC()

	out, err := uc.ListUsers(context.Background(), "comptable", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1, "comptable debe filtrar lo mismo que accountant")
	assert.Equal(t, "accountant", out[0].Role)
}

func TestListUsers_RolDesconocido(t *testing.T) {
	uc, _ := buildUserUC()

	_, err := uc.ListUsers(context.Background(), "superuser", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUserStatus_Desactiva(t *testing.T) {
	uc, users := buildUserUC()

	require.NoError(t, uc.UpdateUserStatus(context.Background(), comUserID, "inactive"))
	assert.Equal(t, "inactive", users.byID[comUserID].Status)
	assert.Equal(t, entity.RoleCompany, users.byID[comUserID].Role, "el rol nunca cambia")
}

func TestUpdateUserStatus_EstadoInvalido(t *testing.T) {
	uc, _ := buildUserUC()

	err := uc.UpdateUserStatus(context.Background(), comUserID, "banned")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUserStatus_UsuarioInexistente(t *testing.T) {
	uc, _ := buildUserUC()

	err := uc.UpdateUserStatus(context.Background(), "fantasma", "inactive")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountantCompanies_PropioContador(t *testing.T) {
	uc, _ := buildUserUC()

	out, err := uc.AccountantCompanies(context.Background(), accountantID, accID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, comID, out.Items[0].ID)
}

func TestAccountantCompanies_OtroContadorProhibido(t *testing.T) {
	uc, _ := buildUserUC()

	otro := accountantID
	otro.ProfileID = "acc-otro"
	_, err := uc.AccountantCompanies(context.Background(), otro, accID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un contador no puede consultar la cartera de otro")
}

func TestAccountantCompanies_AdminPuede(t *testing.T) {
	uc, _ := buildUserUC()

	out, err := uc.AccountantCompanies(context.Background(), adminID, accID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestAccountantCompanies_ContadorInexistente(t *testing.T) {
	uc, _ := buildUserUC()

	_, err := uc.AccountantCompanies(context.Background(), adminID, "acc-fantasma", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
