package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

func seedNotification(repo *fakeNotificationRepo, id, recipientType, recipientID string, read bool) {
	repo.byID[id] = &entity.Notification{
		ID:            id,
		RecipientType: recipientType,
		RecipientID:   recipientID,
		Title:         "aviso",
		Message:       "mensaje",
		Type:          entity.NotificationInfo,
		Read:          read,
		CreatedAt:     time.Now(),
	}
}

func buildNotificationUC() (*usecase.NotificationUseCase, *fakeNotificationRepo) {
	repo := newFakeNotificationRepo()
	return usecase.NewNotificationUseCase(repo), repo
}

func TestNotificationList_SoloDelDestinatario(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-1", entity.RoleCompany, comUserID, false)
	seedNotification(repo, "n-2", entity.RoleCompany, comUserID, true)
	seedNotification(repo, "n-3", entity.RoleAccountant, accUserID, false)

	out, err := uc.List(context.Background(), companyID, false, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "no deben aparecer notificaciones de otros destinatarios")
}

func TestNotificationList_SoloNoLeidas(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-1", entity.RoleCompany, comUserID, false)
	seedNotification(repo, "n-2", entity.RoleCompany, comUserID, true)

	out, err := uc.List(context.Background(), companyID, true, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.False(t, out.Items[0].Read)
}

func TestMarkRead_Propia(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-1", entity.RoleCompany, comUserID, false)

	require.NoError(t, uc.MarkRead(context.Background(), companyID, "n-1"))
	assert.True(t, repo.byID["n-1"].Read)
}

func TestMarkRead_AjenaProhibida(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-ajena", entity.RoleAccountant, accUserID, false)

	err := uc.MarkRead(context.Background(), companyID, "n-ajena")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, repo.byID["n-ajena"].Read)
}

func TestMarkRead_Inexistente(t *testing.T) {
	uc, _ := buildNotificationUC()

	err := uc.MarkRead(context.Background(), companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkRead_YaLeidaEsNoOp(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-1", entity.RoleCompany, comUserID, true)

	assert.NoError(t, uc.MarkRead(context.Background(), companyID, "n-1"))
}

// MarkAllRead es idempotente: la segunda llamada consecutiva reporta cero.
func TestMarkAllRead_Idempotente(t *testing.T) {
	uc, repo := buildNotificationUC()
	seedNotification(repo, "n-1", entity.RoleCompany, comUserID, false)
	seedNotification(repo, "n-2", entity.RoleCompany, comUserID, false)
	seedNotification(repo, "n-3", entity.RoleAccountant, accUserID, false)
	ctx := context.Background()

	first, err := uc.MarkAllRead(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Updated)

	second, err := uc.MarkAllRead(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Updated)

	assert.False(t, repo.byID["n-3"].Read, "las de otros destinatarios no se tocan")
}
