package usecase

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// NotificationUseCase lectura y marcado de notificaciones, siempre acotadas
// al destinatario (caller.role, caller.userID).
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List devuelve las notificaciones del destinatario autenticado.
func (uc *NotificationUseCase) List(ctx context.Context, id auth.Identity, unreadOnly bool, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByRecipient(ctx, id.Role, id.UserID, unreadOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// MarkRead marca una notificación como leída; verifica pertenencia antes de mutar.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id auth.Identity, notificationID string) error {
	n, err := uc.repo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.RecipientID != id.UserID || n.RecipientType != id.Role {
		return domain.ErrForbidden
	}
	if n.Read {
		return nil // ya leída: no-op
	}
	return uc.repo.MarkRead(ctx, notificationID)
}

// MarkAllRead marca todas las pendientes del destinatario. Idempotente: una
// segunda llamada consecutiva devuelve cero actualizadas.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, id auth.Identity) (*dto.MarkAllReadResponse, error) {
	updated, err := uc.repo.MarkAllRead(ctx, id.Role, id.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		CompanyID:  n.CompanyID,
		DocumentID: n.DocumentID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}
