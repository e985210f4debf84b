package repository

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByRecipient(ctx context.Context, recipientType, recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead marca todas las no leídas del destinatario; devuelve cuántas
	// filas cambió (cero en la segunda llamada consecutiva).
	MarkAllRead(ctx context.Context, recipientType, recipientID string) (int64, error)
}
