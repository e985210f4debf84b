package usecase

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// DocumentTxRunner ejecuta el registro de un documento y su notificación
// dentro de una transacción: o quedan ambas filas o ninguna.
type DocumentTxRunner interface {
	RunDocumentIntake(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		notificationRepo repository.NotificationRepository,
	) error) error
}
