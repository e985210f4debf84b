package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, recipient_type, recipient_id, title, message, type,
	company_id, document_id, read, created_at`

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_type, recipient_id, title, message, type,
			company_id, document_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.RecipientType, n.RecipientID, n.Title, n.Message, n.Type,
		n.CompanyID, n.DocumentID, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientType, &n.RecipientID, &n.Title, &n.Message, &n.Type,
		&n.CompanyID, &n.DocumentID, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// ListByRecipient lista las notificaciones del destinatario, más recientes primero.
func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientType, recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_type = $1 AND recipient_id = $2
		  AND ($3 = FALSE OR read = FALSE)
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, recipientType, recipientID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientType, &n.RecipientID, &n.Title, &n.Message, &n.Type,
			&n.CompanyID, &n.DocumentID, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca todas las no leídas del destinatario; el WHERE read=FALSE
// hace la operación idempotente (la segunda llamada afecta cero filas).
func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientType, recipientID string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE recipient_type = $1 AND recipient_id = $2 AND read = FALSE`,
		recipientType, recipientID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
