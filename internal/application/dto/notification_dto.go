package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	CompanyID  *string   `json:"company_id,omitempty"`
	DocumentID *string   `json:"document_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotificationListResponse listado paginado de notificaciones.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// MarkAllReadResponse resultado de marcar todas como leídas.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
