package entity

import "time"

// Tipos de notificación.
const (
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

// Notification es un aviso generado por el sistema como efecto secundario de
// otra operación (asignación, cambio de estado, subida de documento).
// Nunca la crea un usuario; solo se muta su flag Read.
type Notification struct {
	ID            string
	RecipientType string // rol del destinatario: admin, accountant, company
	RecipientID   string // users.id del destinatario
	Title         string
	Message       string
	Type          string  // success, warning, error, info
	CompanyID     *string // empresa relacionada, si aplica
	DocumentID    *string // documento relacionado, si aplica
	Read          bool
	CreatedAt     time.Time
}
