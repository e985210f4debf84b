package dto

import "time"

// AccountantResponse salida de un perfil de contador.
type AccountantResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	AdmissionDate time.Time `json:"admission_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountantListResponse listado paginado de contadores.
type AccountantListResponse struct {
	Items []AccountantResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
