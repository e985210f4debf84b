package dto

import "time"

// CompanyResponse salida de un perfil de empresa.
type CompanyResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Name           string     `json:"name"`
	TaxID          string     `json:"tax_id"`
	Address        string     `json:"address"`
	Phone          string     `json:"phone"`
	ContactEmail   string     `json:"contact_email"`
	Status         string     `json:"status"`
	AccountantID   *string    `json:"accountant_id"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	ActivationDate *time.Time `json:"activation_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AssignAccountantRequest entrada para asignar contador a empresa.
// AccountantID vacío desasigna.
type AssignAccountantRequest struct {
	AccountantID string `json:"accountant_id" validate:"omitempty,uuid"`
}

// UpdateCompanyStatusRequest entrada para cambiar el estado de una empresa.
type UpdateCompanyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active inactive"`
}
