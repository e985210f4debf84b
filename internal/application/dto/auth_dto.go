package dto

import "time"

// RegisterRequest entrada para registro: cuenta + campos del perfil según rol.
// "comptable" se acepta como sinónimo legado de "accountant".
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=accountant company comptable"`

	// Campos de perfil (comunes y por rol)
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	// Solo rol company
	TaxID        string `json:"tax_id" validate:"omitempty,max=40"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de registro/login con token JWT.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse usuario actual unido a su perfil según el rol.
type MeResponse struct {
	User       UserResponse        `json:"user"`
	Accountant *AccountantResponse `json:"accountant,omitempty"`
	Company    *CompanyResponse    `json:"company,omitempty"`
}

// UpdateUserStatusRequest entrada para activar/desactivar una cuenta.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
