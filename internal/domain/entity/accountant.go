package entity

import "time"

// Accountant es el perfil de un usuario con rol accountant.
// Tiene a su cargo cero o más empresas (companies.accountant_id).
type Accountant struct {
	ID            string
	UserID        string
	Name          string
	Phone         string
	Address       string
	AdmissionDate time.Time
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
