package entity

import "time"

// Estados válidos para Company.
const (
	CompanyStatusPending  = "pending"
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// ValidCompanyStatus valida el enum de estado de empresa.
func ValidCompanyStatus(s string) bool {
	switch s {
	case CompanyStatusPending, CompanyStatusActive, CompanyStatusInactive:
		return true
	}
	return false
}

// Company es el perfil de un usuario con rol company (tenant del sistema).
// Puede estar asignada a lo sumo a un contador; ActivationDate solo es
// no-nula mientras el estado sea active.
type Company struct {
	ID             string
	UserID         string
	Name           string
	TaxID          string
	Address        string
	Phone          string
	ContactEmail   string
	Status         string // pending, active, inactive
	AccountantID   *string
	ProfilePicture string
	ActivationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
