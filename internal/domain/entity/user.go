package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleCompany    = "company"
)

// roleComptable es el sinónimo legado de "accountant" que arrastró la
// migración de esquema original. Se acepta en entrada y se normaliza;
// nunca se persiste ni se emite.
const roleComptable = "comptable"

// NormalizeRole mapea sinónimos legados al vocabulario canónico de roles.
func NormalizeRole(role string) string {
	if role == roleComptable {
		return RoleAccountant
	}
	return role
}

// ValidRole indica si el rol (ya normalizado o no) es uno de los tres conocidos.
func ValidRole(role string) bool {
	switch NormalizeRole(role) {
	case RoleAdmin, RoleAccountant, RoleCompany:
		return true
	}
	return false
}

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa una cuenta del sistema. Cada usuario con rol accountant o
// company tiene exactamente una fila de perfil en su tabla correspondiente;
// el rol es inmutable después de la creación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, accountant, company
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
