package auth

import "github.com/docscompta/docscompta-api/internal/domain/entity"

// Identity es la identidad autenticada extraída del token. Se pasa como
// argumento explícito a los casos de uso; nunca se re-consulta la DB para
// decidir sobre el rol.
type Identity struct {
	UserID    string
	ProfileID string // accountants.id o companies.id según el rol; vacío para admin
	Role      string
}

// IsAdmin indica si la identidad tiene rol admin.
func (i Identity) IsAdmin() bool { return i.Role == entity.RoleAdmin }

// IsAccountant indica si la identidad tiene rol accountant.
func (i Identity) IsAccountant() bool { return i.Role == entity.RoleAccountant }

// IsCompany indica si la identidad tiene rol company.
func (i Identity) IsCompany() bool { return i.Role == entity.RoleCompany }
