package auth

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cuenta y perfil se crean como
// una unidad: si el segundo insert falla no queda fila huérfana en users.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		accountantRepo repository.AccountantRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
