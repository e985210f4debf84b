package repository

import (
	"context"
	"time"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para perfiles de empresa.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	ListByAccountant(ctx context.Context, accountantID string, limit, offset int) ([]*entity.Company, error)
	// AssignAccountant cambia la asignación; accountantID nil desasigna.
	AssignAccountant(ctx context.Context, companyID string, accountantID *string, updatedAt time.Time) error
	// UpdateStatus cambia el estado y estampa/limpia activation_date en la misma sentencia.
	UpdateStatus(ctx context.Context, companyID, status string, activationDate *time.Time, updatedAt time.Time) error
	UpdateProfilePicture(ctx context.Context, companyID, path string, updatedAt time.Time) error
}
