package repository

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
)

// AccountantRepository define el puerto de persistencia para perfiles de contador.
type AccountantRepository interface {
	Create(ctx context.Context, accountant *entity.Accountant) error
	GetByID(ctx context.Context, id string) (*entity.Accountant, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Accountant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Accountant, error)
}
