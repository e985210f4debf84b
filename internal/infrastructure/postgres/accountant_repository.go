package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

var _ repository.AccountantRepository = (*AccountantRepo)(nil)

const accountantColumns = `id, user_id, name, phone, address, admission_date, status, created_at, updated_at`

// AccountantRepo implementación del puerto AccountantRepository sobre PostgreSQL.
type AccountantRepo struct {
	q Querier
}

// NewAccountantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountantRepository(q Querier) *AccountantRepo {
	return &AccountantRepo{q: q}
}

// Create persiste un perfil de contador.
func (r *AccountantRepo) Create(ctx context.Context, a *entity.Accountant) error {
	query := `
		INSERT INTO accountants (id, user_id, name, phone, address, admission_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.UserID, a.Name, a.Phone, a.Address, a.AdmissionDate, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert accountant: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil de contador por ID.
func (r *AccountantRepo) GetByID(ctx context.Context, id string) (*entity.Accountant, error) {
	query := `SELECT ` + accountantColumns + ` FROM accountants WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByUserID obtiene el perfil de contador de una cuenta.
func (r *AccountantRepo) GetByUserID(ctx context.Context, userID string) (*entity.Accountant, error) {
	query := `SELECT ` + accountantColumns + ` FROM accountants WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

func (r *AccountantRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Accountant, error) {
	var a entity.Accountant
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Address, &a.AdmissionDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get accountant: %w", err)
	}
	return &a, nil
}

// List lista perfiles de contador con paginación.
func (r *AccountantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Accountant, error) {
	query := `SELECT ` + accountantColumns + ` FROM accountants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accountants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Accountant
	for rows.Next() {
		var a entity.Accountant
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Address, &a.AdmissionDate, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan accountant: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
