package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, user_id, name, tax_id, address, phone, contact_email, status,
	accountant_id, profile_picture, activation_date, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste un perfil de empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, user_id, name, tax_id, address, phone, contact_email, status,
			accountant_id, profile_picture, activation_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.TaxID, c.Address, c.Phone, c.ContactEmail, c.Status,
		c.AccountantID, c.ProfilePicture, c.ActivationDate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil de empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByUserID obtiene el perfil de empresa de una cuenta.
func (r *CompanyRepo) GetByUserID(ctx context.Context, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.UserID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.ContactEmail, &c.Status,
		&c.AccountantID, &c.ProfilePicture, &c.ActivationDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List lista todas las empresas (vista admin) con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(ctx, query, limit, offset)
}

// ListByAccountant lista la cartera de un contador con paginación.
func (r *CompanyRepo) ListByAccountant(ctx context.Context, accountantID string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies WHERE accountant_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(ctx, query, accountantID, limit, offset)
}

func (r *CompanyRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.ContactEmail, &c.Status,
			&c.AccountantID, &c.ProfilePicture, &c.ActivationDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// AssignAccountant cambia la asignación de contador; nil desasigna.
func (r *CompanyRepo) AssignAccountant(ctx context.Context, companyID string, accountantID *string, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET accountant_id = $2, updated_at = $3 WHERE id = $1`,
		companyID, accountantID, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("assign accountant: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado y estampa/limpia activation_date en una sola sentencia.
func (r *CompanyRepo) UpdateStatus(ctx context.Context, companyID, status string, activationDate *time.Time, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET status = $2, activation_date = $3, updated_at = $4 WHERE id = $1`,
		companyID, status, activationDate, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	return nil
}

// UpdateProfilePicture persiste la ruta de la foto de perfil.
func (r *CompanyRepo) UpdateProfilePicture(ctx context.Context, companyID, path string, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET profile_picture = $2, updated_at = $3 WHERE id = $1`,
		companyID, path, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile picture: %w", err)
	}
	return nil
}
