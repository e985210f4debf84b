package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los endpoints de estadísticas.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountUsersByRole agrupa cuentas por rol.
func (r *StatsRepo) CountUsersByRole(ctx context.Context) (map[string]int, error) {
	const query = `SELECT role, COUNT(*) FROM users GROUP BY role`
	return r.countGroups(ctx, query)
}

// CountCompaniesByStatus agrupa empresas por estado; accountantID vacío = todas.
func (r *StatsRepo) CountCompaniesByStatus(ctx context.Context, accountantID string) (map[string]int, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM companies
		WHERE ($1 = '' OR accountant_id::TEXT = $1)
		GROUP BY status`
	return r.countGroups(ctx, query, accountantID)
}

// CountDocumentsByStatus agrupa documentos por estado; accountantID vacío = todos.
func (r *StatsRepo) CountDocumentsByStatus(ctx context.Context, accountantID string) (map[string]int, error) {
	const query = `
		SELECT d.status, COUNT(*)
		FROM documents d
		JOIN companies c ON c.id = d.company_id
		WHERE ($1 = '' OR c.accountant_id::TEXT = $1)
		GROUP BY d.status`
	return r.countGroups(ctx, query, accountantID)
}

// DocumentsPerMonth agrupa documentos por mes de subida dentro del año.
// Devuelve solo los meses con datos; el caso de uso rellena los 12.
func (r *StatsRepo) DocumentsPerMonth(ctx context.Context, year int, accountantID string) ([]repository.MonthCount, error) {
	const query = `
		SELECT EXTRACT(MONTH FROM d.upload_date)::INT AS month, COUNT(*)
		FROM documents d
		JOIN companies c ON c.id = d.company_id
		WHERE EXTRACT(YEAR FROM d.upload_date) = $1
		  AND ($2 = '' OR c.accountant_id::TEXT = $2)
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, year, accountantID)
	if err != nil {
		return nil, fmt.Errorf("stats.DocumentsPerMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthCount
	for rows.Next() {
		var mc repository.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("stats.DocumentsPerMonth scan: %w", err)
		}
		results = append(results, mc)
	}
	return results, rows.Err()
}

func (r *StatsRepo) countGroups(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats.countGroups: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("stats.countGroups scan: %w", err)
		}
		out[key] = n
	}
	return out, rows.Err()
}
