package repository

import "context"

// MonthCount filas de una agregación por mes (solo meses con datos).
type MonthCount struct {
	Month int // 1..12
	Count int
}

// StatsRepository consultas de solo lectura para los endpoints de estadísticas.
// accountantID vacío = sin restricción de cartera (vista admin).
type StatsRepository interface {
	CountUsersByRole(ctx context.Context) (map[string]int, error)
	CountCompaniesByStatus(ctx context.Context, accountantID string) (map[string]int, error)
	CountDocumentsByStatus(ctx context.Context, accountantID string) (map[string]int, error)
	DocumentsPerMonth(ctx context.Context, year int, accountantID string) ([]MonthCount, error)
}
