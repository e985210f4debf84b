// Package stats contiene los casos de uso de los endpoints de estadísticas:
// agregaciones de solo lectura, sin efectos secundarios.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// OverviewUseCase construye el resumen agregado del panel admin y la vista
// de cartera del contador.
//
// Fuente de datos: StatsRepository (consultas read-only).
type OverviewUseCase struct {
	statsRepo repository.StatsRepository
	reports   ReportGenerator
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(statsRepo repository.StatsRepository, reports ReportGenerator) *OverviewUseCase {
	return &OverviewUseCase{statsRepo: statsRepo, reports: reports}
}

// OverviewReport genera el PDF del resumen admin del año pedido.
func (uc *OverviewUseCase) OverviewReport(ctx context.Context, year int) ([]byte, error) {
	overview, err := uc.Overview(ctx, year)
	if err != nil {
		return nil, err
	}
	return uc.reports.OverviewReport(ctx, overview)
}

// Overview agrega usuarios por rol, empresas y documentos por estado y la
// serie mensual de documentos del año pedido (vista admin, sin restricción).
//
// Las cuatro consultas van en paralelo; la serie mensual siempre tiene 12
// posiciones, con cero en los meses sin datos.
func (uc *OverviewUseCase) Overview(ctx context.Context, year int) (*dto.OverviewDTO, error) {
	out, err := uc.build(ctx, year, "", true)
	if err != nil {
		return nil, fmt.Errorf("stats: overview: %w", err)
	}
	return out, nil
}

// AccountantOverview es la misma agregación restringida a la cartera del
// contador autenticado.
func (uc *OverviewUseCase) AccountantOverview(ctx context.Context, id auth.Identity, year int) (*dto.OverviewDTO, error) {
	if !id.IsAccountant() || id.ProfileID == "" {
		return nil, domain.ErrForbidden
	}
	out, err := uc.build(ctx, year, id.ProfileID, false)
	if err != nil {
		return nil, fmt.Errorf("stats: cartera del contador: %w", err)
	}
	return out, nil
}

func (uc *OverviewUseCase) build(ctx context.Context, year int, accountantID string, withUsers bool) (*dto.OverviewDTO, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	type mapResult struct {
		m   map[string]int
		err error
	}
	type monthsResult struct {
		rows []repository.MonthCount
		err  error
	}

	usersCh := make(chan mapResult, 1)
	companiesCh := make(chan mapResult, 1)
	documentsCh := make(chan mapResult, 1)
	monthsCh := make(chan monthsResult, 1)

	if withUsers {
		go func() {
			m, err := uc.statsRepo.CountUsersByRole(ctx)
			usersCh <- mapResult{m, err}
		}()
	} else {
		usersCh <- mapResult{}
	}
	go func() {
		m, err := uc.statsRepo.CountCompaniesByStatus(ctx, accountantID)
		companiesCh <- mapResult{m, err}
	}()
	go func() {
		m, err := uc.statsRepo.CountDocumentsByStatus(ctx, accountantID)
		documentsCh <- mapResult{m, err}
	}()
	go func() {
		rows, err := uc.statsRepo.DocumentsPerMonth(ctx, year, accountantID)
		monthsCh <- monthsResult{rows, err}
	}()

	users := <-usersCh
	companies := <-companiesCh
	documents := <-documentsCh
	months := <-monthsCh

	for _, err := range []error{users.err, companies.err, documents.err, months.err} {
		if err != nil {
			return nil, err
		}
	}

	total := 0
	for _, n := range documents.m {
		total += n
	}

	return &dto.OverviewDTO{
		Year:              year,
		UsersByRole:       users.m,
		CompaniesByStatus: companies.m,
		DocumentsByStatus: documents.m,
		TotalDocuments:    total,
		MonthlyDocuments:  fillMonths(months.rows),
	}, nil
}

// fillMonths vuelca las filas (solo meses con datos) en un arreglo de 12
// posiciones indexado enero..diciembre.
func fillMonths(rows []repository.MonthCount) [12]int {
	var out [12]int
	for _, r := range rows {
		if r.Month >= 1 && r.Month <= 12 {
			out[r.Month-1] = r.Count
		}
	}
	return out
}
