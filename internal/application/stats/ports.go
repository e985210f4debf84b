package stats

import (
	"context"

	"github.com/docscompta/docscompta-api/internal/application/dto"
)

// ReportGenerator produce la representación PDF del resumen agregado.
// La implementación vive en infrastructure.
type ReportGenerator interface {
	OverviewReport(ctx context.Context, overview *dto.OverviewDTO) ([]byte, error)
}
