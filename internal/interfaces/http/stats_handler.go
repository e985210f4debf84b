package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/docscompta/docscompta-api/internal/application/stats"
)

// StatsHandler expone los agregados del panel y el reporte PDF.
type StatsHandler struct {
	uc *stats.OverviewUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.OverviewUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen global del sistema (solo admin)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año; por defecto el actual"
// @Success      200  {object}  dto.OverviewDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stats/overview [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext(), yearFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AccountantOverview godoc
// @Summary      Resumen de la cartera del contador autenticado
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año; por defecto el actual"
// @Success      200  {object}  dto.OverviewDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stats/accountant [get]
func (h *StatsHandler) AccountantOverview(c *fiber.Ctx) error {
	out, err := h.uc.AccountantOverview(c.UserContext(), CurrentIdentity(c), yearFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OverviewReport godoc
// @Summary      Resumen global en PDF (solo admin)
// @Tags         stats
// @Security     Bearer
// @Produce      application/pdf
// @Param        year  query  int  false  "Año; por defecto el actual"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stats/overview/report [get]
func (h *StatsHandler) OverviewReport(c *fiber.Ctx) error {
	pdf, err := h.uc.OverviewReport(c.UserContext(), yearFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="overview.pdf"`)
	return c.Send(pdf)
}

func yearFromQuery(c *fiber.Ctx) int {
	year := c.QueryInt("year")
	if year <= 0 {
		year = time.Now().Year()
	}
	return year
}
