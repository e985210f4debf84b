// Package pdf implementa la representación gráfica del resumen de
// estadísticas que descarga el administrador.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: DocsCompta + año del informe                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  USUARIOS: conteo por rol                                    │
//	│  EMPRESAS: conteo por estado                                 │
//	│  DOCUMENTOS: conteo por estado + total                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: mes | documentos subidos (12 filas)                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/stats"
)

var _ stats.ReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MarotoReportGenerator implementa stats.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// OverviewReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) OverviewReport(_ context.Context, overview *dto.OverviewDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("DocsCompta — Informe anual", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(overview.Year))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Usuarios por rol"))
	m.AddRows(countRows(overview.UsersByRole)...)

	m.AddRows(sectionTitle("Empresas por estado"))
	m.AddRows(countRows(overview.CompaniesByStatus)...)

	m.AddRows(sectionTitle("Documentos por estado"))
	m.AddRows(countRows(overview.DocumentsByStatus)...)
	m.AddRows(labelValueRow("Total de documentos", fmt.Sprintf("%d", overview.TotalDocuments), fontstyle.Bold))

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle(fmt.Sprintf("Documentos subidos por mes (%d)", overview.Year)))
	for i, n := range overview.MonthlyDocuments {
		m.AddRows(labelValueRow(monthNames[i], fmt.Sprintf("%d", n), fontstyle.Normal))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(year int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("DocsCompta", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de actividad", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Año %d", year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

// countRows vuelca un mapa clave→conteo en filas ordenadas por clave para que
// el PDF sea determinista.
func countRows(counts map[string]int) []core.Row {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, labelValueRow(k, fmt.Sprintf("%d", counts[k]), fontstyle.Normal))
	}
	return rows
}

func labelValueRow(label, value string, style fontstyle.Type) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Style: style})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Style: style, Align: align.Right})),
	)
}
