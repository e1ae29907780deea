// Package pdf genera el reporte de estadísticas del panel de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  USUARIOS: total / activos / inactivos                       │
//	│  PRODUCTOS: total / disponibles / no disponibles             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Productos | % del total                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 70, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.StatsReportRenderer = (*StatsReportGenerator)(nil)

// StatsReportGenerator implementa ports.StatsReportRenderer usando Maroto v2.
type StatsReportGenerator struct {
	appName string
}

// NewStatsReportGenerator construye el generador.
func NewStatsReportGenerator(appName string) *StatsReportGenerator {
	return &StatsReportGenerator{appName: appName}
}

// RenderStats genera el PDF y devuelve sus bytes.
func (g *StatsReportGenerator) RenderStats(_ context.Context, st entity.Stats, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Estadísticas del marketplace", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow("USUARIOS", []kv{
		{"Total", st.Users.Total},
		{"Activos", st.Users.Active},
		{"Inactivos", st.Users.Inactive},
	}))
	m.AddRows(summaryRow("PRODUCTOS", []kv{
		{"Total", st.Products.Total},
		{"Disponibles", st.Products.Available},
		{"No disponibles", st.Products.Unavailable},
	}))
	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(categoryRows(st.Products)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

type kv struct {
	label string
	value int
}

func headerRow(appName string, at time.Time) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New("Estadísticas del marketplace", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 2,
			}),
			text.New(appName, props.Text{Size: 9, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: título de sección + tres indicadores.
func summaryRow(title string, items []kv) core.Row {
	cols := []core.Col{
		col.New(3).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4,
		})),
	}
	for _, it := range items {
		cols = append(cols, col.New(3).Add(
			text.New(it.label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(it.value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6,
			}),
		))
	}
	return row.New(16).Add(cols...)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 2, Right: 2,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 6, align.Left),
		h("Productos", 3, align.Right),
		h("% del total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// categoryRows: una fila por categoría en el orden recibido (mayor a menor).
func categoryRows(st entity.ProductStats) []core.Row {
	if len(st.ByCategory) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin productos publicados", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 2}),
		))}
	}
	rows := make([]core.Row, 0, len(st.ByCategory))
	for _, c := range st.ByCategory {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(c.Category, props.Text{Size: 9, Top: 1.5, Left: 2})),
			col.New(3).Add(text.New(strconv.Itoa(c.Count), props.Text{Size: 9, Align: align.Right, Top: 1.5, Right: 2})),
			col.New(3).Add(text.New(percent(c.Count, st.Total), props.Text{Size: 9, Align: align.Right, Top: 1.5, Right: 2})),
		))
	}
	return rows
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
