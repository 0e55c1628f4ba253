// Package pdf implementa el estado de cuenta del cliente en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del cliente + empresa │ N° cliente + fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Email / Teléfono / Cliente desde                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS: # | Producto/Servicio | Fecha | Estado | Monto     │
//	│  SUBTOTALES por estado + TOTAL                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INTERACCIONES: Fecha | Tipo | Resumen (más reciente arriba)│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/report"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.CustomerReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.CustomerReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateCustomerReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCustomerReport(_ context.Context, data *report.CustomerReportData) ([]byte, error) {
	customer := data.Customer

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta - "+customer.Name, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(&customer.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Ventas
	m.AddRows(sectionTitleRow(fmt.Sprintf("VENTAS (%d)", len(customer.Sales))))
	if len(customer.Sales) == 0 {
		m.AddRows(emptyRow("Sin ventas registradas."))
	} else {
		m.AddRows(salesHeaderRow())
		m.AddRows(salesRows(customer.Sales)...)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(subtotalRows(data)...)

	// Interacciones
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow(fmt.Sprintf("INTERACCIONES (%d)", len(customer.Interactions))))
	if len(customer.Interactions) == 0 {
		m.AddRows(emptyRow("Sin interacciones registradas."))
	} else {
		m.AddRows(interactionsHeaderRow())
		m.AddRows(interactionRows(customer.Interactions)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + empresa (izq) y N° de cliente + fecha de emisión (der).
func headerRow(data *report.CustomerReportData) core.Row {
	c := data.Customer
	return row.New(18).Add(
		col.New(7).Add(
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Company, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cliente N° %d", c.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+data.GeneratedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func contactRow(c *entity.Customer) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE CONTACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Cliente desde: %s",
				nonEmpty(c.Email, "-"),
				nonEmpty(c.Phone, "-"),
				c.CreatedAt.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func salesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto / Servicio", 5, align.Left),
		h("Fecha", 2, align.Center),
		h("Estado", 2, align.Center),
		h("Monto", 2, align.Right),
	)
}

// salesRows: una fila por venta, en el orden recibido (id ascendente).
func salesRows(sales []*entity.Sale) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.ID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(s.ProductService, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(s.Date.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(statusLabel(s.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatAmount(s.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// subtotalRows: un renglón por estado y el total general resaltado.
func subtotalRows(data *report.CustomerReportData) []core.Row {
	rows := make([]core.Row, 0, len(data.Subtotals)+1)
	for _, st := range data.Subtotals {
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(4).Add(text.New(fmt.Sprintf("%s (%d):", statusLabel(st.Status), st.Count), props.Text{
				Size: 8, Align: align.Right, Right: 2, Color: colorGray,
			})),
			col.New(2).Add(text.New("$"+formatAmount(st.Amount), props.Text{
				Size: 8, Align: align.Right, Right: 1,
			})),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(6),
		col.New(4).Add(text.New("TOTAL VENTAS:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+formatAmount(data.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	))
	return rows
}

func interactionsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Center),
		h("Tipo", 2, align.Center),
		h("Resumen", 8, align.Left),
	)
}

func interactionRows(list []*entity.Interaction) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, i := range list {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(i.Date.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(typeLabel(i.Type), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(i.Summary, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s entity.SaleStatus) string {
	switch s {
	case entity.SaleStatusPending:
		return "Pendiente"
	case entity.SaleStatusCompleted:
		return "Completada"
	case entity.SaleStatusCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

func typeLabel(t entity.InteractionType) string {
	switch t {
	case entity.InteractionTypeCall:
		return "Llamada"
	case entity.InteractionTypeEmail:
		return "Email"
	case entity.InteractionTypeMeeting:
		return "Reunión"
	default:
		return string(t)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount formatea con puntos de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50"
func formatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(entity.AmountScale)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + formatMoney(intPart) + "," + frac
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
