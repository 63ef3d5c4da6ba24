// Package pdf genera la ficha imprimible de una receta con su costeo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la receta  │  Familia + Rendimiento       │
//	│  Descripción                                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Unidad | Materia prima | Costo                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Costo total / Costo por unidad de rendimiento      │
//	│  AVISO: ingredientes sin costo (si los hay)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PREPARACIÓN: pasos numerados                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/jhoicas/recetario/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 72, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 176, Green: 42, Blue: 32}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// RecipePDFGenerator genera fichas de receta usando Maroto v2.
type RecipePDFGenerator struct {
	money money.Formatter
}

// NewRecipePDFGenerator construye el generador con el formato de moneda de la app.
func NewRecipePDFGenerator(f money.Formatter) *RecipePDFGenerator {
	return &RecipePDFGenerator{money: f}
}

// GenerateRecipePDF genera el PDF y devuelve sus bytes.
func (g *RecipePDFGenerator) GenerateRecipePDF(_ context.Context, recipe *dto.RecipeDetailResponse) ([]byte, error) {
	if recipe == nil {
		return nil, fmt.Errorf("pdf: receta requerida")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(recipe.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(recipe))
	if recipe.Description != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(recipe.Description, props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.ingredientRows(recipe.Ingredients)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(recipe))
	if !recipe.Cost.Complete {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Costo incompleto: %d ingrediente(s) sin costo. El total solo incluye los ingredientes disponibles.",
				recipe.Cost.Unavailable), props.Text{Size: 8, Style: fontstyle.Bold, Color: colorWarn, Top: 2}),
		)))
	}

	if len(recipe.Instructions) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(instructionRows(recipe.Instructions)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre (izq) y familia + rendimiento (der).
func headerRow(r *dto.RecipeDetailResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Name, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(nonEmpty(r.FamilyName, "Sin familia"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
			text.New(fmt.Sprintf("Rinde: %s %s", r.YieldAmount.String(), r.YieldUnit), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Cant.", 2, align.Right),
		h("Unidad", 2, align.Center),
		h("Materia prima", 5, align.Left),
		h("Costo", 3, align.Right),
	)
}

// ingredientRows: una fila por ingrediente; los no disponibles muestran el motivo en lugar del costo.
func (g *RecipePDFGenerator) ingredientRows(lines []dto.IngredientLineResponse) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		cost := "no disponible"
		costColor := colorWarn
		if l.Cost != nil {
			cost = g.money.Format(*l.Cost)
			costColor = nil
		} else if l.Reason != "" {
			cost = l.Reason
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(nonEmpty(l.MaterialName, l.RawMaterialID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(cost, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: costColor})),
		))
	}
	return result
}

// totalsRow: costo total y por unidad de rendimiento alineados a la derecha.
func (g *RecipePDFGenerator) totalsRow(r *dto.RecipeDetailResponse) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: top, Color: colorPrimary, Right: 1})
	}
	per := g.money.FormatPtr(r.Cost.PerYieldUnit, "—")
	return row.New(16).Add(
		col.New(5),
		col.New(4).Add(
			label("Costo total:", 2),
			label(fmt.Sprintf("Costo por %s:", nonEmpty(r.YieldUnit, "unidad")), 9),
		),
		col.New(3).Add(
			value(g.money.Format(r.Cost.Total), 2),
			value(per, 9),
		),
	)
}

func instructionRows(steps []string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("PREPARACIÓN", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		)),
	}
	for i, s := range steps {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", i+1), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(11).Add(text.New(s, props.Text{Size: 9, Top: 1, Left: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
