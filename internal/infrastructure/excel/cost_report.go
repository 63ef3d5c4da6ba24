// Package excel exporta el catálogo de materias primas y el costeo de las recetas a un libro .xlsx.
package excel

import (
	"bytes"
	"fmt"

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

const (
	sheetMaterials = "Materias"
	sheetRecipes   = "Recetas"
)

// CostReport datos del reporte.
type CostReport struct {
	Materials []dto.RawMaterialResponse
	Recipes   []dto.RecipeSummaryResponse
}

// WriteCostReport genera el libro y devuelve sus bytes.
// Los importes se escriben como números; las recetas incompletas quedan marcadas en su propia columna.
func WriteCostReport(r CostReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetMaterials); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetRecipes); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}

	header := []interface{}{"id", "nombre", "precio", "tamaño_paquete", "unidad", "precio_unitario"}
	rows := make([][]interface{}, 0, len(r.Materials))
	for _, m := range r.Materials {
		var unitPrice interface{}
		if m.UnitPrice != nil {
			unitPrice = m.UnitPrice.InexactFloat64()
		}
		rows = append(rows, []interface{}{
			m.ID,
			m.Name,
			m.Price.InexactFloat64(),
			m.PackageSize.InexactFloat64(),
			m.Unit,
			unitPrice,
		})
	}
	if err := writeSheet(f, sheetMaterials, header, rows); err != nil {
		return nil, err
	}

	header = []interface{}{"id", "nombre", "familia", "rendimiento", "unidad_rendimiento", "costo_total", "costo_por_unidad", "completo", "ingredientes_sin_costo"}
	rows = make([][]interface{}, 0, len(r.Recipes))
	for _, rec := range r.Recipes {
		var per interface{}
		if rec.Cost.PerYieldUnit != nil {
			per = rec.Cost.PerYieldUnit.InexactFloat64()
		}
		complete := "sí"
		if !rec.Cost.Complete {
			complete = "no"
		}
		rows = append(rows, []interface{}{
			rec.ID,
			rec.Name,
			rec.FamilyName,
			rec.YieldAmount.InexactFloat64(),
			rec.YieldUnit,
			rec.Cost.Total.InexactFloat64(),
			per,
			complete,
			rec.Cost.Unavailable,
		})
	}
	if err := writeSheet(f, sheetRecipes, header, rows); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel: encabezado %s: %w", sheet, err)
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel: celda %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("excel: fila %s: %w", sheet, err)
		}
	}
	return nil
}
