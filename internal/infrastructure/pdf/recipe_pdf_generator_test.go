package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/jhoicas/recetario/internal/infrastructure/pdf"
	"github.com/jhoicas/recetario/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecipePDF(t *testing.T) {
	cost := decimal.RequireFromString("5")
	per := decimal.RequireFromString("2.5")
	recipe := &dto.RecipeDetailResponse{
		RecipeSummaryResponse: dto.RecipeSummaryResponse{
			ID: "r1", Name: "Pan de molde", FamilyName: "Panes",
			YieldAmount: decimal.NewFromInt(2), YieldUnit: "panes",
			Cost: dto.CostSummary{Total: cost, PerYieldUnit: &per, Complete: false, Unavailable: 1},
		},
		Description: "Pan blanco",
		Ingredients: []dto.IngredientLineResponse{
			{RawMaterialID: "m1", MaterialName: "Harina", Quantity: decimal.NewFromInt(500), Unit: "g", Cost: &cost},
			{RawMaterialID: "m2", Quantity: decimal.NewFromInt(1), Unit: "unit", Reason: "materia prima eliminada"},
		},
		Instructions: []string{"Amasar", "Hornear"},
	}

	out, err := pdf.NewRecipePDFGenerator(money.NewFormatter("EUR")).GenerateRecipePDF(context.Background(), recipe)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateRecipePDF_SinReceta(t *testing.T) {
	_, err := pdf.NewRecipePDFGenerator(money.NewFormatter("EUR")).GenerateRecipePDF(context.Background(), nil)
	assert.Error(t, err)
}
