package entity_test

import (
	"testing"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	cases := map[string]entity.Unit{
		"g": entity.UnitGram, "KG": entity.UnitKilogram, " litro ": entity.UnitLitre,
		"ml": entity.UnitMillilitre, "unidad": entity.UnitPiece, "liter": entity.UnitLitre,
	}
	for in, want := range cases {
		got, err := entity.ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := entity.ParseUnit("taza")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRawMaterial_Validate(t *testing.T) {
	ok := entity.RawMaterial{Name: "Harina", Price: decimal.NewFromInt(10), PackageSize: decimal.NewFromInt(1), Unit: entity.UnitKilogram}
	require.NoError(t, ok.Validate())

	zeroSize := ok
	zeroSize.PackageSize = decimal.Zero
	assert.ErrorIs(t, zeroSize.Validate(), domain.ErrInvalidInput)

	negPrice := ok
	negPrice.Price = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negPrice.Validate(), domain.ErrInvalidInput)

	badUnit := ok
	badUnit.Unit = "oz"
	assert.ErrorIs(t, badUnit.Validate(), domain.ErrInvalidInput)

	free := ok
	free.Price = decimal.Zero
	assert.NoError(t, free.Validate(), "precio cero es válido")
}

func TestRecipe_Validate(t *testing.T) {
	r := entity.Recipe{
		Name:        "Pan",
		YieldAmount: decimal.NewFromInt(2),
		YieldUnit:   "panes",
		Ingredients: []entity.Ingredient{{RawMaterialID: "m1", Quantity: decimal.NewFromInt(500), Unit: entity.UnitGram}},
	}
	require.NoError(t, r.Validate())

	noYield := r.Clone()
	noYield.YieldAmount = decimal.Zero
	assert.ErrorIs(t, noYield.Validate(), domain.ErrInvalidInput)

	badQty := r.Clone()
	badQty.Ingredients[0].Quantity = decimal.Zero
	assert.ErrorIs(t, badQty.Validate(), domain.ErrInvalidInput)
	assert.True(t, r.Ingredients[0].Quantity.Equal(decimal.NewFromInt(500)), "Clone no comparte ingredientes")
}
