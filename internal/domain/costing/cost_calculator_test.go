package costing_test

import (
	"testing"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/costing"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func material(id, price, size string, u entity.Unit) entity.RawMaterial {
	return entity.RawMaterial{ID: id, Name: id, Price: d(price), PackageSize: d(size), Unit: u}
}

func ingredient(id, qty string, u entity.Unit) entity.Ingredient {
	return entity.Ingredient{RawMaterialID: id, Quantity: d(qty), Unit: u}
}

func TestUnitPrice(t *testing.T) {
	p, err := costing.UnitPrice(material("harina", "12", "3", entity.UnitKilogram))
	require.NoError(t, err)
	assert.True(t, d("4").Equal(p))

	_, err = costing.UnitPrice(material("x", "1", "0", entity.UnitGram))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngredientCost_ConvierteAUnidadDeCompra(t *testing.T) {
	idx := costing.NewMaterialIndex([]entity.RawMaterial{material("harina", "10", "1", entity.UnitKilogram)})

	line := costing.IngredientCost(ingredient("harina", "500", entity.UnitGram), idx)

	require.True(t, line.Available())
	assert.True(t, d("0.5").Equal(line.Quantity))
	assert.True(t, d("5").Equal(line.Cost), "500 g a 10/kg = 5, obtenido %s", line.Cost)
	require.NotNil(t, line.Material)
	assert.Equal(t, "harina", line.Material.ID)
}

func TestIngredientCost_PaqueteNoUnitario(t *testing.T) {
	// leche: 3.60 por paquete de 1.5 l; 250 ml = 0.6
	idx := costing.NewMaterialIndex([]entity.RawMaterial{material("leche", "3.60", "1.5", entity.UnitLitre)})
	line := costing.IngredientCost(ingredient("leche", "250", entity.UnitMillilitre), idx)
	require.NoError(t, line.Err)
	assert.True(t, d("0.6").Equal(line.Cost), "obtenido %s", line.Cost)
}

func TestIngredientCost_ReferenciaColgante(t *testing.T) {
	line := costing.IngredientCost(ingredient("borrado", "1", entity.UnitGram), costing.MaterialIndex{})
	assert.False(t, line.Available())
	assert.ErrorIs(t, line.Err, domain.ErrUnresolvedMaterialReference)
	assert.Nil(t, line.Material)
	assert.True(t, line.Cost.IsZero())
}

func TestIngredientCost_UnidadIncompatible(t *testing.T) {
	idx := costing.NewMaterialIndex([]entity.RawMaterial{material("huevo", "6", "12", entity.UnitPiece)})
	line := costing.IngredientCost(ingredient("huevo", "50", entity.UnitGram), idx)
	assert.False(t, line.Available())
	assert.ErrorIs(t, line.Err, domain.ErrIncompatibleUnits)
}

func TestRecipeCost_Completa(t *testing.T) {
	idx := costing.NewMaterialIndex([]entity.RawMaterial{
		material("harina", "10", "1", entity.UnitKilogram),
		material("huevo", "6", "12", entity.UnitPiece),
	})
	r := entity.Recipe{
		Name:        "Masa",
		YieldAmount: d("5"),
		Ingredients: []entity.Ingredient{
			ingredient("harina", "2", entity.UnitKilogram), // 20
			ingredient("huevo", "10", entity.UnitPiece),    // 5
		},
	}

	b := costing.RecipeCost(r, idx)

	assert.True(t, b.Complete())
	assert.NoError(t, b.Err())
	assert.Zero(t, b.Unavailable)
	assert.True(t, d("25").Equal(b.Total), "total %s", b.Total)
	require.NotNil(t, b.PerYieldUnit)
	assert.True(t, d("5").Equal(*b.PerYieldUnit), "por unidad %s", b.PerYieldUnit)
	require.Len(t, b.Lines, 2)
	assert.Equal(t, "harina", b.Lines[0].Ingredient.RawMaterialID, "se conserva el orden de la receta")
}

func TestRecipeCost_IncompletaSeMarca(t *testing.T) {
	idx := costing.NewMaterialIndex([]entity.RawMaterial{material("harina", "10", "1", entity.UnitKilogram)})
	r := entity.Recipe{
		Name:        "Masa",
		YieldAmount: d("5"),
		Ingredients: []entity.Ingredient{
			ingredient("harina", "2", entity.UnitKilogram),
			ingredient("huevo", "10", entity.UnitPiece),
		},
	}

	b := costing.RecipeCost(r, idx)

	assert.False(t, b.Complete())
	assert.Equal(t, 1, b.Unavailable)
	assert.True(t, d("20").Equal(b.Total), "el total parcial solo suma las líneas disponibles")
	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIncompleteCost)
	assert.ErrorIs(t, err, domain.ErrUnresolvedMaterialReference)
	assert.False(t, b.Lines[1].Available())
}

func TestRecipeCost_RendimientoNoPositivo(t *testing.T) {
	b := costing.RecipeCost(entity.Recipe{Name: "x", YieldAmount: decimal.Zero}, costing.MaterialIndex{})
	assert.Nil(t, b.PerYieldUnit)
	assert.True(t, b.Complete())
	assert.True(t, b.Total.IsZero())
}

func TestRecipeCost_ReflejaPrecioActual(t *testing.T) {
	mats := []entity.RawMaterial{material("azucar", "4", "1", entity.UnitKilogram)}
	r := entity.Recipe{Name: "Almíbar", YieldAmount: d("1"), Ingredients: []entity.Ingredient{ingredient("azucar", "250", entity.UnitGram)}}

	before := costing.RecipeCost(r, costing.NewMaterialIndex(mats))
	mats[0].Price = d("8")
	after := costing.RecipeCost(r, costing.NewMaterialIndex(mats))

	assert.True(t, d("1").Equal(before.Total))
	assert.True(t, d("2").Equal(after.Total))
}
