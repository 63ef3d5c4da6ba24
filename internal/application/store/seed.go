package store

import (
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IDs fijos de los datos de ejemplo, para que las recetas de ejemplo resuelvan sus ingredientes.
const (
	seedFamilyPanes  = "fam-panes"
	seedFamilyTortas = "fam-tortas"

	seedHarina      = "mat-harina"
	seedAzucar      = "mat-azucar"
	seedMantequilla = "mat-mantequilla"
	seedHuevos      = "mat-huevos"
	seedLeche       = "mat-leche"
	seedLevadura    = "mat-levadura"
	seedSal         = "mat-sal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedFamilies familias iniciales.
func SeedFamilies() []entity.RecipeFamily {
	return []entity.RecipeFamily{
		{ID: seedFamilyPanes, Name: "Panes"},
		{ID: seedFamilyTortas, Name: "Tortas"},
	}
}

// SeedMaterials materias primas iniciales.
func SeedMaterials() []entity.RawMaterial {
	return []entity.RawMaterial{
		{ID: seedHarina, Name: "Harina de trigo", Price: dec("1.20"), PackageSize: dec("1"), Unit: entity.UnitKilogram},
		{ID: seedAzucar, Name: "Azúcar", Price: dec("1.50"), PackageSize: dec("1"), Unit: entity.UnitKilogram},
		{ID: seedMantequilla, Name: "Mantequilla", Price: dec("2.80"), PackageSize: dec("250"), Unit: entity.UnitGram},
		{ID: seedHuevos, Name: "Huevos", Price: dec("3.00"), PackageSize: dec("12"), Unit: entity.UnitPiece},
		{ID: seedLeche, Name: "Leche entera", Price: dec("1.10"), PackageSize: dec("1"), Unit: entity.UnitLitre},
		{ID: seedLevadura, Name: "Levadura seca", Price: dec("0.90"), PackageSize: dec("20"), Unit: entity.UnitGram},
		{ID: seedSal, Name: "Sal", Price: dec("0.60"), PackageSize: dec("1"), Unit: entity.UnitKilogram},
	}
}

// SeedRecipes recetas iniciales.
func SeedRecipes() []entity.Recipe {
	return []entity.Recipe{
		{
			ID:          "rec-pan-de-molde",
			Name:        "Pan de molde",
			Description: "Pan blanco de miga suave para sándwiches.",
			FamilyID:    seedFamilyPanes,
			YieldAmount: dec("2"),
			YieldUnit:   "panes",
			Ingredients: []entity.Ingredient{
				{RawMaterialID: seedHarina, Quantity: dec("1000"), Unit: entity.UnitGram},
				{RawMaterialID: seedLeche, Quantity: dec("600"), Unit: entity.UnitMillilitre},
				{RawMaterialID: seedMantequilla, Quantity: dec("50"), Unit: entity.UnitGram},
				{RawMaterialID: seedLevadura, Quantity: dec("10"), Unit: entity.UnitGram},
				{RawMaterialID: seedSal, Quantity: dec("20"), Unit: entity.UnitGram},
			},
			Instructions: []string{
				"Mezclar la harina con la levadura y la sal.",
				"Agregar la leche tibia y la mantequilla; amasar 10 minutos.",
				"Dejar levar una hora, formar y hornear 35 minutos a 180 °C.",
			},
		},
		{
			ID:          "rec-bizcocho",
			Name:        "Bizcocho de vainilla",
			Description: "Bizcocho esponjoso básico.",
			FamilyID:    seedFamilyTortas,
			YieldAmount: dec("8"),
			YieldUnit:   "porciones",
			Ingredients: []entity.Ingredient{
				{RawMaterialID: seedHarina, Quantity: dec("250"), Unit: entity.UnitGram},
				{RawMaterialID: seedAzucar, Quantity: dec("200"), Unit: entity.UnitGram},
				{RawMaterialID: seedHuevos, Quantity: dec("4"), Unit: entity.UnitPiece},
				{RawMaterialID: seedMantequilla, Quantity: dec("0.1"), Unit: entity.UnitKilogram},
				{RawMaterialID: seedLeche, Quantity: dec("0.12"), Unit: entity.UnitLitre},
			},
			Instructions: []string{
				"Batir los huevos con el azúcar hasta blanquear.",
				"Incorporar la mantequilla derretida y la leche.",
				"Agregar la harina tamizada y hornear 40 minutos a 175 °C.",
			},
		},
	}
}
