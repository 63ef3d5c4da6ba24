package view_test

import (
	"testing"

	"github.com/jhoicas/recetario/internal/application/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Transiciones(t *testing.T) {
	m := view.NewMachine()
	assert.Equal(t, view.List{}, m.Current())

	assert.Equal(t, view.Detail{RecipeID: "r1"}, m.SelectRecipe("r1"))
	assert.Equal(t, view.Form{RecipeID: "r1"}, m.EditRecipe("r1"))
	assert.False(t, m.Current().(view.Form).IsNew())
	assert.Equal(t, view.List{}, m.RecipeSaved())

	form := m.NewRecipe().(view.Form)
	assert.True(t, form.IsNew())
	assert.Equal(t, view.List{}, m.Back())
}

func TestMachine_Navegacion(t *testing.T) {
	m := view.NewMachine()
	s, err := m.Navigate(view.KindMaterials)
	require.NoError(t, err)
	assert.Equal(t, view.KindMaterials, s.Kind())

	m.SelectRecipe("r1")
	_, err = m.Navigate(view.KindForm)
	assert.Error(t, err)
	assert.Equal(t, view.KindDetail, m.Current().Kind(), "una navegación inválida no cambia el estado")
}

func TestMachine_DetalleSinRecetaEsListado(t *testing.T) {
	m := view.NewMachine()
	assert.Equal(t, view.KindList, m.SelectRecipe("").Kind())
	assert.Equal(t, "materials", view.KindMaterials.String())
}
