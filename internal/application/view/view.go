// Package view modela la navegación de la presentación como una máquina de estados
// sobre un variante etiquetado: List, Detail(receta), Form(receta o nueva) y Materials.
package view

import "fmt"

// Kind etiqueta del estado.
type Kind int

const (
	KindList Kind = iota
	KindDetail
	KindForm
	KindMaterials
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindDetail:
		return "detail"
	case KindForm:
		return "form"
	case KindMaterials:
		return "materials"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State estado de la vista. Solo lo implementan los tipos de este paquete.
type State interface {
	Kind() Kind
	isState()
}

// List listado de recetas.
type List struct{}

// Detail detalle de una receta.
type Detail struct{ RecipeID string }

// Form formulario de receta; RecipeID vacío es una receta nueva.
type Form struct{ RecipeID string }

// Materials gestión de materias primas.
type Materials struct{}

func (List) Kind() Kind      { return KindList }
func (Detail) Kind() Kind    { return KindDetail }
func (Form) Kind() Kind      { return KindForm }
func (Materials) Kind() Kind { return KindMaterials }

func (List) isState()      {}
func (Detail) isState()    {}
func (Form) isState()      {}
func (Materials) isState() {}

// IsNew indica si el formulario crea una receta.
func (f Form) IsNew() bool { return f.RecipeID == "" }

// Machine estado actual y transiciones disparadas por acciones del usuario.
type Machine struct {
	current State
}

// NewMachine arranca en el listado de recetas.
func NewMachine() *Machine {
	return &Machine{current: List{}}
}

// Current estado actual. Un Detail sin receta se resuelve como List.
func (m *Machine) Current() State {
	if d, ok := m.current.(Detail); ok && d.RecipeID == "" {
		return List{}
	}
	return m.current
}

// SelectRecipe abre el detalle de la receta.
func (m *Machine) SelectRecipe(id string) State {
	m.current = Detail{RecipeID: id}
	return m.Current()
}

// NewRecipe abre el formulario vacío.
func (m *Machine) NewRecipe() State {
	m.current = Form{}
	return m.current
}

// EditRecipe abre el formulario con la receta.
func (m *Machine) EditRecipe(id string) State {
	m.current = Form{RecipeID: id}
	return m.current
}

// RecipeSaved vuelve al listado tras guardar.
func (m *Machine) RecipeSaved() State {
	m.current = List{}
	return m.current
}

// Back vuelve al listado desde el detalle o el formulario (cancelar).
func (m *Machine) Back() State {
	m.current = List{}
	return m.current
}

// Navigate cambia de sección desde la barra de navegación: solo List o Materials.
func (m *Machine) Navigate(k Kind) (State, error) {
	switch k {
	case KindList:
		m.current = List{}
	case KindMaterials:
		m.current = Materials{}
	default:
		return m.Current(), fmt.Errorf("no se puede navegar directamente a %s", k)
	}
	return m.current, nil
}
