package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jhoicas/recetario/internal/application/dto"
)

type recipesCmd struct {
	s          *Session
	family     string
	unassigned bool
}

func (*recipesCmd) Name() string     { return "recipes" }
func (*recipesCmd) Synopsis() string { return "lista las recetas con su costo" }
func (*recipesCmd) Usage() string {
	return `recipes [-family <id> | -unassigned]

  Lista las recetas ordenadas por nombre con su costo total y por unidad de rendimiento.
  Un costo marcado con "*" es parcial: algún ingrediente no tiene costo.
`
}

func (c *recipesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.family, "family", "", "solo las recetas de esta familia")
	f.BoolVar(&c.unassigned, "unassigned", false, "solo las recetas sin familia")
}

func (c *recipesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.family != "" && c.unassigned {
		return c.s.usage("-family y -unassigned son excluyentes")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	var list *dto.RecipeListResponse
	switch {
	case c.family != "":
		if _, err := app.Families.Get(c.family); err != nil {
			return c.s.fail("familia %s: %v", c.family, err)
		}
		list = app.Recipes.ListByFamily(c.family)
	case c.unassigned:
		list = app.Recipes.ListByFamily("")
	default:
		list = app.Recipes.List()
	}
	printRecipes(c.s, app, list.Items)
	return subcommands.ExitSuccess
}

func printRecipes(s *Session, app *App, items []dto.RecipeSummaryResponse) {
	if len(items) == 0 {
		fmt.Fprintln(s.Out, "No hay recetas.")
		return
	}
	w := tabwriter.NewWriter(s.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNOMBRE\tFAMILIA\tCOSTO\tPOR UNIDAD")
	for i, r := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, r.ID, r.Name, orDash(r.FamilyName), costText(app, r.Cost), perYieldText(app, r))
	}
	_ = w.Flush()
}

func printRecipeDetail(s *Session, app *App, r *dto.RecipeDetailResponse) {
	fmt.Fprintf(s.Out, "%s\n", r.Name)
	fmt.Fprintf(s.Out, "Familia: %s\n", orDash(r.FamilyName))
	fmt.Fprintf(s.Out, "Rendimiento: %s %s\n", r.YieldAmount.String(), r.YieldUnit)
	if r.Description != "" {
		fmt.Fprintf(s.Out, "\n%s\n", r.Description)
	}

	fmt.Fprintln(s.Out)
	w := tabwriter.NewWriter(s.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CANTIDAD\tMATERIA PRIMA\tCOSTO")
	for _, l := range r.Ingredients {
		cost := app.Money.FormatPtr(l.Cost, "")
		if l.Cost == nil {
			cost = "no disponible (" + l.Reason + ")"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", l.Quantity.String(), l.Unit, orDash(l.MaterialName), cost)
	}
	_ = w.Flush()

	fmt.Fprintf(s.Out, "\nCosto total: %s\n", costText(app, r.Cost))
	fmt.Fprintf(s.Out, "Costo por %s: %s\n", r.YieldUnit, perYieldText(app, r.RecipeSummaryResponse))
	if !r.Cost.Complete {
		fmt.Fprintf(s.Out, "Atención: %d ingrediente(s) sin costo, el total es parcial.\n", r.Cost.Unavailable)
	}

	if len(r.Instructions) > 0 {
		fmt.Fprintln(s.Out, "\nPreparación:")
		for i, step := range r.Instructions {
			fmt.Fprintf(s.Out, "  %d. %s\n", i+1, step)
		}
	}
}

func costText(app *App, c dto.CostSummary) string {
	out := app.Money.Format(c.Total)
	if !c.Complete {
		out += " *"
	}
	return out
}

func perYieldText(app *App, r dto.RecipeSummaryResponse) string {
	return app.Money.FormatPtr(r.Cost.PerYieldUnit, "-")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

type recipeShowCmd struct {
	s  *Session
	id string
}

func (*recipeShowCmd) Name() string     { return "recipe-show" }
func (*recipeShowCmd) Synopsis() string { return "muestra una receta con su desglose de costos" }
func (*recipeShowCmd) Usage() string {
	return `recipe-show -id <id>
`
}

func (c *recipeShowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la receta (requerido)")
}

func (c *recipeShowCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	r, err := app.Recipes.GetByID(c.id)
	if err != nil {
		return c.s.fail("receta %s: %v", c.id, err)
	}
	printRecipeDetail(c.s, app, r)
	return subcommands.ExitSuccess
}

type recipeSaveCmd struct {
	s    *Session
	file string
}

func (*recipeSaveCmd) Name() string     { return "recipe-save" }
func (*recipeSaveCmd) Synopsis() string { return "crea o reemplaza una receta desde un archivo JSON" }
func (*recipeSaveCmd) Usage() string {
	return `recipe-save -file <receta.json | ->

  Lee la receta en JSON ("-" para la entrada estándar). Sin "id" se crea una receta nueva;
  con un id existente se reemplaza. "newFamilyName" crea la familia y la asigna.

  {
    "name": "Pan de molde",
    "familyId": "fam-panes",
    "yieldAmount": "2",
    "yieldUnit": "panes",
    "ingredients": [{"rawMaterialId": "mat-harina", "quantity": "500", "unit": "g"}],
    "instructions": ["Mezclar", "Hornear"]
  }
`
}

func (c *recipeSaveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "archivo JSON de la receta (requerido)")
}

func (c *recipeSaveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return c.s.usage("-file es requerido")
	}
	in, err := readRecipeRequest(c.s, c.file)
	if err != nil {
		return c.s.fail("%v", err)
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	r, err := app.Recipes.Save(ctx, in)
	if err != nil {
		return c.s.fail("guardar receta: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Receta %q guardada con id %s\n", r.Name, r.ID)
	return subcommands.ExitSuccess
}

func readRecipeRequest(s *Session, file string) (dto.SaveRecipeRequest, error) {
	var in dto.SaveRecipeRequest
	var r io.Reader = s.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return in, fmt.Errorf("abrir %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("leer receta %s: %w", file, err)
	}
	return in, nil
}

type recipeRmCmd struct {
	s  *Session
	id string
}

func (*recipeRmCmd) Name() string     { return "recipe-rm" }
func (*recipeRmCmd) Synopsis() string { return "elimina una receta" }
func (*recipeRmCmd) Usage() string {
	return `recipe-rm -id <id>
`
}

func (c *recipeRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la receta (requerido)")
}

func (c *recipeRmCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	if err := app.Recipes.Delete(ctx, c.id); err != nil {
		return c.s.fail("eliminar receta: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Receta %s eliminada\n", c.id)
	return subcommands.ExitSuccess
}
