package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/jhoicas/recetario/internal/application/view"
)

type browseCmd struct {
	s *Session
}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "navega el recetario de forma interactiva" }
func (*browseCmd) Usage() string {
	return `browse

  Sesión interactiva. En el listado: <n> abre la receta n, "n" nueva receta,
  "m" materias primas, "q" salir. En el detalle: "e" editar, "b" volver.
  En el formulario se pide la ruta de un JSON de receta (vacío cancela).
`
}
func (*browseCmd) SetFlags(*flag.FlagSet) {}

func (c *browseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	b := &browser{s: c.s, app: app, m: view.NewMachine(), in: bufio.NewScanner(c.s.In)}
	if err := b.run(ctx); err != nil {
		return c.s.fail("%v", err)
	}
	return subcommands.ExitSuccess
}

type browser struct {
	s   *Session
	app *App
	m   *view.Machine
	in  *bufio.Scanner

	listed []string // ids del último listado, en orden
}

func (b *browser) run(ctx context.Context) error {
	for {
		b.render()
		fmt.Fprint(b.s.Out, "> ")
		if !b.in.Scan() {
			return b.in.Err()
		}
		cmd := strings.TrimSpace(b.in.Text())
		if cmd == "q" {
			return nil
		}
		if err := b.handle(ctx, cmd); err != nil {
			fmt.Fprintln(b.s.Err, "Error:", err)
		}
	}
}

func (b *browser) render() {
	switch st := b.m.Current().(type) {
	case view.List:
		items := b.app.Recipes.List().Items
		b.listed = b.listed[:0]
		for _, r := range items {
			b.listed = append(b.listed, r.ID)
		}
		printRecipes(b.s, b.app, items)
	case view.Detail:
		r, err := b.app.Recipes.GetByID(st.RecipeID)
		if err != nil {
			fmt.Fprintln(b.s.Err, "Error:", err)
			b.m.Back()
			b.render()
			return
		}
		printRecipeDetail(b.s, b.app, r)
	case view.Form:
		if st.IsNew() {
			fmt.Fprintln(b.s.Out, "Nueva receta: ruta del JSON (vacío cancela)")
		} else {
			fmt.Fprintf(b.s.Out, "Editar receta %s: ruta del JSON (vacío cancela)\n", st.RecipeID)
		}
	case view.Materials:
		printMaterials(b.s, b.app, b.app.Materials.List().Items)
	}
}

func (b *browser) handle(ctx context.Context, cmd string) error {
	switch st := b.m.Current().(type) {
	case view.List:
		switch cmd {
		case "n":
			b.m.NewRecipe()
			return nil
		case "m":
			_, err := b.m.Navigate(view.KindMaterials)
			return err
		}
		n, err := strconv.Atoi(cmd)
		if err != nil || n < 1 || n > len(b.listed) {
			return fmt.Errorf("opción inválida %q", cmd)
		}
		b.m.SelectRecipe(b.listed[n-1])
	case view.Detail:
		switch cmd {
		case "e":
			b.m.EditRecipe(st.RecipeID)
		case "b":
			b.m.Back()
		default:
			return fmt.Errorf("opción inválida %q", cmd)
		}
	case view.Form:
		if cmd == "" {
			b.m.Back()
			return nil
		}
		in, err := readRecipeRequest(b.s, cmd)
		if err != nil {
			return err
		}
		if !st.IsNew() {
			in.ID = st.RecipeID
		}
		r, err := b.app.Recipes.Save(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(b.s.Out, "Receta %q guardada\n", r.Name)
		b.m.RecipeSaved()
	case view.Materials:
		switch cmd {
		case "l", "b":
			_, err := b.m.Navigate(view.KindList)
			return err
		default:
			return fmt.Errorf("opción inválida %q", cmd)
		}
	}
	return nil
}
