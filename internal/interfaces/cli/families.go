package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type familiesCmd struct {
	s *Session
}

func (*familiesCmd) Name() string     { return "families" }
func (*familiesCmd) Synopsis() string { return "lista las familias de recetas" }
func (*familiesCmd) Usage() string {
	return `families

  Lista las familias ordenadas por nombre con la cantidad de recetas de cada una.
`
}
func (*familiesCmd) SetFlags(*flag.FlagSet) {}

func (c *familiesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	items := app.Families.List().Items
	if len(items) == 0 {
		fmt.Fprintln(c.s.Out, "No hay familias.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(c.s.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tRECETAS")
	for _, f := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\n", f.ID, f.Name, f.RecipeCount)
	}
	_ = w.Flush()
	return subcommands.ExitSuccess
}

type familyAddCmd struct {
	s    *Session
	name string
}

func (*familyAddCmd) Name() string     { return "family-add" }
func (*familyAddCmd) Synopsis() string { return "crea una familia de recetas" }
func (*familyAddCmd) Usage() string {
	return `family-add -name <nombre>
`
}

func (c *familyAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "nombre de la familia (requerido)")
}

func (c *familyAddCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return c.s.usage("-name es requerido")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	f, err := app.Families.Create(ctx, c.name)
	if err != nil {
		return c.s.fail("crear familia: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Familia %q creada con id %s\n", f.Name, f.ID)
	return subcommands.ExitSuccess
}

type familyRenameCmd struct {
	s    *Session
	id   string
	name string
}

func (*familyRenameCmd) Name() string     { return "family-rename" }
func (*familyRenameCmd) Synopsis() string { return "cambia el nombre de una familia" }
func (*familyRenameCmd) Usage() string {
	return `family-rename -id <id> -name <nombre>
`
}

func (c *familyRenameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la familia (requerido)")
	f.StringVar(&c.name, "name", "", "nuevo nombre (requerido)")
}

func (c *familyRenameCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		return c.s.usage("-id y -name son requeridos")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	f, err := app.Families.Rename(ctx, c.id, c.name)
	if err != nil {
		return c.s.fail("renombrar familia: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Familia %s renombrada a %q\n", f.ID, f.Name)
	return subcommands.ExitSuccess
}

type familyRmCmd struct {
	s  *Session
	id string
}

func (*familyRmCmd) Name() string     { return "family-rm" }
func (*familyRmCmd) Synopsis() string { return "elimina una familia" }
func (*familyRmCmd) Usage() string {
	return `family-rm -id <id>

  Elimina la familia. Sus recetas no se eliminan: quedan sin familia.
`
}

func (c *familyRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la familia (requerido)")
}

func (c *familyRmCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	res, err := app.Families.Delete(ctx, c.id)
	if err != nil {
		return c.s.fail("eliminar familia: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Familia %s eliminada; %d receta(s) quedaron sin familia\n", res.ID, res.UnassignedCount)
	return subcommands.ExitSuccess
}
