package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/recetario/internal/application/dto"
)

type materialsCmd struct {
	s *Session
}

func (*materialsCmd) Name() string     { return "materials" }
func (*materialsCmd) Synopsis() string { return "lista las materias primas con su precio por unidad" }
func (*materialsCmd) Usage() string {
	return `materials

  Lista las materias primas ordenadas por nombre.
`
}
func (*materialsCmd) SetFlags(*flag.FlagSet) {}

func (c *materialsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	printMaterials(c.s, app, app.Materials.List().Items)
	return subcommands.ExitSuccess
}

func printMaterials(s *Session, app *App, items []dto.RawMaterialResponse) {
	if len(items) == 0 {
		fmt.Fprintln(s.Out, "No hay materias primas.")
		return
	}
	w := tabwriter.NewWriter(s.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tPAQUETE\tPRECIO/UNIDAD")
	for _, m := range items {
		unitPrice := "no disponible (" + m.Reason + ")"
		if m.UnitPrice != nil {
			unitPrice = app.Money.Format(*m.UnitPrice) + "/" + m.Unit
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\n",
			m.ID, m.Name, app.Money.Format(m.Price), m.PackageSize.String(), m.Unit, unitPrice)
	}
	_ = w.Flush()
}

type materialAddCmd struct {
	s     *Session
	name  string
	price string
	size  string
	unit  string
}

func (*materialAddCmd) Name() string     { return "material-add" }
func (*materialAddCmd) Synopsis() string { return "agrega una materia prima" }
func (*materialAddCmd) Usage() string {
	return `material-add -name <nombre> -price <precio> -size <tamaño> -unit <g|kg|ml|l|unit>

  Agrega una materia prima al catálogo:
  - price: precio del paquete (ej. "10.50").
  - size: cantidad que trae el paquete, expresada en unit.
`
}

func (c *materialAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "nombre de la materia prima (requerido)")
	f.StringVar(&c.price, "price", "", "precio del paquete (requerido)")
	f.StringVar(&c.size, "size", "", "tamaño del paquete (requerido)")
	f.StringVar(&c.unit, "unit", "", "unidad del paquete (requerido)")
}

func (c *materialAddCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" || c.size == "" || c.unit == "" {
		return c.s.usage("-name, -price, -size y -unit son requeridos")
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return c.s.usage(fmt.Sprintf("precio inválido %q", c.price))
	}
	size, err := decimal.NewFromString(c.size)
	if err != nil {
		return c.s.usage(fmt.Sprintf("tamaño inválido %q", c.size))
	}

	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	m, err := app.Materials.Create(ctx, dto.CreateRawMaterialRequest{
		Name:        c.name,
		Price:       price,
		PackageSize: size,
		Unit:        c.unit,
	})
	if err != nil {
		return c.s.fail("agregar materia prima: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Materia prima %q creada con id %s\n", m.Name, m.ID)
	return subcommands.ExitSuccess
}

type materialEditCmd struct {
	s     *Session
	id    string
	name  string
	price string
	size  string
	unit  string
}

func (*materialEditCmd) Name() string     { return "material-edit" }
func (*materialEditCmd) Synopsis() string { return "modifica una materia prima" }
func (*materialEditCmd) Usage() string {
	return `material-edit -id <id> [-name <nombre>] [-price <precio>] [-size <tamaño>] [-unit <unidad>]

  Modifica solo los campos indicados. Las recetas que la usan se recostean al mostrarse.
`
}

func (c *materialEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la materia prima (requerido)")
	f.StringVar(&c.name, "name", "", "nuevo nombre")
	f.StringVar(&c.price, "price", "", "nuevo precio del paquete")
	f.StringVar(&c.size, "size", "", "nuevo tamaño del paquete")
	f.StringVar(&c.unit, "unit", "", "nueva unidad")
}

func (c *materialEditCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	var in dto.UpdateRawMaterialRequest
	if c.name != "" {
		in.Name = &c.name
	}
	if c.unit != "" {
		in.Unit = &c.unit
	}
	if c.price != "" {
		v, err := decimal.NewFromString(c.price)
		if err != nil {
			return c.s.usage(fmt.Sprintf("precio inválido %q", c.price))
		}
		in.Price = &v
	}
	if c.size != "" {
		v, err := decimal.NewFromString(c.size)
		if err != nil {
			return c.s.usage(fmt.Sprintf("tamaño inválido %q", c.size))
		}
		in.PackageSize = &v
	}

	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	m, err := app.Materials.Update(ctx, c.id, in)
	if err != nil {
		return c.s.fail("modificar materia prima: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Materia prima %q actualizada\n", m.Name)
	return subcommands.ExitSuccess
}

type materialRmCmd struct {
	s  *Session
	id string
}

func (*materialRmCmd) Name() string     { return "material-rm" }
func (*materialRmCmd) Synopsis() string { return "elimina una materia prima" }
func (*materialRmCmd) Usage() string {
	return `material-rm -id <id>

  Elimina la materia prima. Las recetas que la referencian no se modifican:
  sus ingredientes quedan sin costo hasta que se editen.
`
}

func (c *materialRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la materia prima (requerido)")
}

func (c *materialRmCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	if err := app.Materials.Delete(ctx, c.id); err != nil {
		return c.s.fail("eliminar materia prima: %v", err)
	}
	fmt.Fprintf(c.s.Out, "Materia prima %s eliminada\n", c.id)
	return subcommands.ExitSuccess
}
