package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/recetario/internal/infrastructure/excel"
)

type exportPDFCmd struct {
	s   *Session
	id  string
	out string
}

func (*exportPDFCmd) Name() string     { return "export-pdf" }
func (*exportPDFCmd) Synopsis() string { return "genera la ficha PDF de una receta" }
func (*exportPDFCmd) Usage() string {
	return `export-pdf -id <id> [-out <archivo.pdf>]

  Genera la ficha imprimible con ingredientes, costos y preparación.
  Por defecto escribe <id>.pdf en el directorio actual.
`
}

func (c *exportPDFCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id de la receta (requerido)")
	f.StringVar(&c.out, "out", "", "archivo de salida")
}

func (c *exportPDFCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.s.usage("-id es requerido")
	}
	out := c.out
	if out == "" {
		out = c.id + ".pdf"
	}
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	r, err := app.Recipes.GetByID(c.id)
	if err != nil {
		return c.s.fail("receta %s: %v", c.id, err)
	}
	data, err := app.PDF.GenerateRecipePDF(ctx, r)
	if err != nil {
		return c.s.fail("generar PDF: %v", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return c.s.fail("escribir %s: %v", out, err)
	}
	fmt.Fprintf(c.s.Out, "Ficha de %q escrita en %s\n", r.Name, out)
	return subcommands.ExitSuccess
}

type exportXLSXCmd struct {
	s   *Session
	out string
}

func (*exportXLSXCmd) Name() string     { return "export-xlsx" }
func (*exportXLSXCmd) Synopsis() string { return "genera el reporte de costos en Excel" }
func (*exportXLSXCmd) Usage() string {
	return `export-xlsx [-out <archivo.xlsx>]

  Escribe un libro con las hojas "Materias" y "Recetas".
`
}

func (c *exportXLSXCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "costos.xlsx", "archivo de salida")
}

func (c *exportXLSXCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.s.App(ctx)
	if err != nil {
		return c.s.fail("abrir recetario: %v", err)
	}
	data, err := excel.WriteCostReport(excel.CostReport{
		Materials: app.Materials.List().Items,
		Recipes:   app.Recipes.List().Items,
	})
	if err != nil {
		return c.s.fail("generar reporte: %v", err)
	}
	if err := os.WriteFile(c.out, data, 0o644); err != nil {
		return c.s.fail("escribir %s: %v", c.out, err)
	}
	fmt.Fprintf(c.s.Out, "Reporte de costos escrito en %s\n", c.out)
	return subcommands.ExitSuccess
}
