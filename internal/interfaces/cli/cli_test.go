package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recetario/pkg/config"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func newTestSession(t *testing.T) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := config.Config{
		App:   config.AppConfig{Env: "test", Name: "recetario", Locale: "es", Currency: "USD"},
		Store: config.StoreConfig{Driver: config.DriverMemory},
	}
	s := NewSession(cfg, nil)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	s.Out, s.Err = out, errOut
	t.Cleanup(func() { _ = s.Close() })
	return s, out, errOut
}

func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "receta.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// seedPan crea harina (10 por kg) y una receta de 500 g con rendimiento 2. Devuelve los ids.
func seedPan(t *testing.T, s *Session) (materialID, recipeID string) {
	t.Helper()
	require.Equal(t, subcommands.ExitSuccess, run(t, &materialAddCmd{s: s},
		"-name", "Harina", "-price", "10", "-size", "1", "-unit", "kg"))
	app, err := s.App(context.Background())
	require.NoError(t, err)
	materialID = app.Store.RawMaterials()[0].ID

	file := writeJSON(t, `{
		"name": "Pan",
		"yieldAmount": "2",
		"yieldUnit": "panes",
		"ingredients": [{"rawMaterialId": "`+materialID+`", "quantity": "500", "unit": "g"}],
		"instructions": ["Amasar", "Hornear"]
	}`)
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeSaveCmd{s: s}, "-file", file))
	recipeID = app.Store.Recipes()[0].ID
	return materialID, recipeID
}

// ── Materias primas y recetas ─────────────────────────────────────────────────

func TestCLI_RecetaConCosto(t *testing.T) {
	s, out, _ := newTestSession(t)
	_, recipeID := seedPan(t, s)

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipesCmd{s: s}))
	assert.Contains(t, out.String(), "Pan")
	assert.Contains(t, out.String(), "$5.00")
	assert.Contains(t, out.String(), "$2.50")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeShowCmd{s: s}, "-id", recipeID))
	assert.Contains(t, out.String(), "Costo total: $5.00")
	assert.Contains(t, out.String(), "1. Amasar")
	assert.NotContains(t, out.String(), "Atención")
}

func TestCLI_MaterialEditRecosteaRecetas(t *testing.T) {
	s, out, _ := newTestSession(t)
	materialID, recipeID := seedPan(t, s)

	require.Equal(t, subcommands.ExitSuccess, run(t, &materialEditCmd{s: s}, "-id", materialID, "-price", "20"))

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeShowCmd{s: s}, "-id", recipeID))
	assert.Contains(t, out.String(), "Costo total: $10.00")
}

func TestCLI_MaterialRmDejaIngredienteSinCosto(t *testing.T) {
	s, out, _ := newTestSession(t)
	materialID, recipeID := seedPan(t, s)

	require.Equal(t, subcommands.ExitSuccess, run(t, &materialRmCmd{s: s}, "-id", materialID))

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeShowCmd{s: s}, "-id", recipeID))
	assert.Contains(t, out.String(), "no disponible (materia prima eliminada)")
	assert.Contains(t, out.String(), "Atención: 1 ingrediente(s) sin costo")
	assert.Contains(t, out.String(), "$0.00 *")
}

func TestCLI_RecipeRm(t *testing.T) {
	s, out, errOut := newTestSession(t)
	_, recipeID := seedPan(t, s)

	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeRmCmd{s: s}, "-id", recipeID))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipesCmd{s: s}))
	assert.Contains(t, out.String(), "No hay recetas.")

	assert.Equal(t, subcommands.ExitFailure, run(t, &recipeShowCmd{s: s}, "-id", recipeID))
	assert.Contains(t, errOut.String(), "Error:")
}

func TestCLI_ErroresDeUso(t *testing.T) {
	s, _, errOut := newTestSession(t)

	assert.Equal(t, subcommands.ExitUsageError, run(t, &materialAddCmd{s: s}, "-name", "Harina"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &materialAddCmd{s: s},
		"-name", "Harina", "-price", "diez", "-size", "1", "-unit", "kg"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &recipesCmd{s: s}, "-family", "x", "-unassigned"))
	assert.Equal(t, subcommands.ExitFailure, run(t, &materialAddCmd{s: s},
		"-name", "Harina", "-price", "10", "-size", "1", "-unit", "taza"))
	assert.Contains(t, errOut.String(), "Error:")
}

// ── Familias ──────────────────────────────────────────────────────────────────

func TestCLI_FamilyRmDesasignaRecetas(t *testing.T) {
	s, out, _ := newTestSession(t)
	materialID, _ := seedPan(t, s)

	file := writeJSON(t, `{
		"name": "Bizcocho",
		"newFamilyName": "Tortas",
		"yieldAmount": "1",
		"yieldUnit": "unidad",
		"ingredients": [{"rawMaterialId": "`+materialID+`", "quantity": "0.2", "unit": "kg"}]
	}`)
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipeSaveCmd{s: s}, "-file", file))

	app, err := s.App(context.Background())
	require.NoError(t, err)
	require.Len(t, app.Store.Families(), 1)
	familyID := app.Store.Families()[0].ID

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipesCmd{s: s}, "-family", familyID))
	assert.Contains(t, out.String(), "Bizcocho")
	assert.NotContains(t, out.String(), "Pan ")

	require.Equal(t, subcommands.ExitSuccess, run(t, &familyRenameCmd{s: s}, "-id", familyID, "-name", "Pasteles"))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &familiesCmd{s: s}))
	assert.Contains(t, out.String(), "Pasteles")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &familyRmCmd{s: s}, "-id", familyID))
	assert.Contains(t, out.String(), "1 receta(s) quedaron sin familia")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &recipesCmd{s: s}, "-unassigned"))
	assert.Contains(t, out.String(), "Bizcocho")
	assert.Contains(t, out.String(), "Pan")
}

// ── Exportaciones ─────────────────────────────────────────────────────────────

func TestCLI_Exportaciones(t *testing.T) {
	s, _, _ := newTestSession(t)
	_, recipeID := seedPan(t, s)
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "pan.pdf")
	require.Equal(t, subcommands.ExitSuccess, run(t, &exportPDFCmd{s: s}, "-id", recipeID, "-out", pdfPath))
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	xlsxPath := filepath.Join(dir, "costos.xlsx")
	require.Equal(t, subcommands.ExitSuccess, run(t, &exportXLSXCmd{s: s}, "-out", xlsxPath))
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// ── Navegación interactiva ────────────────────────────────────────────────────

func TestCLI_Browse(t *testing.T) {
	s, out, errOut := newTestSession(t)
	seedPan(t, s)

	s.In = strings.NewReader("1\nb\nm\nl\n9\nq\n")
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &browseCmd{s: s}))

	got := out.String()
	assert.Contains(t, got, "Costo total: $5.00")
	assert.Contains(t, got, "PRECIO/UNIDAD")
	assert.Contains(t, errOut.String(), `opción inválida "9"`)
}

func TestOpenKVStore_DriverDesconocido(t *testing.T) {
	_, err := OpenKVStore(context.Background(), config.Config{Store: config.StoreConfig{Driver: "redis"}})
	assert.Error(t, err)
}
