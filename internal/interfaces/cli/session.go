// Package cli implementa los comandos de la herramienta recetario sobre google/subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/text/language"

	"github.com/jhoicas/recetario/internal/application/store"
	"github.com/jhoicas/recetario/internal/application/usecase"
	"github.com/jhoicas/recetario/internal/domain/repository"
	"github.com/jhoicas/recetario/internal/infrastructure/filestore"
	"github.com/jhoicas/recetario/internal/infrastructure/memory"
	"github.com/jhoicas/recetario/internal/infrastructure/pdf"
	"github.com/jhoicas/recetario/internal/infrastructure/postgres"
	"github.com/jhoicas/recetario/internal/infrastructure/sqlite"
	"github.com/jhoicas/recetario/pkg/config"
	"github.com/jhoicas/recetario/pkg/logger"
	"github.com/jhoicas/recetario/pkg/money"
)

// App dependencias ya cableadas para una ejecución.
type App struct {
	Store     *store.Store
	Materials *usecase.MaterialUseCase
	Recipes   *usecase.RecipeUseCase
	Families  *usecase.FamilyUseCase
	PDF       *pdf.RecipePDFGenerator
	Money     money.Formatter

	kv repository.KVStore
}

// Session abre la App una sola vez por proceso, cuando el primer comando la necesita.
type Session struct {
	cfg config.Config
	log *logger.Logger

	In  io.Reader
	Out io.Writer
	Err io.Writer

	app *App
}

// NewSession crea la sesión con la entrada/salida estándar.
func NewSession(cfg config.Config, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{cfg: cfg, log: log, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// App abre la persistencia y carga las colecciones.
func (s *Session) App(ctx context.Context) (*App, error) {
	if s.app != nil {
		return s.app, nil
	}
	kv, err := OpenKVStore(ctx, s.cfg)
	if err != nil {
		return nil, err
	}
	st := store.New(kv,
		store.WithLogger(s.log),
		store.WithLocale(language.Make(s.cfg.App.Locale)),
		store.WithSeedData(s.cfg.Store.SeedDefaults),
	)
	if err := st.Load(ctx); err != nil {
		_ = kv.Close()
		return nil, err
	}
	f := money.NewFormatter(s.cfg.App.Currency)
	s.app = &App{
		Store:     st,
		Materials: usecase.NewMaterialUseCase(st),
		Recipes:   usecase.NewRecipeUseCase(st, s.log),
		Families:  usecase.NewFamilyUseCase(st),
		PDF:       pdf.NewRecipePDFGenerator(f),
		Money:     f,
		kv:        kv,
	}
	s.log.Debug().Str("driver", s.cfg.Store.Driver).Msg("sesión abierta")
	return s.app, nil
}

// Close libera la persistencia si se llegó a abrir.
func (s *Session) Close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.kv.Close()
	s.app = nil
	return err
}

// OpenKVStore construye el adaptador de persistencia según STORE_DRIVER.
func OpenKVStore(ctx context.Context, cfg config.Config) (repository.KVStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return memory.NewKVStore(), nil
	case config.DriverFile:
		kv, err := filestore.NewKVStore(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.DriverSQLite:
		kv, err := sqlite.NewKVStore(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		kv, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return kv, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}

// Register registra todos los comandos agrupados como los muestra "help".
func Register(c *subcommands.Commander, s *Session) {
	c.Register(&materialsCmd{s: s}, "materias primas")
	c.Register(&materialAddCmd{s: s}, "materias primas")
	c.Register(&materialEditCmd{s: s}, "materias primas")
	c.Register(&materialRmCmd{s: s}, "materias primas")

	c.Register(&recipesCmd{s: s}, "recetas")
	c.Register(&recipeShowCmd{s: s}, "recetas")
	c.Register(&recipeSaveCmd{s: s}, "recetas")
	c.Register(&recipeRmCmd{s: s}, "recetas")

	c.Register(&familiesCmd{s: s}, "familias")
	c.Register(&familyAddCmd{s: s}, "familias")
	c.Register(&familyRenameCmd{s: s}, "familias")
	c.Register(&familyRmCmd{s: s}, "familias")

	c.Register(&exportPDFCmd{s: s}, "exportar")
	c.Register(&exportXLSXCmd{s: s}, "exportar")

	c.Register(&browseCmd{s: s}, "")
}

// fail escribe el error en Err y devuelve ExitFailure.
func (s *Session) fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(s.Err, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

func (s *Session) usage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(s.Err, "Error:", msg)
	return subcommands.ExitUsageError
}
