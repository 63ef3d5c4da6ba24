// Package store es el dueño de las tres colecciones (materias primas, recetas y familias)
// y de las reglas de integridad que disparan las ediciones estructurales.
//
// Ciclo de vida: New una vez por sesión, Load al inicio y un guardado explícito después de
// cada mutación. Cada colección se persiste completa bajo su propia clave.
//
// Integridad:
//   - DeleteFamily limpia FamilyID en todas las recetas que la referencian y escribe ambas
//     colecciones en un solo lote (atómico en los adaptadores con transacciones).
//   - DeleteRawMaterial no toca las recetas: las referencias colgantes se conservan y el
//     motor de costos las informa como no disponibles.
//   - Un FamilyID desconocido se trata al leer como "sin familia".
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/costing"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/jhoicas/recetario/internal/domain/repository"
	"github.com/jhoicas/recetario/pkg/logger"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store colecciones en memoria respaldadas por un repository.KVStore.
// Pensado para una única sesión de usuario; el mutex solo protege lecturas concurrentes accidentales.
type Store struct {
	mu       sync.Mutex
	kv       repository.KVStore
	log      *logger.Logger
	collator *collate.Collator
	seed     bool
	newID    func() string

	materials []entity.RawMaterial
	recipes   []entity.Recipe
	families  []entity.RecipeFamily
}

// Option configura el Store.
type Option func(*Store)

// WithLogger asigna el logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithLocale idioma usado para ordenar los listados por nombre.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) { s.collator = collate.New(tag, collate.IgnoreCase) }
}

// WithSeedData indica si Load debe poblar datos de ejemplo cuando una colección no existe.
func WithSeedData(enabled bool) Option {
	return func(s *Store) { s.seed = enabled }
}

// WithIDGenerator reemplaza el generador de IDs (por defecto UUID v4).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New construye el Store. Las colecciones quedan vacías hasta llamar a Load.
func New(kv repository.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		log:       logger.Nop(),
		collator:  collate.New(language.Spanish, collate.IgnoreCase),
		newID:     func() string { return uuid.New().String() },
		materials: []entity.RawMaterial{},
		recipes:   []entity.Recipe{},
		families:  []entity.RecipeFamily{},
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.Named("store")
	return s
}

// Load lee las tres colecciones. Una clave ausente o con contenido ilegible se reemplaza por
// el valor por defecto (datos de ejemplo si WithSeedData, si no vacío). Un error de E/S se devuelve.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seedM []entity.RawMaterial
	var seedR []entity.Recipe
	var seedF []entity.RecipeFamily
	if s.seed {
		seedM, seedR, seedF = SeedMaterials(), SeedRecipes(), SeedFamilies()
	}

	materials, err := loadCollection(ctx, s, repository.KeyRawMaterials, seedM)
	if err != nil {
		return err
	}
	recipes, err := loadCollection(ctx, s, repository.KeyRecipes, seedR)
	if err != nil {
		return err
	}
	families, err := loadCollection(ctx, s, repository.KeyFamilies, seedF)
	if err != nil {
		return err
	}
	for _, m := range materials {
		if err := m.Validate(); err != nil {
			s.log.Warn().Err(err).Str("material_id", m.ID).Msg("materia prima guardada inválida, su costo queda no disponible")
		}
	}
	s.materials, s.recipes, s.families = materials, recipes, families
	s.log.Debug().
		Int("materials", len(materials)).
		Int("recipes", len(recipes)).
		Int("families", len(families)).
		Msg("colecciones cargadas")
	return nil
}

func loadCollection[T any](ctx context.Context, s *Store, key string, def []T) ([]T, error) {
	raw, found, err := s.kv.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cargar %s: %w", key, err)
	}
	if !found {
		return orEmpty(def), nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("colección ilegible, se usa el valor por defecto")
		return orEmpty(def), nil
	}
	return orEmpty(out), nil
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

func encode[T any](key string, items []T) (repository.Entry, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return repository.Entry{}, fmt.Errorf("serializar %s: %w", key, err)
	}
	return repository.Entry{Key: key, Value: data}, nil
}

func save[T any](ctx context.Context, kv repository.KVStore, key string, items []T) error {
	e, err := encode(key, items)
	if err != nil {
		return err
	}
	if err := kv.Save(ctx, e.Key, e.Value); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

// sortByName ordena por nombre con la colación del idioma configurado (vista derivada, no se persiste).
func sortByName[T any](c *collate.Collator, items []T, name func(T) string) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return c.CompareString(name(a), name(b))
	})
	return out
}

// ── Materias primas ──────────────────────────────────────────────────────────

// RawMaterials devuelve las materias primas ordenadas por nombre.
func (s *Store) RawMaterials() []entity.RawMaterial {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortByName(s.collator, s.materials, func(m entity.RawMaterial) string { return m.Name })
}

// RawMaterial obtiene una materia prima por ID.
func (s *Store) RawMaterial(id string) (entity.RawMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := lo.Find(s.materials, func(m entity.RawMaterial) bool { return m.ID == id })
	if !ok {
		return entity.RawMaterial{}, fmt.Errorf("materia prima %s: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// MaterialIndex índice de las materias primas actuales para el motor de costos.
func (s *Store) MaterialIndex() costing.MaterialIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return costing.NewMaterialIndex(s.materials)
}

// AddRawMaterial valida y agrega una materia prima con un ID nuevo.
func (s *Store) AddRawMaterial(ctx context.Context, m entity.RawMaterial) (entity.RawMaterial, error) {
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return entity.RawMaterial{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.freshID(func(id string) bool {
		return lo.ContainsBy(s.materials, func(x entity.RawMaterial) bool { return x.ID == id })
	})
	next := append(slices.Clone(s.materials), m)
	if err := save(ctx, s.kv, repository.KeyRawMaterials, next); err != nil {
		return entity.RawMaterial{}, err
	}
	s.materials = next
	return m, nil
}

// UpdateRawMaterial reemplaza la materia prima con el mismo ID. Las recetas no se tocan:
// su costo se recalcula con el nuevo precio en la siguiente lectura.
func (s *Store) UpdateRawMaterial(ctx context.Context, m entity.RawMaterial) error {
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, idx, ok := lo.FindIndexOf(s.materials, func(x entity.RawMaterial) bool { return x.ID == m.ID })
	if !ok {
		return fmt.Errorf("materia prima %s: %w", m.ID, domain.ErrNotFound)
	}
	next := slices.Clone(s.materials)
	next[idx] = m
	if err := save(ctx, s.kv, repository.KeyRawMaterials, next); err != nil {
		return err
	}
	s.materials = next
	return nil
}

// DeleteRawMaterial elimina la materia prima. No hay cascada hacia las recetas.
func (s *Store) DeleteRawMaterial(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !lo.ContainsBy(s.materials, func(x entity.RawMaterial) bool { return x.ID == id }) {
		return fmt.Errorf("materia prima %s: %w", id, domain.ErrNotFound)
	}
	next := lo.Reject(s.materials, func(x entity.RawMaterial, _ int) bool { return x.ID == id })
	if err := save(ctx, s.kv, repository.KeyRawMaterials, next); err != nil {
		return err
	}
	s.materials = next
	dangling := lo.CountBy(s.recipes, func(r entity.Recipe) bool { return usesMaterial(r, id) })
	if dangling > 0 {
		s.log.Info().Str("material_id", id).Int("recipes", dangling).Msg("materia prima eliminada con recetas que la referencian")
	}
	return nil
}

func usesMaterial(r entity.Recipe, materialID string) bool {
	return lo.ContainsBy(r.Ingredients, func(in entity.Ingredient) bool { return in.RawMaterialID == materialID })
}

// ── Recetas ──────────────────────────────────────────────────────────────────

// Recipes devuelve las recetas ordenadas por nombre.
func (s *Store) Recipes() []entity.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecipes(sortByName(s.collator, s.recipes, func(r entity.Recipe) string { return r.Name }))
}

// RecipesByFamily recetas de una familia, ordenadas por nombre. familyID vacío devuelve las
// recetas sin familia, incluidas las que apuntan a una familia inexistente.
func (s *Store) RecipesByFamily(familyID string) []entity.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := lo.Filter(s.recipes, func(r entity.Recipe, _ int) bool {
		return s.effectiveFamilyID(r) == familyID
	})
	return cloneRecipes(sortByName(s.collator, filtered, func(r entity.Recipe) string { return r.Name }))
}

// Recipe obtiene una receta por ID.
func (s *Store) Recipe(id string) (entity.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := lo.Find(s.recipes, func(r entity.Recipe) bool { return r.ID == id })
	if !ok {
		return entity.Recipe{}, fmt.Errorf("receta %s: %w", id, domain.ErrNotFound)
	}
	return r.Clone(), nil
}

// UpsertRecipe inserta la receta si su ID no existe (o está vacío) y si no la reemplaza en su lugar.
// No valida que las materias primas existan.
func (s *Store) UpsertRecipe(ctx context.Context, r entity.Recipe) (entity.Recipe, error) {
	r = r.Clone()
	r.Name = strings.TrimSpace(r.Name)
	if err := r.Validate(); err != nil {
		return entity.Recipe{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, next := s.upserted(r)
	if err := save(ctx, s.kv, repository.KeyRecipes, next); err != nil {
		return entity.Recipe{}, err
	}
	s.recipes = next
	return r.Clone(), nil
}

// UpsertRecipeInNewFamily crea la familia name, se la asigna a r y guarda la receta. Ambas
// colecciones se escriben en un solo lote: si falla, no queda ni la familia ni la receta.
func (s *Store) UpsertRecipeInNewFamily(ctx context.Context, r entity.Recipe, name string) (entity.Recipe, entity.RecipeFamily, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Recipe{}, entity.RecipeFamily{}, fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	r = r.Clone()
	r.Name = strings.TrimSpace(r.Name)
	if err := r.Validate(); err != nil {
		return entity.Recipe{}, entity.RecipeFamily{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.newFamily(name)
	nextFamilies := append(slices.Clone(s.families), f)
	r.FamilyID = f.ID
	r, nextRecipes := s.upserted(r)

	famEntry, err := encode(repository.KeyFamilies, nextFamilies)
	if err != nil {
		return entity.Recipe{}, entity.RecipeFamily{}, err
	}
	recEntry, err := encode(repository.KeyRecipes, nextRecipes)
	if err != nil {
		return entity.Recipe{}, entity.RecipeFamily{}, err
	}
	if err := s.kv.SaveBatch(ctx, []repository.Entry{famEntry, recEntry}); err != nil {
		return entity.Recipe{}, entity.RecipeFamily{}, fmt.Errorf("guardar receta en familia %q: %w", name, err)
	}
	s.families, s.recipes = nextFamilies, nextRecipes
	return r.Clone(), f, nil
}

// upserted devuelve r (con ID asignado si venía vacío) y la colección resultante, sin persistir.
func (s *Store) upserted(r entity.Recipe) (entity.Recipe, []entity.Recipe) {
	next := slices.Clone(s.recipes)
	_, idx, ok := lo.FindIndexOf(next, func(x entity.Recipe) bool { return r.ID != "" && x.ID == r.ID })
	if ok {
		next[idx] = r
		return r, next
	}
	if r.ID == "" {
		r.ID = s.freshID(func(id string) bool {
			return lo.ContainsBy(s.recipes, func(x entity.Recipe) bool { return x.ID == id })
		})
	}
	return r, append(next, r)
}

// DeleteRecipe elimina una receta.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !lo.ContainsBy(s.recipes, func(x entity.Recipe) bool { return x.ID == id }) {
		return fmt.Errorf("receta %s: %w", id, domain.ErrNotFound)
	}
	next := lo.Reject(s.recipes, func(x entity.Recipe, _ int) bool { return x.ID == id })
	if err := save(ctx, s.kv, repository.KeyRecipes, next); err != nil {
		return err
	}
	s.recipes = next
	return nil
}

func cloneRecipes(in []entity.Recipe) []entity.Recipe {
	return lo.Map(in, func(r entity.Recipe, _ int) entity.Recipe { return r.Clone() })
}

// ── Familias ─────────────────────────────────────────────────────────────────

// Families devuelve las familias ordenadas por nombre.
func (s *Store) Families() []entity.RecipeFamily {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortByName(s.collator, s.families, func(f entity.RecipeFamily) string { return f.Name })
}

// Family obtiene una familia por ID.
func (s *Store) Family(id string) (entity.RecipeFamily, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.findFamily(id)
	if !ok {
		return entity.RecipeFamily{}, fmt.Errorf("familia %s: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

// FamilyOf familia de la receta; ok es false si no tiene o si su FamilyID ya no existe.
func (s *Store) FamilyOf(r entity.Recipe) (entity.RecipeFamily, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !r.HasFamily() {
		return entity.RecipeFamily{}, false
	}
	return s.findFamily(r.FamilyID)
}

// RecipeCount cantidad de recetas asignadas a la familia.
func (s *Store) RecipeCount(familyID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.CountBy(s.recipes, func(r entity.Recipe) bool { return r.HasFamily() && r.FamilyID == familyID })
}

// AddFamily crea una familia con un ID nuevo y la devuelve, para que el formulario de
// receta pueda asignarla en la misma interacción.
func (s *Store) AddFamily(ctx context.Context, name string) (entity.RecipeFamily, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.RecipeFamily{}, fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.newFamily(name)
	next := append(slices.Clone(s.families), f)
	if err := save(ctx, s.kv, repository.KeyFamilies, next); err != nil {
		return entity.RecipeFamily{}, err
	}
	s.families = next
	return f, nil
}

// RenameFamily cambia el nombre en su lugar. Las recetas referencian por ID, no hay cascada.
func (s *Store) RenameFamily(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, idx, ok := lo.FindIndexOf(s.families, func(f entity.RecipeFamily) bool { return f.ID == id })
	if !ok {
		return fmt.Errorf("familia %s: %w", id, domain.ErrNotFound)
	}
	next := slices.Clone(s.families)
	next[idx].Name = name
	if err := save(ctx, s.kv, repository.KeyFamilies, next); err != nil {
		return err
	}
	s.families = next
	return nil
}

// DeleteFamily elimina la familia y deja sin familia a las recetas que la referenciaban.
// Devuelve la cantidad de recetas afectadas. Ambas colecciones se escriben en un solo lote y
// el estado en memoria solo cambia si la escritura tuvo éxito.
func (s *Store) DeleteFamily(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findFamily(id); !ok {
		return 0, fmt.Errorf("familia %s: %w", id, domain.ErrNotFound)
	}
	nextFamilies := lo.Reject(s.families, func(f entity.RecipeFamily, _ int) bool { return f.ID == id })
	affected := 0
	nextRecipes := lo.Map(s.recipes, func(r entity.Recipe, _ int) entity.Recipe {
		if r.FamilyID == id {
			affected++
			r.FamilyID = ""
		}
		return r
	})

	famEntry, err := encode(repository.KeyFamilies, nextFamilies)
	if err != nil {
		return 0, err
	}
	recEntry, err := encode(repository.KeyRecipes, nextRecipes)
	if err != nil {
		return 0, err
	}
	if err := s.kv.SaveBatch(ctx, []repository.Entry{famEntry, recEntry}); err != nil {
		return 0, fmt.Errorf("eliminar familia %s: %w", id, err)
	}
	s.families, s.recipes = nextFamilies, nextRecipes
	s.log.Info().Str("family_id", id).Int("recipes", affected).Msg("familia eliminada")
	return affected, nil
}

func (s *Store) newFamily(name string) entity.RecipeFamily {
	return entity.RecipeFamily{
		ID: s.freshID(func(id string) bool {
			_, exists := s.findFamily(id)
			return exists
		}),
		Name: name,
	}
}

func (s *Store) findFamily(id string) (entity.RecipeFamily, bool) {
	return lo.Find(s.families, func(f entity.RecipeFamily) bool { return f.ID == id })
}

// effectiveFamilyID FamilyID de la receta, o vacío si apunta a una familia inexistente.
func (s *Store) effectiveFamilyID(r entity.Recipe) string {
	if !r.HasFamily() {
		return ""
	}
	if _, ok := s.findFamily(r.FamilyID); !ok {
		return ""
	}
	return r.FamilyID
}

// freshID genera IDs hasta obtener uno que no esté en uso.
func (s *Store) freshID(taken func(string) bool) string {
	for {
		id := s.newID()
		if id != "" && !taken(id) {
			return id
		}
	}
}
