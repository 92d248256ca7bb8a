// Package metric defines the spacetime metric models for GravSweep.
package metric

import (
	"sort"
	"sync"
)

// Builtin model IDs.
const (
	IDSchwarzschild     = "schwarzschild"
	IDTorsional         = "einstein-final-torsional"
	IDQuadratic         = "einstein-final-quadratic"
	IDReissnerNordstrom = "reissner-nordstrom"
)

// Factory builds a model instance from an evaluation context and the
// model's free parameter.
type Factory func(ctx Context, alpha float64) Model

// Spec describes a registered model family.
type Spec struct {
	// ID is the stable registry identifier.
	ID string

	// New builds an instance of the family.
	New Factory

	// DefaultAlpha is the free-parameter value used when a request
	// does not supply one.
	DefaultAlpha float64
}

// Info is the declarative snapshot of a registered model, as reported by
// listings. It is derived from an instance built with the default alpha.
type Info struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DefaultAlpha float64     `json:"default_alpha"`
	Cacheable    bool        `json:"cacheable"`
	Sweep        *SweepRange `json:"sweep,omitempty"`
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]Spec
}{
	m: make(map[string]Spec),
}

// Register adds a model family to the registry.
func Register(spec Spec) error {
	if spec.ID == "" {
		return ErrInvalidArgument.WithDetails("model id is required")
	}
	if spec.New == nil {
		return ErrInvalidArgument.WithDetails("model factory is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[spec.ID]; exists {
		return ErrModelExists.WithDetails(spec.ID)
	}
	registry.m[spec.ID] = spec
	return nil
}

// Lookup returns the spec registered under id.
func Lookup(id string) (Spec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	spec, ok := registry.m[id]
	if !ok {
		return Spec{}, ErrModelNotFound.WithDetails(id)
	}
	return spec, nil
}

// Build constructs a model instance for id. A nil alpha selects the
// family's default.
func Build(id string, ctx Context, alpha *float64) (Model, error) {
	spec, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	a := spec.DefaultAlpha
	if alpha != nil {
		a = *alpha
	}
	return spec.New(ctx, a), nil
}

// List returns the Info of every registered model, sorted by ID.
func List(ctx Context) []Info {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	infos := make([]Info, 0, len(registry.m))
	for id, spec := range registry.m {
		model := spec.New(ctx, spec.DefaultAlpha)
		infos = append(infos, Info{
			ID:           id,
			Name:         model.Name(),
			DefaultAlpha: spec.DefaultAlpha,
			Cacheable:    model.Cacheable(),
			Sweep:        model.SweepRange(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// IDs returns the sorted registered model IDs.
func IDs() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	ids := make([]string, 0, len(registry.m))
	for id := range registry.m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	builtins := []Spec{
		{ID: IDSchwarzschild, DefaultAlpha: 0,
			New: func(ctx Context, alpha float64) Model { return NewSchwarzschild(ctx, alpha) }},
		{ID: IDTorsional, DefaultAlpha: 0,
			New: func(ctx Context, alpha float64) Model { return NewTorsional(ctx, alpha) }},
		{ID: IDQuadratic, DefaultAlpha: 0,
			New: func(ctx Context, alpha float64) Model { return NewQuadratic(ctx, alpha) }},
		{ID: IDReissnerNordstrom, DefaultAlpha: 0,
			New: func(ctx Context, alpha float64) Model { return NewReissnerNordstrom(ctx, alpha) }},
	}
	for _, spec := range builtins {
		if err := Register(spec); err != nil {
			panic(err)
		}
	}
}
