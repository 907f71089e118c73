package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

//go:embed templates/*.json
var embedded embed.FS

// Source hands out workout templates. Registry is the only implementation
// outside tests.
type Source interface {
	Get(t domain.WorkoutType) domain.WorkoutTemplate
}

// Registry holds exactly one template per workout type.
type Registry struct {
	templates map[domain.WorkoutType]domain.WorkoutTemplate
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded template files.
// A broken embedded template is a build defect, so it panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			panic(fmt.Sprintf("template: %v", err))
		}
		r, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("template: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load reads every *.json file at the root of fsys. Both workout types must
// be defined exactly once.
func Load(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	sort.Strings(names)

	r := &Registry{templates: make(map[domain.WorkoutType]domain.WorkoutTemplate, 2)}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		schema, err := ParseSchema(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if errs := ValidateSchema(schema); len(errs) > 0 {
			return nil, fmt.Errorf("%s: %w", path.Base(name), errors.Join(errs...))
		}
		tmpl := schema.toDomain()
		if _, dup := r.templates[tmpl.Type]; dup {
			return nil, fmt.Errorf("%s: duplicate template for workout %s", path.Base(name), tmpl.Type)
		}
		r.templates[tmpl.Type] = tmpl
	}

	for _, t := range domain.WorkoutTypes {
		if _, ok := r.templates[t]; !ok {
			return nil, fmt.Errorf("missing template for workout %s", t)
		}
	}
	return r, nil
}

// Get returns a copy of the template for t. Any value other than B yields A,
// keeping the lookup total.
func (r *Registry) Get(t domain.WorkoutType) domain.WorkoutTemplate {
	if t != domain.WorkoutB {
		t = domain.WorkoutA
	}
	return r.templates[t].Clone()
}

// All returns both templates in A, B order.
func (r *Registry) All() []domain.WorkoutTemplate {
	out := make([]domain.WorkoutTemplate, 0, len(domain.WorkoutTypes))
	for _, t := range domain.WorkoutTypes {
		out = append(out, r.Get(t))
	}
	return out
}
