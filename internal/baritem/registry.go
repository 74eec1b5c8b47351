package baritem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

var (
	// ErrUnknownProvider is returned when invoking a name never registered.
	ErrUnknownProvider = errors.New("unknown bar item")
	// ErrDuplicateProvider is returned when a name is registered twice.
	ErrDuplicateProvider = errors.New("bar item already registered")
	// ErrInvalidProvider is returned for empty names or nil composers.
	ErrInvalidProvider = errors.New("invalid bar item")
)

// Registry maps bar item names to composers. Registration happens once at
// startup; Invoke is then called by the host on every redraw.
type Registry struct {
	items map[string]Composer
	log   *zerolog.Logger
}

// NewRegistry returns an empty registry. A nil logger disables logging.
func NewRegistry(logger *zerolog.Logger) *Registry {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Registry{
		items: make(map[string]Composer),
		log:   logger,
	}
}

// Register adds a composer under name.
func (r *Registry) Register(name string, c Composer) error {
	if name == "" || c == nil {
		return fmt.Errorf("register %q: %w", name, ErrInvalidProvider)
	}
	if _, exists := r.items[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateProvider)
	}
	r.items[name] = c
	r.log.Debug().Str("item", name).Msg("bar item registered")
	return nil
}

// Invoke renders the named item. An unknown name is a host configuration
// error: it is logged and returned, never panics.
func (r *Registry) Invoke(name string, ctx Context) (string, bool, error) {
	c, ok := r.items[name]
	if !ok {
		r.log.Error().Str("item", name).Msg("bar item not registered")
		return "", false, fmt.Errorf("invoke %q: %w", name, ErrUnknownProvider)
	}
	label, ok := c.Compose(ctx)
	return label, ok, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// Names returns the registered item names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
