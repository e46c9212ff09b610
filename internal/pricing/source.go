package pricing

import (
	"fmt"
	"sync/atomic"

	"github.com/davidbz/anyway/internal/domain"
)

// Source is a CostResolver over the most recently loaded catalog.
// Reload builds a fresh catalog and resolver and swaps them in atomically, so
// in-flight resolutions always see one consistent catalog.
type Source struct {
	path     string
	resolver atomic.Pointer[domain.TieredCostResolver]
	models   atomic.Int64
}

// NewSource loads the catalog at path (the bundled one when empty).
func NewSource(path string) (*Source, error) {
	s := &Source{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the catalog file path, empty for the bundled catalog.
func (s *Source) Path() string {
	return s.path
}

// Reload rebuilds the resolver from the catalog file. On failure the previous
// resolver stays in place.
func (s *Source) Reload() error {
	catalog, err := LoadCatalog(s.path)
	if err != nil {
		return fmt.Errorf("failed to load pricing catalog: %w", err)
	}

	s.resolver.Store(domain.NewTieredCostResolver(catalog))
	s.models.Store(int64(catalog.Len()))

	return nil
}

// Models returns the number of entries in the current catalog.
func (s *Source) Models() int {
	return int(s.models.Load())
}

// Resolve implements domain.CostResolver.
func (s *Source) Resolve(model string) (domain.Resolution, bool) {
	resolver := s.resolver.Load()
	if resolver == nil {
		return domain.Resolution{}, false
	}
	return resolver.Resolve(model)
}
