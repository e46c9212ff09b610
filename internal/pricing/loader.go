// Package pricing loads pricing catalogs and keeps a resolver over the current one.
package pricing

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/anyway/internal/domain"
)

//go:embed data/default_pricing.json
var defaultPricing []byte

// ErrUnsupportedFormat is returned for pricing files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported pricing file format")

// LoadDefault decodes the bundled pricing document.
func LoadDefault() (map[string]any, error) {
	return decodeJSON(defaultPricing)
}

// LoadFile decodes a pricing document from path. Files ending in .yaml or .yml are
// read as YAML, everything else as JSON. A missing file yields an error that
// matches fs.ErrNotExist.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".json", "":
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load decodes the pricing document at path, or the bundled one when path is empty.
func Load(path string) (map[string]any, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// LoadCatalog loads a pricing document and builds a catalog from it.
func LoadCatalog(path string) (*domain.InMemoryPricingCatalog, error) {
	raw, err := Load(path)
	if err != nil {
		return nil, err
	}
	return domain.NewPricingCatalog(raw), nil
}

// decodeJSON keeps numbers as json.Number so prices convert to decimals without float rounding.
func decodeJSON(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode pricing JSON: %w", err)
	}

	return raw, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode pricing YAML: %w", err)
	}

	return raw, nil
}
