// Package catalog defines the machine catalog types and the loader for the
// static catalog file read once at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// OptionItem is a single priced add-on line from the catalog.
type OptionItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MachineConfig is one machine-type entry of the catalog. It is immutable
// after loading.
type MachineConfig struct {
	StandardOptions []string     `json:"standard_options"`
	OptionalOptions []OptionItem `json:"optional_options"`
	BasePrice       float64      `json:"base_price"`
	Discount        float64      `json:"discount"`
}

// Catalog maps machine-type name to its configuration.
type Catalog map[string]MachineConfig

// Load reads and validates the catalog file. Malformed entries are a
// configuration error and fail loudly rather than being coerced.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	if len(c) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no machines", path)
	}

	for name, cfg := range c {
		if name == "" {
			return nil, fmt.Errorf("catalog: machine with empty name")
		}
		if cfg.BasePrice < 0 {
			return nil, fmt.Errorf("catalog: machine %q: negative base_price %v", name, cfg.BasePrice)
		}
		if cfg.Discount < 0 {
			return nil, fmt.Errorf("catalog: machine %q: negative discount %v", name, cfg.Discount)
		}
		for i, opt := range cfg.OptionalOptions {
			if opt.Price < 0 {
				return nil, fmt.Errorf("catalog: machine %q: optional option %d (%q): negative price %v",
					name, i, opt.Description, opt.Price)
			}
		}
	}

	return c, nil
}

// Names returns the machine-type names in sorted order, matching the order
// the selection dropdown presents them in.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
