// Package config implements the engine's configuration store: a two-level
// section->dict map with per-section provenance, backed by structured
// dictionary documents (YAML). This is the generalized form of the
// teacher's fixed-struct config.yaml loader — the engine has no compile-time
// knowledge of what a section contains, so sections decode into a generic
// recursive value rather than a named Go struct.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tilekernel/internal/boarderr"
)

// Dict is a structured dictionary document: string keys to arbitrary
// values, which may themselves be Dict, []any, or a scalar (string, int,
// float64, bool). yaml.v3 decodes map[string]any this way natively.
type Dict map[string]any

// provenance records where a section was loaded from, so Save can write it
// back without the caller repeating the filename.
type provenance struct {
	path string
	set  bool
}

// Store holds every loaded configuration section plus its provenance.
type Store struct {
	sections   map[string]Dict
	loadedFrom map[string]provenance
}

// NewStore creates an empty configuration store.
func NewStore() *Store {
	return &Store{
		sections:   make(map[string]Dict),
		loadedFrom: make(map[string]provenance),
	}
}

// Load parses filename as a structured dictionary document and installs it
// under section, recording filename as that section's provenance.
func (s *Store) Load(section, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("load config section %q: %w", section, err)
	}
	var d Dict
	if err := yaml.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("parse config section %q: %w", section, err)
	}
	s.sections[section] = d
	s.loadedFrom[section] = provenance{path: filename, set: true}
	return nil
}

// Set installs d directly as section's contents. It records no provenance
// of its own: a section that was never loaded or saved needs an explicit
// filename on Save, while a section that was keeps its recorded origin.
func (s *Store) Set(section string, d Dict) {
	s.sections[section] = d
}

// Section returns the dict stored under section, or ErrUnknownSection.
func (s *Store) Section(section string) (Dict, error) {
	d, ok := s.sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: %s", boarderr.ErrUnknownSection, section)
	}
	return d, nil
}

// Save writes section back to disk as YAML. If filename is empty, the
// section's original load path is used; fails with ErrUnknownSection if
// the section doesn't exist, or if filename is empty and the section has
// no recorded origin.
func (s *Store) Save(section, filename string) error {
	d, ok := s.sections[section]
	if !ok {
		return fmt.Errorf("%w: %s", boarderr.ErrUnknownSection, section)
	}
	if filename == "" {
		prov, ok := s.loadedFrom[section]
		if !ok || !prov.set {
			return fmt.Errorf("%w: section %s has no origin to save to", boarderr.ErrUnknownSection, section)
		}
		filename = prov.path
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal config section %q: %w", section, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save config section %q: %w", section, err)
	}
	s.loadedFrom[section] = provenance{path: filename, set: true}
	return nil
}

// String reads a scalar string value from d at key, returning def if the
// key is absent or not a string.
func (d Dict) String(key, def string) string {
	if v, ok := d[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int reads a scalar integer value from d at key, returning def if the key
// is absent or not a number. yaml.v3 decodes untyped integers as int.
func (d Dict) Int(key string, def int) int {
	if v, ok := d[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return def
}

// Bool reads a scalar boolean value from d at key, returning def if the key
// is absent or not a bool.
func (d Dict) Bool(key string, def bool) bool {
	if v, ok := d[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Sub reads a nested dictionary from d at key, returning nil if the key is
// absent or not itself a dictionary.
func (d Dict) Sub(key string) Dict {
	v, ok := d[key]
	if !ok {
		return nil
	}
	switch sub := v.(type) {
	case Dict:
		return sub
	case map[string]any:
		return Dict(sub)
	default:
		return nil
	}
}
