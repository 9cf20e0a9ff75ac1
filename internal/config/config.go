// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the optional dctap.yaml settings file that tunes
// how a tabular application profile is read.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackShapeName is used for an unlabeled first shape when the
// settings file does not configure a default.
const FallbackShapeName = "default"

// Settings is the read-only configuration surface consumed by the
// reader. The zero value is a complete, usable configuration.
type Settings struct {
	// DefaultShapeName keys the shape synthesized for rows that appear
	// before any explicit shapeID.
	DefaultShapeName string `yaml:"default_shape_name"`

	// ElementAliases maps additional header spellings onto canonical
	// element names. Keys are matched after header normalization.
	ElementAliases map[string]string `yaml:"element_aliases"`

	// Extra element lists are accepted from existing settings files but
	// are not applied to row population; see Extras.
	ExtraShapeElements     []string `yaml:"extra_shape_elements"`
	ExtraStatementElements []string `yaml:"extra_statement_constraint_elements"`
}

// Load reads settings from path. An absent file is clean state: it
// yields default settings, not an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	s.canonicalizeAliases()
	return &s, nil
}

// ShapeName returns the configured default shape name, falling back to
// the fixed literal when none is configured.
func (s *Settings) ShapeName() string {
	if s == nil || s.DefaultShapeName == "" {
		return FallbackShapeName
	}
	return s.DefaultShapeName
}

// Alias resolves a normalized header name through the alias table.
// Unmapped names pass through unchanged.
func (s *Settings) Alias(name string) string {
	if s == nil {
		return name
	}
	if target, ok := s.ElementAliases[name]; ok {
		return target
	}
	return name
}

// Extras reports whether extra element lists are configured. They are
// parsed for compatibility with existing settings files but have no
// effect on population; callers surface this so the option is visible
// rather than silently inert.
func (s *Settings) Extras() bool {
	if s == nil {
		return false
	}
	return len(s.ExtraShapeElements) > 0 || len(s.ExtraStatementElements) > 0
}

// canonicalizeAliases rewrites alias keys the same way headers are
// normalized, so lookups during header normalization are a single
// map access.
func (s *Settings) canonicalizeAliases() {
	if len(s.ElementAliases) == 0 {
		return
	}
	canonical := make(map[string]string, len(s.ElementAliases))
	for key, target := range s.ElementAliases {
		key = strings.ReplaceAll(key, " ", "")
		key = strings.ReplaceAll(key, "_", "")
		key = strings.ReplaceAll(key, "-", "")
		canonical[strings.ToLower(key)] = target
	}
	s.ElementAliases = canonical
}
