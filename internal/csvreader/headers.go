// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import (
	"strings"

	"dctap/internal/config"
	"dctap/internal/tapmodel"
)

// canonicalNames maps the lowercased form of every declared element
// back to its camelCase spelling, so headers like "Property ID" or
// "property_id" land on "propertyID" without configuration.
var canonicalNames = func() map[string]string {
	names := append(tapmodel.ShapeElements(), tapmodel.StatementElements()...)
	m := make(map[string]string, len(names))
	for _, name := range names {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// NormalizeHeader canonicalizes a raw column header: spaces, underscores
// and hyphens are removed and the remainder is lowercased; the result is
// then resolved through the configured alias table, or failing that the
// built-in element names. Total over any input string.
func NormalizeHeader(raw string, settings *config.Settings) string {
	name := strings.ReplaceAll(raw, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ToLower(name)

	if aliased := settings.Alias(name); aliased != name {
		return aliased
	}
	if canonical, ok := canonicalNames[name]; ok {
		return canonical
	}
	return name
}
