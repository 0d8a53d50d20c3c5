// Package theme builds the editor's JSON style descriptor from a partial
// style configuration.
//
// Build is a pure, single-shot transform: caller categories (palette,
// gradients, font families, font sizes, spacing sizes and units, layout
// widths, style overrides) replace the built-in default for that category
// wholesale, and untouched categories keep their defaults. Array entries
// are never merged element-by-element.
//
// Palette entries arrive either as bare color strings (display name derived
// from the slug) or explicit {color, name} pairs; output always carries
// {slug, name, color} triples. Color strings are passed through without
// format validation.
//
// The output shape is fixed: $schema, version 3, settings and styles. An
// empty styles object is valid output, and no null values survive encoding.
package theme
