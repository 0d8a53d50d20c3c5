package theme

import (
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

var json = sonic.ConfigStd

// Config is the partial style configuration supplied by the caller. Each
// palette entry is either a bare color string or a {color, name} pair keyed
// by slug. No color-format validation is performed; invalid values pass
// through unchanged.
type Config struct {
	Colors       map[string]interface{} `json:"colors"`
	Gradients    []Gradient             `json:"gradients"`
	FontFamilies []FontFamily           `json:"fontFamilies"`
	FontSizes    []FontSize             `json:"fontSizes"`
	SpacingSizes []SpacingSize          `json:"spacingSizes"`
	SpacingUnits []string               `json:"spacingUnits"`
	ContentSize  string                 `json:"contentSize"`
	WideSize     string                 `json:"wideSize"`
	Styles       map[string]interface{} `json:"styles"`
}

// Build merges the configuration with the built-in defaults into a complete
// descriptor. The merge is category-level: any caller value for a category
// replaces that category's default wholesale. Build never fails.
func Build(cfg Config) Descriptor {
	layout := defaultLayout()
	if cfg.ContentSize != "" {
		layout.ContentSize = cfg.ContentSize
	}
	if cfg.WideSize != "" {
		layout.WideSize = cfg.WideSize
	}

	d := Descriptor{
		Schema:  SchemaURL,
		Version: SchemaVersion,
		Settings: Settings{
			AppearanceTools: true,
			Color: ColorSettings{
				Palette:   normalizePalette(cfg.Colors),
				Gradients: cfg.Gradients,
			},
			Typography: TypographySettings{
				Fluid:        true,
				FontFamilies: defaultFontFamilies(),
				FontSizes:    defaultFontSizes(),
			},
			Spacing: SpacingSettings{
				Units:        defaultSpacingUnits(),
				SpacingSizes: defaultSpacingSizes(),
			},
			Layout: layout,
		},
		Styles: stripNulls(cfg.Styles),
	}

	if len(cfg.FontFamilies) > 0 {
		d.Settings.Typography.FontFamilies = cfg.FontFamilies
	}
	if len(cfg.FontSizes) > 0 {
		d.Settings.Typography.FontSizes = cfg.FontSizes
	}
	if len(cfg.SpacingSizes) > 0 {
		d.Settings.Spacing.SpacingSizes = cfg.SpacingSizes
	}
	if len(cfg.SpacingUnits) > 0 {
		d.Settings.Spacing.Units = cfg.SpacingUnits
	}
	return d
}

// Encode serializes a descriptor to indented JSON. Map keys are sorted, so
// output is deterministic for structurally-equal descriptors.
func Encode(d Descriptor) ([]byte, error) {
	return json.MarshalIndent(d, "", "\t")
}

// normalizePalette turns the caller's color map into sorted {slug, name,
// color} triples, or returns the default palette when the map is empty.
func normalizePalette(colors map[string]interface{}) []PaletteColor {
	if len(colors) == 0 {
		return defaultPalette()
	}

	slugs := make([]string, 0, len(colors))
	for slug := range colors {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	palette := make([]PaletteColor, 0, len(slugs))
	for _, slug := range slugs {
		entry := PaletteColor{Slug: slug, Name: displayName(slug)}
		switch v := colors[slug].(type) {
		case string:
			entry.Color = v
		case map[string]interface{}:
			if c, ok := v["color"].(string); ok {
				entry.Color = c
			}
			if n, ok := v["name"].(string); ok && n != "" {
				entry.Name = n
			}
		}
		palette = append(palette, entry)
	}
	return palette
}

// displayName derives a human-readable name from a slug: word separators
// split, each word title-cased ("primary-dark" -> "Primary Dark").
func displayName(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// stripNulls deep-copies a free-form styles map, dropping nil values so
// none survive into the serialized document. A nil or empty input yields
// an empty (not nil) map, which serializes to {}.
func stripNulls(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			continue
		case map[string]interface{}:
			out[k] = stripNulls(val)
		case []interface{}:
			kept := make([]interface{}, 0, len(val))
			for _, item := range val {
				if item == nil {
					continue
				}
				if sub, ok := item.(map[string]interface{}); ok {
					kept = append(kept, stripNulls(sub))
				} else {
					kept = append(kept, item)
				}
			}
			out[k] = kept
		default:
			out[k] = v
		}
	}
	return out
}
