package theme

// SchemaURL identifies the descriptor schema consumed by the editor.
const SchemaURL = "https://schemas.wp.org/trunk/theme.json"

// SchemaVersion is the descriptor format version.
const SchemaVersion = 3

// Descriptor is the complete style document handed to the editor.
type Descriptor struct {
	Schema   string                 `json:"$schema"`
	Version  int                    `json:"version"`
	Settings Settings               `json:"settings"`
	Styles   map[string]interface{} `json:"styles"`
}

// Settings groups the editor-facing configuration categories.
type Settings struct {
	AppearanceTools bool               `json:"appearanceTools"`
	Color           ColorSettings      `json:"color"`
	Typography      TypographySettings `json:"typography"`
	Spacing         SpacingSettings    `json:"spacing"`
	Layout          LayoutSettings     `json:"layout"`
}

// ColorSettings holds the palette and optional gradient presets.
type ColorSettings struct {
	Palette   []PaletteColor `json:"palette"`
	Gradients []Gradient     `json:"gradients,omitempty"`
}

// PaletteColor is one slug/name/color preset triple.
type PaletteColor struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Gradient is one gradient preset.
type Gradient struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Gradient string `json:"gradient"`
}

// TypographySettings holds font presets.
type TypographySettings struct {
	Fluid        bool         `json:"fluid"`
	FontFamilies []FontFamily `json:"fontFamilies"`
	FontSizes    []FontSize   `json:"fontSizes"`
}

// FontFamily is one font stack preset.
type FontFamily struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	FontFamily string `json:"fontFamily"`
}

// FontSize is one named size preset.
type FontSize struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Size string `json:"size"`
}

// SpacingSettings holds spacing units and the size scale.
type SpacingSettings struct {
	Units        []string      `json:"units"`
	SpacingSizes []SpacingSize `json:"spacingSizes"`
}

// SpacingSize is one step of the spacing scale.
type SpacingSize struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Size string `json:"size"`
}

// LayoutSettings holds the content width presets.
type LayoutSettings struct {
	ContentSize string `json:"contentSize"`
	WideSize    string `json:"wideSize"`
}
