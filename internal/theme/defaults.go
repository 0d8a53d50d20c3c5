package theme

// Built-in defaults used category-by-category when the caller supplies
// nothing for a category. Arrays are replaced wholesale, never merged
// entry-by-entry with caller values.

func defaultPalette() []PaletteColor {
	return []PaletteColor{
		{Slug: "base", Name: "Base", Color: "#FFFFFF"},
		{Slug: "contrast", Name: "Contrast", Color: "#1A1A1A"},
		{Slug: "primary", Name: "Primary", Color: "#3B82F6"},
		{Slug: "secondary", Name: "Secondary", Color: "#8B5CF6"},
		{Slug: "accent", Name: "Accent", Color: "#10B981"},
		{Slug: "tertiary", Name: "Tertiary", Color: "#F3F4F6"},
	}
}

func defaultFontFamilies() []FontFamily {
	return []FontFamily{
		{Slug: "sans", Name: "Sans", FontFamily: `Inter, system-ui, sans-serif`},
		{Slug: "serif", Name: "Serif", FontFamily: `Georgia, "Times New Roman", serif`},
		{Slug: "mono", Name: "Mono", FontFamily: `"JetBrains Mono", monospace`},
	}
}

func defaultFontSizes() []FontSize {
	return []FontSize{
		{Slug: "small", Name: "Small", Size: "0.875rem"},
		{Slug: "medium", Name: "Medium", Size: "1rem"},
		{Slug: "large", Name: "Large", Size: "1.5rem"},
		{Slug: "x-large", Name: "Extra Large", Size: "2.25rem"},
		{Slug: "xx-large", Name: "Extra Extra Large", Size: "3rem"},
	}
}

func defaultSpacingSizes() []SpacingSize {
	return []SpacingSize{
		{Slug: "20", Name: "Tiny", Size: "0.5rem"},
		{Slug: "30", Name: "Small", Size: "1rem"},
		{Slug: "40", Name: "Medium", Size: "1.5rem"},
		{Slug: "50", Name: "Large", Size: "2.5rem"},
		{Slug: "60", Name: "Extra Large", Size: "4rem"},
	}
}

func defaultSpacingUnits() []string {
	return []string{"px", "em", "rem", "vh", "vw", "%"}
}

func defaultLayout() LayoutSettings {
	return LayoutSettings{ContentSize: "680px", WideSize: "1200px"}
}
