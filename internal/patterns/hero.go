package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// HeroConfig describes a page-opening hero section.
type HeroConfig struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	PrimaryCTA      *Link  `json:"primaryCta"`
	SecondaryCTA    *Link  `json:"secondaryCta"`
	Image           *Media `json:"image"`
	BackgroundImage string `json:"backgroundImage"`
}

const heroDefaultVariant = "centered"

var heroVariants = map[string]func(HeroConfig) types.Block{
	"centered":   heroCentered,
	"split":      heroSplit,
	"fullscreen": heroFullscreen,
}

// Hero builds a hero section. Unrecognized variants fall back to "centered".
func Hero(cfg map[string]interface{}, variant string) *types.Block {
	var c HeroConfig
	decode(cfg, &c)
	b := pickVariant(heroVariants, variant, heroDefaultVariant)(c)
	return &b
}

// heroCentered stacks heading, subheading and buttons in one group.
func heroCentered(c HeroConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 1),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}
	if row := buttonRow("center", c.PrimaryCTA, c.SecondaryCTA); row != nil {
		children = append(children, *row)
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

// heroSplit puts text in one column and media in the other. Without an
// image the media column is not emitted at all.
func heroSplit(c HeroConfig) types.Block {
	text := []types.Block{
		heading(c.Title, "", 1),
	}
	if c.Subtitle != "" {
		text = append(text, paragraph(c.Subtitle, ""))
	}
	if row := buttonRow("left", c.PrimaryCTA, c.SecondaryCTA); row != nil {
		text = append(text, *row)
	}

	cols := []types.Block{
		types.NewContainer("core/column", nil, text...),
	}
	if c.Image != nil && c.Image.URL != "" {
		cols = append(cols, types.NewContainer("core/column", nil, image(*c.Image)))
	}
	return types.NewContainer("core/columns", nil, cols...)
}

// heroFullscreen wraps the centered content in a cover container backed by
// the configured image.
func heroFullscreen(c HeroConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 1),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}
	if row := buttonRow("center", c.PrimaryCTA, c.SecondaryCTA); row != nil {
		children = append(children, *row)
	}

	url := c.BackgroundImage
	if url == "" && c.Image != nil {
		url = c.Image.URL
	}
	attrs := map[string]interface{}{"url": url, "dimRatio": 50}
	return types.NewContainer("core/cover", attrs, children...)
}
