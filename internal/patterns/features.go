package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// FeaturesConfig describes a feature showcase section.
type FeaturesConfig struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Features []Feature `json:"features"`
}

// Feature is one showcased capability.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       *Media `json:"image"`
}

const (
	featuresDefaultVariant = "grid"
	featuresGridColumns    = 3
)

var featuresVariants = map[string]func(FeaturesConfig) types.Block{
	"grid":        featuresGrid,
	"alternating": featuresAlternating,
	"centered":    featuresCentered,
}

// Features builds a features section. Unrecognized variants fall back to
// the 3-column grid.
func Features(cfg map[string]interface{}, variant string) *types.Block {
	var c FeaturesConfig
	decode(cfg, &c)
	b := pickVariant(featuresVariants, variant, featuresDefaultVariant)(c)
	return &b
}

// featuresGrid chunks items into rows of three columns, in input order.
func featuresGrid(c FeaturesConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}
	children = append(children, spacer("40px"))

	for _, row := range chunk(c.Features, featuresGridColumns) {
		cols := make([]types.Block, len(row))
		for i, f := range row {
			cols[i] = featureColumn(f)
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

func featureColumn(f Feature) types.Block {
	var kids []types.Block
	if f.Icon != "" {
		kids = append(kids, paragraph(f.Icon, "center"))
	} else if f.Image != nil && f.Image.URL != "" {
		kids = append(kids, image(*f.Image))
	}
	kids = append(kids, heading(f.Title, "center", 3))
	if f.Description != "" {
		kids = append(kids, paragraph(f.Description, "center"))
	}
	return types.NewContainer("core/column", nil, kids...)
}

// featuresAlternating renders one two-column row per item, media side
// chosen by index parity: even items lead with media.
func featuresAlternating(c FeaturesConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}

	for i, f := range c.Features {
		text := []types.Block{heading(f.Title, "", 3)}
		if f.Description != "" {
			text = append(text, paragraph(f.Description, ""))
		}
		textCol := types.NewContainer("core/column", nil, text...)

		if f.Image == nil || f.Image.URL == "" {
			children = append(children, types.NewContainer("core/columns", nil, textCol))
			continue
		}
		mediaCol := types.NewContainer("core/column", nil, image(*f.Image))

		var row types.Block
		if i%2 == 0 {
			row = types.NewContainer("core/columns", nil, mediaCol, textCol)
		} else {
			row = types.NewContainer("core/columns", nil, textCol, mediaCol)
		}
		children = append(children, row)
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

// featuresCentered stacks every feature as its own centered group.
func featuresCentered(c FeaturesConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}

	for _, f := range c.Features {
		var kids []types.Block
		if f.Icon != "" {
			kids = append(kids, paragraph(f.Icon, "center"))
		}
		kids = append(kids, heading(f.Title, "center", 3))
		if f.Description != "" {
			kids = append(kids, paragraph(f.Description, "center"))
		}
		children = append(children, types.NewContainer("core/group", groupAttrs("constrained"), kids...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
