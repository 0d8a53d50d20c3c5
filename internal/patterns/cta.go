package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// CTAConfig describes a call-to-action banner.
type CTAConfig struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PrimaryCTA      *Link  `json:"primaryCta"`
	SecondaryCTA    *Link  `json:"secondaryCta"`
	BackgroundColor string `json:"backgroundColor"`
}

const ctaDefaultVariant = "banner"

var ctaVariants = map[string]func(CTAConfig) types.Block{
	"banner": ctaBanner,
	"split":  ctaSplit,
}

// CTA builds a call-to-action section. Missing button text or URL degrades
// at render time (href="#"); no validation happens here.
func CTA(cfg map[string]interface{}, variant string) *types.Block {
	var c CTAConfig
	decode(cfg, &c)
	b := pickVariant(ctaVariants, variant, ctaDefaultVariant)(c)
	return &b
}

func ctaBanner(c CTAConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Description != "" {
		children = append(children, paragraph(c.Description, "center"))
	}
	if row := buttonRow("center", c.PrimaryCTA, c.SecondaryCTA); row != nil {
		children = append(children, *row)
	}

	attrs := groupAttrs("constrained")
	if c.BackgroundColor != "" {
		attrs["backgroundColor"] = c.BackgroundColor
	}
	return types.NewContainer("core/group", attrs, children...)
}

// ctaSplit puts copy on the left and the button row on the right.
func ctaSplit(c CTAConfig) types.Block {
	text := []types.Block{heading(c.Title, "", 2)}
	if c.Description != "" {
		text = append(text, paragraph(c.Description, ""))
	}

	cols := []types.Block{
		types.NewContainer("core/column", nil, text...),
	}
	if row := buttonRow("right", c.PrimaryCTA, c.SecondaryCTA); row != nil {
		cols = append(cols, types.NewContainer("core/column", nil, *row))
	}

	attrs := groupAttrs("constrained")
	if c.BackgroundColor != "" {
		attrs["backgroundColor"] = c.BackgroundColor
	}
	return types.NewContainer("core/group", attrs,
		types.NewContainer("core/columns", nil, cols...))
}
