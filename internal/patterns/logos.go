package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// LogosConfig describes a logo cloud section.
type LogosConfig struct {
	Title string  `json:"title"`
	Logos []Media `json:"logos"`
}

const logosDefaultVariant = "row"

var logosVariants = map[string]func(LogosConfig) types.Block{
	"row": logosRow,
}

// Logos builds a logo cloud, one image column per logo in input order.
func Logos(cfg map[string]interface{}, variant string) *types.Block {
	var c LogosConfig
	decode(cfg, &c)
	b := pickVariant(logosVariants, variant, logosDefaultVariant)(c)
	return &b
}

func logosRow(c LogosConfig) types.Block {
	var children []types.Block
	if c.Title != "" {
		children = append(children, paragraph(c.Title, "center"))
	}

	if len(c.Logos) > 0 {
		cols := make([]types.Block, len(c.Logos))
		for i, m := range c.Logos {
			cols[i] = types.NewContainer("core/column", nil, image(m))
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
