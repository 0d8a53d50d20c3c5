package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// StatsConfig describes a statistics strip.
type StatsConfig struct {
	Title string `json:"title"`
	Stats []Stat `json:"stats"`
}

// Stat is one headline figure with its label.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const statsDefaultVariant = "row"

var statsVariants = map[string]func(StatsConfig) types.Block{
	"row": statsRow,
}

// Stats builds a statistics section, all figures in a single row.
func Stats(cfg map[string]interface{}, variant string) *types.Block {
	var c StatsConfig
	decode(cfg, &c)
	b := pickVariant(statsVariants, variant, statsDefaultVariant)(c)
	return &b
}

func statsRow(c StatsConfig) types.Block {
	var children []types.Block
	if c.Title != "" {
		children = append(children, heading(c.Title, "center", 2))
	}

	if len(c.Stats) > 0 {
		cols := make([]types.Block, len(c.Stats))
		for i, s := range c.Stats {
			cols[i] = types.NewContainer("core/column", nil,
				heading(s.Value, "center", 3),
				paragraph(s.Label, "center"),
			)
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
