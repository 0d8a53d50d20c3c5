package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// TeamConfig describes a team roster section.
type TeamConfig struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Members  []TeamMember `json:"members"`
}

// TeamMember is one person on the roster.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Photo *Media `json:"photo"`
}

const (
	teamDefaultVariant = "grid"
	teamGridColumns    = 3
)

var teamVariants = map[string]func(TeamConfig) types.Block{
	"grid": teamGrid,
}

// Team builds a team section, members chunked into rows of three.
func Team(cfg map[string]interface{}, variant string) *types.Block {
	var c TeamConfig
	decode(cfg, &c)
	b := pickVariant(teamVariants, variant, teamDefaultVariant)(c)
	return &b
}

func teamGrid(c TeamConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}
	children = append(children, spacer("40px"))

	for _, row := range chunk(c.Members, teamGridColumns) {
		cols := make([]types.Block, len(row))
		for i, m := range row {
			cols[i] = memberColumn(m)
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

func memberColumn(m TeamMember) types.Block {
	var kids []types.Block
	if m.Photo != nil && m.Photo.URL != "" {
		photo := *m.Photo
		if photo.Alt == "" {
			photo.Alt = m.Name
		}
		kids = append(kids, image(photo))
	}
	kids = append(kids, heading(m.Name, "center", 3))
	if m.Role != "" {
		kids = append(kids, paragraph("<em>"+m.Role+"</em>", "center"))
	}
	if m.Bio != "" {
		kids = append(kids, paragraph(m.Bio, "center"))
	}
	return types.NewContainer("core/column", nil, kids...)
}
