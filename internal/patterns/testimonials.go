package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// TestimonialsConfig describes a social-proof section.
type TestimonialsConfig struct {
	Title        string        `json:"title"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Testimonial is one quoted customer.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

const (
	testimonialsDefaultVariant = "grid"
	testimonialsGridColumns    = 2
)

var testimonialsVariants = map[string]func(TestimonialsConfig) types.Block{
	"grid":   testimonialsGrid,
	"single": testimonialsSingle,
}

// Testimonials builds a testimonials section.
func Testimonials(cfg map[string]interface{}, variant string) *types.Block {
	var c TestimonialsConfig
	decode(cfg, &c)
	b := pickVariant(testimonialsVariants, variant, testimonialsDefaultVariant)(c)
	return &b
}

// quoteBlock renders one testimonial as a quote with its citation.
func quoteBlock(t Testimonial) types.Block {
	citation := t.Author
	if t.Role != "" && citation != "" {
		citation += ", " + t.Role
	} else if t.Role != "" {
		citation = t.Role
	}

	var attrs map[string]interface{}
	if citation != "" {
		attrs = map[string]interface{}{"citation": citation}
	}
	return types.NewContainer("core/quote", attrs, paragraph(t.Quote, ""))
}

// testimonialsGrid chunks quotes into rows of two columns.
func testimonialsGrid(c TestimonialsConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
		spacer("40px"),
	}
	for _, row := range chunk(c.Testimonials, testimonialsGridColumns) {
		cols := make([]types.Block, len(row))
		for i, t := range row {
			cols[i] = types.NewContainer("core/column", nil, quoteBlock(t))
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

// testimonialsSingle spotlights the first quote only.
func testimonialsSingle(c TestimonialsConfig) types.Block {
	children := []types.Block{}
	if c.Title != "" {
		children = append(children, heading(c.Title, "center", 2))
	}
	if len(c.Testimonials) > 0 {
		children = append(children, quoteBlock(c.Testimonials[0]))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
