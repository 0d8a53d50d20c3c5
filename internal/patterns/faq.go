package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// FAQConfig describes a question/answer section.
type FAQConfig struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Items    []FAQEntry `json:"items"`
}

// FAQEntry is one question with its answer.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

const faqDefaultVariant = "list"

var faqVariants = map[string]func(FAQConfig) types.Block{
	"list": faqList,
}

// FAQ builds a question list, entries in input order.
func FAQ(cfg map[string]interface{}, variant string) *types.Block {
	var c FAQConfig
	decode(cfg, &c)
	b := pickVariant(faqVariants, variant, faqDefaultVariant)(c)
	return &b
}

func faqList(c FAQConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}

	for _, item := range c.Items {
		children = append(children,
			heading(item.Question, "", 3),
			paragraph(item.Answer, ""),
		)
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
