package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// PricingConfig describes a pricing table.
type PricingConfig struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Plans    []Plan `json:"plans"`
}

// Plan is one purchasable tier.
type Plan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         *Link    `json:"cta"`
	Highlighted bool     `json:"highlighted"`
}

const pricingDefaultVariant = "columns"

var pricingVariants = map[string]func(PricingConfig) types.Block{
	"columns": pricingColumns,
}

// Pricing builds a pricing section, one column per plan in input order.
func Pricing(cfg map[string]interface{}, variant string) *types.Block {
	var c PricingConfig
	decode(cfg, &c)
	b := pickVariant(pricingVariants, variant, pricingDefaultVariant)(c)
	return &b
}

func pricingColumns(c PricingConfig) types.Block {
	children := []types.Block{
		heading(c.Title, "center", 2),
	}
	if c.Subtitle != "" {
		children = append(children, paragraph(c.Subtitle, "center"))
	}
	children = append(children, spacer("40px"))

	if len(c.Plans) > 0 {
		cols := make([]types.Block, len(c.Plans))
		for i, p := range c.Plans {
			cols[i] = planColumn(p)
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

func planColumn(p Plan) types.Block {
	kids := []types.Block{
		heading(p.Name, "center", 3),
	}

	price := p.Price
	if price != "" && p.Period != "" {
		price += " / " + p.Period
	}
	if price != "" {
		kids = append(kids, paragraph("<strong>"+price+"</strong>", "center"))
	}
	if p.Description != "" {
		kids = append(kids, paragraph(p.Description, "center"))
	}

	if len(p.Features) > 0 {
		items := make([]types.Block, len(p.Features))
		for i, f := range p.Features {
			items[i] = types.NewLeaf("core/list-item", nil, f)
		}
		kids = append(kids, types.NewContainer("core/list", nil, items...))
	}

	if row := buttonRow("center", p.CTA); row != nil {
		kids = append(kids, *row)
	}

	var attrs map[string]interface{}
	if p.Highlighted {
		attrs = map[string]interface{}{"backgroundColor": "tertiary"}
	}
	return types.NewContainer("core/column", attrs, kids...)
}
