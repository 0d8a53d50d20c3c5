package patterns

import (
	"strings"

	"github.com/forgewp/blockforge/internal/shared/types"
)

// FooterConfig describes the page footer.
type FooterConfig struct {
	SiteName  string         `json:"siteName"`
	Copyright string         `json:"copyright"`
	Links     []Link         `json:"links"`
	Columns   []FooterColumn `json:"columns"`
}

// FooterColumn is one titled link group for the columns variant.
type FooterColumn struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

const footerDefaultVariant = "simple"

var footerVariants = map[string]func(FooterConfig) types.Block{
	"simple":  footerSimple,
	"columns": footerColumns,
}

// Footer builds a footer section.
func Footer(cfg map[string]interface{}, variant string) *types.Block {
	var c FooterConfig
	decode(cfg, &c)
	b := pickVariant(footerVariants, variant, footerDefaultVariant)(c)
	return &b
}

func (c FooterConfig) copyrightLine() string {
	if c.Copyright != "" {
		return c.Copyright
	}
	if c.SiteName != "" {
		return "&copy; " + c.SiteName + ". All rights reserved."
	}
	return ""
}

// footerSimple is a separator, an optional link row and the copyright line.
func footerSimple(c FooterConfig) types.Block {
	children := []types.Block{
		types.NewLeaf("core/separator", nil, ""),
	}
	if len(c.Links) > 0 {
		parts := make([]string, len(c.Links))
		for i, l := range c.Links {
			parts[i] = anchor(l)
		}
		children = append(children, paragraph(strings.Join(parts, " &middot; "), "center"))
	}
	if line := c.copyrightLine(); line != "" {
		children = append(children, paragraph(line, "center"))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}

// footerColumns renders titled link lists side by side, then the copyright.
func footerColumns(c FooterConfig) types.Block {
	var children []types.Block

	if len(c.Columns) > 0 {
		cols := make([]types.Block, len(c.Columns))
		for i, fc := range c.Columns {
			items := make([]types.Block, len(fc.Links))
			for j, l := range fc.Links {
				items[j] = types.NewLeaf("core/list-item", nil, anchor(l))
			}
			cols[i] = types.NewContainer("core/column", nil,
				heading(fc.Title, "", 4),
				types.NewContainer("core/list", nil, items...),
			)
		}
		children = append(children, types.NewContainer("core/columns", nil, cols...))
	}

	children = append(children, types.NewLeaf("core/separator", nil, ""))
	if line := c.copyrightLine(); line != "" {
		children = append(children, paragraph(line, "center"))
	}
	return types.NewContainer("core/group", groupAttrs("constrained"), children...)
}
