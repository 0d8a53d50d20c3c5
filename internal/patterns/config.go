package patterns

import (
	"unicode"

	"github.com/bytedance/sonic"

	"github.com/forgewp/blockforge/internal/shared/types"
)

var json = sonic.ConfigStd

// Link is a text/URL pair used for buttons and navigation entries.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Media points at an image asset.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// decode maps a loose configuration map onto a typed section config.
// Malformed values are dropped rather than reported; generators degrade
// instead of failing on bad input.
func decode(cfg map[string]interface{}, out interface{}) {
	if cfg == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

// chunk partitions items into rows of at most size, preserving input order.
// The final row may be shorter.
func chunk[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return nil
	}
	rows := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[start:end])
	}
	return rows
}

// heading builds a heading leaf. Level 2 is the renderer default.
func heading(text, align string, level int) types.Block {
	attrs := map[string]interface{}{"level": level}
	if align != "" {
		attrs["textAlign"] = align
	}
	return types.NewLeaf("core/heading", attrs, text)
}

// paragraph builds a paragraph leaf, optionally aligned.
func paragraph(text, align string) types.Block {
	var attrs map[string]interface{}
	if align != "" {
		attrs = map[string]interface{}{"textAlign": align}
	}
	return types.NewLeaf("core/paragraph", attrs, text)
}

func image(m Media) types.Block {
	attrs := map[string]interface{}{"url": m.URL}
	if m.Alt != "" {
		attrs["alt"] = m.Alt
	}
	return types.NewLeaf("core/image", attrs, "")
}

func spacer(height string) types.Block {
	return types.NewLeaf("core/spacer", map[string]interface{}{"height": height}, "")
}

// buttonRow wraps the non-empty links in a buttons container. Links that
// carry neither text nor URL are skipped entirely; a row with no surviving
// links returns nil so callers emit nothing.
func buttonRow(justify string, links ...*Link) *types.Block {
	var kids []types.Block
	for _, l := range links {
		if l == nil || (l.Text == "" && l.URL == "") {
			continue
		}
		kids = append(kids, types.NewLeaf("core/button", map[string]interface{}{"url": l.URL}, l.Text))
	}
	if len(kids) == 0 {
		return nil
	}

	var attrs map[string]interface{}
	if justify != "" {
		attrs = map[string]interface{}{
			"layout": map[string]interface{}{"type": "flex", "justifyContent": justify},
		}
	}
	row := types.NewContainer("core/buttons", attrs, kids...)
	return &row
}

// anchor renders a trusted inline link fragment for InnerContent use.
func anchor(l Link) string {
	url := l.URL
	if url == "" {
		url = "#"
	}
	return `<a href="` + url + `">` + l.Text + `</a>`
}

// capitalize upper-cases the first rune, for placeholder labels.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// groupAttrs builds the layout attribute shared by section wrappers.
func groupAttrs(layout string) map[string]interface{} {
	return map[string]interface{}{
		"layout": map[string]interface{}{"type": layout},
	}
}

// pickVariant resolves a variant name against a strategy map, falling back
// to the named default for empty or unrecognized input.
func pickVariant[C any](strategies map[string]func(C) types.Block, variant, fallback string) func(C) types.Block {
	if s, ok := strategies[variant]; ok {
		return s
	}
	return strategies[fallback]
}
