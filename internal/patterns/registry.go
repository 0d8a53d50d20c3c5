package patterns

import (
	"sort"

	"github.com/forgewp/blockforge/internal/shared/types"
)

// GenerateFunc builds one section root block from a loose configuration map
// and a layout variant name.
type GenerateFunc func(cfg map[string]interface{}, variant string) *types.Block

// sections maps declared, composed section types to their generators.
var sections = map[string]GenerateFunc{
	"hero":         Hero,
	"features":     Features,
	"cta":          CTA,
	"testimonials": Testimonials,
	"footer":       Footer,
	"pricing":      Pricing,
	"team":         Team,
	"stats":        Stats,
	"logos":        Logos,
	"faq":          FAQ,
}

// pending lists declared section types whose composition is not built yet.
// They resolve to a visible placeholder instead of failing.
var pending = map[string]bool{
	"gallery": true,
	"blog":    true,
	"contact": true,
}

// variants names every layout variant per section type, default first.
var variants = map[string][]string{
	"hero":         {"centered", "split", "fullscreen"},
	"features":     {"grid", "alternating", "centered"},
	"cta":          {"banner", "split"},
	"testimonials": {"grid", "single"},
	"footer":       {"simple", "columns"},
	"pricing":      {"columns"},
	"team":         {"grid"},
	"stats":        {"row"},
	"logos":        {"row"},
	"faq":          {"list"},
}

// Generate builds the root block for a section. Declared-but-unimplemented
// types produce a "coming soon" placeholder; wholly unknown types return
// nil, which callers must check.
func Generate(section, variant string, cfg map[string]interface{}) *types.Block {
	if gen, ok := sections[section]; ok {
		return gen(cfg, variant)
	}
	if pending[section] {
		return placeholder(section)
	}
	return nil
}

// Known reports whether a section type is declared (composed or pending).
func Known(section string) bool {
	_, ok := sections[section]
	return ok || pending[section]
}

// Catalog returns the declared section types and their variants, sorted by
// section name. Pending types carry an empty variant list.
func Catalog() map[string][]string {
	out := make(map[string][]string, len(variants)+len(pending))
	for section, v := range variants {
		out[section] = append([]string(nil), v...)
	}
	for section := range pending {
		out[section] = []string{}
	}
	return out
}

// SectionNames returns the declared section types in sorted order.
func SectionNames() []string {
	names := make([]string, 0, len(sections)+len(pending))
	for s := range sections {
		names = append(names, s)
	}
	for s := range pending {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}
