// Package patterns builds block trees for semantic page sections.
//
// Dispatch happens in two explicit registries rather than a type hierarchy:
// section type -> generator, then per section a variant -> composition
// strategy map with a documented default. Both lookups are total: an
// unrecognized variant falls back to the section default, a declared but
// not-yet-composed section type yields a "coming soon" placeholder, and a
// wholly unknown section type yields nil for the caller to check.
//
// Section types: hero, features, cta, testimonials, footer, pricing, team,
// stats, logos, faq (composed); gallery, blog, contact (pending).
//
// Generators are lenient by contract. Optional fields simply do not emit
// blocks; conceptually-required fields that are missing degrade at render
// time (a button without a URL links to "#") instead of erroring. List
// configuration maps one block group per item in input order; grid layouts
// chunk items into fixed-size rows, the last row possibly shorter;
// alternating layouts lead with media on even item indexes.
//
// Every container is built through types.NewContainer, which keeps the
// content-placeholder count equal to the child count by construction.
//
// Example Usage:
//
//	block := patterns.Generate("hero", "split", map[string]interface{}{
//	    "title": "Ship faster",
//	})
//	if block != nil {
//	    doc := markup.Serialize(*block)
//	}
package patterns
