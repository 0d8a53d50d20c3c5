// Package blueprint parses site blueprint YAML and compiles it into
// editor-ready artifacts.
//
// A blueprint describes one page: site metadata, an ordered sections list
// (each entry a section type, an optional layout variant, and the section's
// configuration fields inline), and an optional theme block. Compilation
// generates each section through the patterns registry, serializes the
// resulting trees into one markup document, and builds the theme descriptor
// when a theme block is present.
//
// Example blueprint:
//
//	site:
//	  title: Acme
//	sections:
//	  - type: hero
//	    variant: split
//	    title: Ship faster
//	  - type: footer
//	    siteName: Acme
//	theme:
//	  colors:
//	    primary: "#0B6E4F"
package blueprint
