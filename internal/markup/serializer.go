package markup

import (
	"reflect"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/forgewp/blockforge/internal/shared/types"
)

// coreNamespace is stripped from block names in comment markers.
const coreNamespace = "core/"

// json is the std-compatible sonic config: sorted map keys make attribute
// encoding deterministic across structurally-equal maps.
var json = sonic.ConfigStd

// Serialize renders one block into the comment-delimited grammar:
//
//	<!-- wp:name {attrs} -->
//	{html}
//	<!-- /wp:name -->
//
// Unknown block names fall back to a generic rule, so Serialize is total
// over arbitrary trees. Recursion depth follows tree depth.
func Serialize(b types.Block) string {
	short := shortName(b.Name)

	open := "<!-- wp:" + short
	if attrs := encodeAttributes(b); attrs != "" {
		open += " " + attrs
	}
	open += " -->"
	closing := "<!-- /wp:" + short + " -->"

	inner := renderInner(b)
	if inner == "" {
		return open + "\n" + closing
	}
	return open + "\n" + inner + "\n" + closing
}

// SerializeAll renders a sequence of root blocks joined by blank lines.
func SerializeAll(blocks []types.Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = Serialize(b)
	}
	return strings.Join(parts, "\n\n")
}

func shortName(name string) string {
	return strings.TrimPrefix(name, coreNamespace)
}

func renderInner(b types.Block) string {
	if rule, ok := rules[b.Name]; ok {
		return rule(b, renderChildren(b))
	}
	return genericInner(b)
}

// renderChildren serializes nested siblings joined by a single line break.
func renderChildren(b types.Block) string {
	if len(b.InnerBlocks) == 0 {
		return ""
	}
	parts := make([]string, len(b.InnerBlocks))
	for i, c := range b.InnerBlocks {
		parts[i] = Serialize(c)
	}
	return strings.Join(parts, "\n")
}

// genericInner is the fallback for unregistered names: literal content
// entries concatenated, then any serialized children.
func genericInner(b types.Block) string {
	var parts []string
	for _, c := range b.InnerContent {
		if c != nil && *c != "" {
			parts = append(parts, *c)
		}
	}
	if kids := renderChildren(b); kids != "" {
		parts = append(parts, kids)
	}
	return strings.Join(parts, "\n")
}

// attrDefaults lists attribute values that still drive rendering but are
// omitted from the encoded JSON when they equal the block default.
var attrDefaults = map[string]map[string]interface{}{
	"core/heading": {"level": 2},
}

// encodeAttributes produces the JSON attribute segment of the opening
// marker. Keys with nil or empty-string values are dropped; an empty map
// encodes to "" so the marker carries no attribute segment at all.
func encodeAttributes(b types.Block) string {
	defaults := attrDefaults[b.Name]

	filtered := make(map[string]interface{}, len(b.Attributes))
	for k, v := range b.Attributes {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		if d, ok := defaults[k]; ok && equalValue(v, d) {
			continue
		}
		filtered[k] = v
	}
	if len(filtered) == 0 {
		return ""
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		return ""
	}
	return string(data)
}

// equalValue compares attribute values, treating int and float64 as the
// same number (decoded JSON always carries float64).
func equalValue(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
