package patterns

import "github.com/forgewp/blockforge/internal/shared/types"

// placeholder renders the stand-in block for declared-but-unimplemented
// section types, e.g. "Gallery section coming soon".
func placeholder(section string) *types.Block {
	b := types.NewLeaf("core/paragraph",
		map[string]interface{}{"textAlign": "center"},
		capitalize(section)+" section coming soon")
	return &b
}
