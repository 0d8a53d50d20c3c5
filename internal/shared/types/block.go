package types

// Block represents one node of an editor document tree. Name identifies the
// rendering rule ("<namespace>/<type>"), Attributes is a free-form JSON-shaped
// map interpreted by the renderer, InnerContent interleaves literal HTML
// fragments with nil placeholders marking where child blocks render, and
// InnerBlocks holds the ordered children for container blocks.
//
// A Block is a plain value. Once built it is read-only: the serializer never
// mutates it and generators never share subtrees between parents.
type Block struct {
	Name         string                 `json:"name"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	InnerContent []*string              `json:"innerContent"`
	InnerBlocks  []Block                `json:"innerBlocks,omitempty"`
}

// HTML returns a pointer suitable for an InnerContent literal entry.
func HTML(fragment string) *string {
	return &fragment
}

// NewLeaf creates a childless block whose rendered text is content.
func NewLeaf(name string, attrs map[string]interface{}, content string) Block {
	b := Block{Name: name, Attributes: attrs}
	if content != "" {
		b.InnerContent = []*string{HTML(content)}
	}
	return b
}

// NewContainer creates a block wrapping children. InnerContent carries one
// placeholder per child so content positions always track the child list.
func NewContainer(name string, attrs map[string]interface{}, children ...Block) Block {
	b := Block{Name: name, Attributes: attrs, InnerBlocks: children}
	b.InnerContent = make([]*string, len(children))
	return b
}

// Placeholders counts the nil entries in InnerContent.
func (b Block) Placeholders() int {
	n := 0
	for _, c := range b.InnerContent {
		if c == nil {
			n++
		}
	}
	return n
}

// Text returns the first literal InnerContent entry, or "".
func (b Block) Text() string {
	for _, c := range b.InnerContent {
		if c != nil {
			return *c
		}
	}
	return ""
}

// Attr returns a string attribute, or fallback when absent or not a string.
func (b Block) Attr(key, fallback string) string {
	if v, ok := b.Attributes[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// IntAttr returns a numeric attribute as int, or fallback when absent.
// JSON decoding produces float64, so both int and float64 are accepted.
func (b Block) IntAttr(key string, fallback int) int {
	switch v := b.Attributes[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}
