package blueprint

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forgewp/blockforge/internal/markup"
	"github.com/forgewp/blockforge/internal/patterns"
	"github.com/forgewp/blockforge/internal/sanitize"
	"github.com/forgewp/blockforge/internal/shared/types"
	"github.com/forgewp/blockforge/internal/theme"
)

var json = sonic.ConfigStd

// Document is the compiled output of one blueprint: the page markup and,
// when the blueprint carries a theme block, the style descriptor.
type Document struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Markup     string            `json:"markup"`
	Descriptor *theme.Descriptor `json:"descriptor,omitempty"`
	Skipped    []string          `json:"skipped,omitempty"`
}

// Compiler turns blueprints into documents.
type Compiler struct {
	logger   *zap.Logger
	sanitize bool
}

// NewCompiler creates a compiler. The sanitize flag runs section copy
// through the UGC policy before generation.
func NewCompiler(logger *zap.Logger, sanitizeInput bool) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{logger: logger, sanitize: sanitizeInput}
}

// Compile parses and composes a blueprint in one step.
func (c *Compiler) Compile(content []byte) (*Document, error) {
	bp, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return c.Compose(bp), nil
}

// Compose generates every section of a parsed blueprint in order and
// serializes them into a single document. Sections resolving to nil
// (unknown types) are skipped and reported in Document.Skipped.
func (c *Compiler) Compose(bp *Blueprint) *Document {
	doc := &Document{
		ID:    uuid.NewString(),
		Title: bp.Site.Title,
	}

	var roots []types.Block
	for _, s := range bp.Sections {
		cfg := s.Config
		if c.sanitize {
			cfg = sanitize.Config(cfg)
		}
		block := patterns.Generate(s.Type, s.Variant, cfg)
		if block == nil {
			c.logger.Warn("Skipping unknown section type", zap.String("type", s.Type))
			doc.Skipped = append(doc.Skipped, s.Type)
			continue
		}
		roots = append(roots, *block)
	}
	doc.Markup = markup.SerializeAll(roots)

	if bp.Theme != nil {
		var cfg theme.Config
		if data, err := json.Marshal(bp.Theme); err == nil {
			_ = json.Unmarshal(data, &cfg)
		}
		d := theme.Build(cfg)
		doc.Descriptor = &d
	}
	return doc
}
