package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewp/blockforge/internal/markup"
	"github.com/forgewp/blockforge/internal/shared/types"
)

// assertPlaceholderContract walks a tree checking that every node's
// content-placeholder count equals its child count.
func assertPlaceholderContract(t *testing.T, b types.Block) {
	t.Helper()
	if len(b.InnerBlocks) > 0 {
		assert.Equal(t, len(b.InnerBlocks), b.Placeholders(),
			"placeholder count mismatch in %s", b.Name)
	}
	for _, c := range b.InnerBlocks {
		assertPlaceholderContract(t, c)
	}
}

func TestGenerateDispatch(t *testing.T) {
	t.Run("composed section types return a tree", func(t *testing.T) {
		for _, section := range []string{
			"hero", "features", "cta", "testimonials", "footer",
			"pricing", "team", "stats", "logos", "faq",
		} {
			b := Generate(section, "", map[string]interface{}{"title": "T"})
			require.NotNil(t, b, section)
			assertPlaceholderContract(t, *b)
		}
	})

	t.Run("pending section type yields coming soon placeholder", func(t *testing.T) {
		b := Generate("gallery", "", nil)
		require.NotNil(t, b)
		assert.Empty(t, b.InnerBlocks)
		assert.Contains(t, markup.Serialize(*b), "Gallery section coming soon")
	})

	t.Run("unknown section type yields nil", func(t *testing.T) {
		assert.Nil(t, Generate("carousel", "", nil))
		assert.Nil(t, Generate("", "", nil))
	})

	t.Run("nil config never panics", func(t *testing.T) {
		for _, section := range SectionNames() {
			assert.NotPanics(t, func() {
				Generate(section, "", nil)
			}, section)
		}
	})
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	assert.Equal(t, []string{"centered", "split", "fullscreen"}, catalog["hero"])
	assert.Equal(t, []string{"grid", "alternating", "centered"}, catalog["features"])
	assert.Empty(t, catalog["gallery"])

	_, unknown := catalog["carousel"]
	assert.False(t, unknown)

	assert.True(t, Known("hero"))
	assert.True(t, Known("blog"))
	assert.False(t, Known("carousel"))
}
