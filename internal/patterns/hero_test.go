package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heroConfig() map[string]interface{} {
	return map[string]interface{}{
		"title":    "Ship faster",
		"subtitle": "Build sites in minutes",
		"primaryCta": map[string]interface{}{
			"text": "Get started", "url": "/signup",
		},
	}
}

func TestHero(t *testing.T) {
	t.Run("defaults to centered", func(t *testing.T) {
		b := Hero(heroConfig(), "")
		require.NotNil(t, b)
		assert.Equal(t, "core/group", b.Name)
		require.Len(t, b.InnerBlocks, 3)
		assert.Equal(t, "core/heading", b.InnerBlocks[0].Name)
		assert.Equal(t, "core/paragraph", b.InnerBlocks[1].Name)
		assert.Equal(t, "core/buttons", b.InnerBlocks[2].Name)
	})

	t.Run("unrecognized variant falls back to centered", func(t *testing.T) {
		a := Hero(heroConfig(), "")
		b := Hero(heroConfig(), "diagonal")
		assert.Equal(t, a, b)
	})

	t.Run("optional fields emit no blocks", func(t *testing.T) {
		b := Hero(map[string]interface{}{"title": "Bare"}, "centered")
		require.NotNil(t, b)
		require.Len(t, b.InnerBlocks, 1)
		assert.Equal(t, "core/heading", b.InnerBlocks[0].Name)
	})

	t.Run("secondary button included when present", func(t *testing.T) {
		cfg := heroConfig()
		cfg["secondaryCta"] = map[string]interface{}{"text": "Docs", "url": "/docs"}
		b := Hero(cfg, "centered")
		buttons := b.InnerBlocks[2]
		require.Equal(t, "core/buttons", buttons.Name)
		assert.Len(t, buttons.InnerBlocks, 2)
	})

	t.Run("split with image builds two columns", func(t *testing.T) {
		cfg := heroConfig()
		cfg["image"] = map[string]interface{}{"url": "/hero.png", "alt": "product"}
		b := Hero(cfg, "split")
		require.Equal(t, "core/columns", b.Name)
		require.Len(t, b.InnerBlocks, 2)
		media := b.InnerBlocks[1]
		require.Len(t, media.InnerBlocks, 1)
		assert.Equal(t, "core/image", media.InnerBlocks[0].Name)
	})

	t.Run("split without image emits only the text column", func(t *testing.T) {
		b := Hero(heroConfig(), "split")
		require.Equal(t, "core/columns", b.Name)
		assert.Len(t, b.InnerBlocks, 1)
	})

	t.Run("fullscreen wraps content in a cover", func(t *testing.T) {
		cfg := heroConfig()
		cfg["backgroundImage"] = "/bg.jpg"
		b := Hero(cfg, "fullscreen")
		require.Equal(t, "core/cover", b.Name)
		assert.Equal(t, "/bg.jpg", b.Attr("url", ""))
		assert.NotEmpty(t, b.InnerBlocks)
	})
}
