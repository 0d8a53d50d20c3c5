package patterns

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featuresConfig(n int) map[string]interface{} {
	items := make([]interface{}, n)
	for i := range items {
		items[i] = map[string]interface{}{
			"title":       fmt.Sprintf("Feature %d", i+1),
			"description": fmt.Sprintf("Description %d", i+1),
		}
	}
	return map[string]interface{}{
		"title":    "What you get",
		"features": items,
	}
}

func TestFeaturesGrid(t *testing.T) {
	t.Run("empty variant defaults to 3-column grid", func(t *testing.T) {
		b := Features(featuresConfig(5), "")
		require.NotNil(t, b)
		require.Equal(t, "core/group", b.Name)

		// heading, spacer, then row groups
		require.GreaterOrEqual(t, len(b.InnerBlocks), 3)
		assert.Equal(t, "core/heading", b.InnerBlocks[0].Name)
		assert.Equal(t, "core/spacer", b.InnerBlocks[1].Name)

		rows := b.InnerBlocks[2:]
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "core/columns", row.Name)
			assert.LessOrEqual(t, len(row.InnerBlocks), 3)
		}
		// 5 items chunk into 3 + 2
		assert.Len(t, rows[0].InnerBlocks, 3)
		assert.Len(t, rows[1].InnerBlocks, 2)
	})

	t.Run("input order preserved across chunks", func(t *testing.T) {
		b := Features(featuresConfig(4), "grid")
		rows := b.InnerBlocks[2:]
		require.Len(t, rows, 2)

		got := []string{}
		for _, row := range rows {
			for _, col := range row.InnerBlocks {
				require.NotEmpty(t, col.InnerBlocks)
				got = append(got, col.InnerBlocks[0].Text())
			}
		}
		assert.Equal(t, []string{"Feature 1", "Feature 2", "Feature 3", "Feature 4"}, got)
	})

	t.Run("no features yields header only", func(t *testing.T) {
		b := Features(map[string]interface{}{"title": "Empty"}, "grid")
		require.Len(t, b.InnerBlocks, 2) // heading + spacer, no rows
	})

	t.Run("placeholder contract holds recursively", func(t *testing.T) {
		b := Features(featuresConfig(7), "grid")
		assertPlaceholderContract(t, *b)
	})
}

func TestFeaturesAlternating(t *testing.T) {
	cfg := featuresConfig(3)
	items := cfg["features"].([]interface{})
	for i, it := range items {
		it.(map[string]interface{})["image"] = map[string]interface{}{
			"url": fmt.Sprintf("/f%d.png", i+1),
		}
	}

	b := Features(cfg, "alternating")
	require.NotNil(t, b)
	rows := b.InnerBlocks[1:]
	require.Len(t, rows, 3)

	// Even item index leads with media.
	first := rows[0]
	require.Len(t, first.InnerBlocks, 2)
	assert.Equal(t, "core/image", first.InnerBlocks[0].InnerBlocks[0].Name)

	second := rows[1]
	require.Len(t, second.InnerBlocks, 2)
	assert.Equal(t, "core/heading", second.InnerBlocks[0].InnerBlocks[0].Name)

	third := rows[2]
	assert.Equal(t, "core/image", third.InnerBlocks[0].InnerBlocks[0].Name)
}

func TestFeaturesAlternatingWithoutImages(t *testing.T) {
	b := Features(featuresConfig(2), "alternating")
	rows := b.InnerBlocks[1:]
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row.InnerBlocks, 1, "no media column without an image")
	}
}

func TestFeaturesCentered(t *testing.T) {
	b := Features(featuresConfig(2), "centered")
	require.NotNil(t, b)
	groups := b.InnerBlocks[1:]
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.Equal(t, "core/group", g.Name)
	}
}
