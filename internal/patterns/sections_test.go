package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewp/blockforge/internal/markup"
)

func TestCTA(t *testing.T) {
	cfg := map[string]interface{}{
		"title":       "Ready?",
		"description": "Start your trial today.",
		"primaryCta":  map[string]interface{}{"text": "Start", "url": "/start"},
	}

	t.Run("banner is the default", func(t *testing.T) {
		a := CTA(cfg, "")
		b := CTA(cfg, "banner")
		assert.Equal(t, a, b)
		require.Equal(t, "core/group", a.Name)
	})

	t.Run("background color lands on the group", func(t *testing.T) {
		withBg := map[string]interface{}{"title": "Go", "backgroundColor": "primary"}
		b := CTA(withBg, "banner")
		assert.Equal(t, "primary", b.Attr("backgroundColor", ""))
	})

	t.Run("missing button degrades to no row, not an error", func(t *testing.T) {
		b := CTA(map[string]interface{}{"title": "Go"}, "banner")
		require.Len(t, b.InnerBlocks, 1)
	})

	t.Run("button without url renders hash href", func(t *testing.T) {
		b := CTA(map[string]interface{}{
			"title":      "Go",
			"primaryCta": map[string]interface{}{"text": "Start"},
		}, "banner")
		assert.Contains(t, markup.Serialize(*b), `href="#"`)
	})

	t.Run("split puts buttons in their own column", func(t *testing.T) {
		b := CTA(cfg, "split")
		require.Len(t, b.InnerBlocks, 1)
		cols := b.InnerBlocks[0]
		require.Equal(t, "core/columns", cols.Name)
		require.Len(t, cols.InnerBlocks, 2)
		assert.Equal(t, "core/buttons", cols.InnerBlocks[1].InnerBlocks[0].Name)
	})
}

func TestTestimonials(t *testing.T) {
	cfg := map[string]interface{}{
		"title": "Loved by teams",
		"testimonials": []interface{}{
			map[string]interface{}{"quote": "Great.", "author": "Ada", "role": "CTO"},
			map[string]interface{}{"quote": "Solid.", "author": "Grace"},
			map[string]interface{}{"quote": "Fast.", "author": "Lin"},
		},
	}

	t.Run("grid chunks quotes in pairs", func(t *testing.T) {
		b := Testimonials(cfg, "")
		rows := b.InnerBlocks[2:]
		require.Len(t, rows, 2)
		assert.Len(t, rows[0].InnerBlocks, 2)
		assert.Len(t, rows[1].InnerBlocks, 1)
	})

	t.Run("citation joins author and role", func(t *testing.T) {
		b := Testimonials(cfg, "single")
		out := markup.Serialize(*b)
		assert.Contains(t, out, "<cite>Ada, CTO</cite>")
	})

	t.Run("single with no quotes emits no quote block", func(t *testing.T) {
		b := Testimonials(map[string]interface{}{"title": "T"}, "single")
		require.Len(t, b.InnerBlocks, 1)
	})
}

func TestFooter(t *testing.T) {
	t.Run("simple builds copyright from site name", func(t *testing.T) {
		b := Footer(map[string]interface{}{"siteName": "Acme"}, "")
		out := markup.Serialize(*b)
		assert.Contains(t, out, "&copy; Acme. All rights reserved.")
	})

	t.Run("explicit copyright wins", func(t *testing.T) {
		b := Footer(map[string]interface{}{
			"siteName":  "Acme",
			"copyright": "Copyright 2026 Acme Inc.",
		}, "simple")
		out := markup.Serialize(*b)
		assert.Contains(t, out, "Copyright 2026 Acme Inc.")
		assert.NotContains(t, out, "All rights reserved")
	})

	t.Run("links render as anchors in order", func(t *testing.T) {
		b := Footer(map[string]interface{}{
			"siteName": "Acme",
			"links": []interface{}{
				map[string]interface{}{"text": "About", "url": "/about"},
				map[string]interface{}{"text": "Blog", "url": "/blog"},
			},
		}, "simple")
		out := markup.Serialize(*b)
		assert.Contains(t, out, `<a href="/about">About</a> &middot; <a href="/blog">Blog</a>`)
	})

	t.Run("columns variant builds one list per column", func(t *testing.T) {
		b := Footer(map[string]interface{}{
			"siteName": "Acme",
			"columns": []interface{}{
				map[string]interface{}{
					"title": "Product",
					"links": []interface{}{
						map[string]interface{}{"text": "Pricing", "url": "/pricing"},
					},
				},
				map[string]interface{}{
					"title": "Company",
					"links": []interface{}{
						map[string]interface{}{"text": "About", "url": "/about"},
					},
				},
			},
		}, "columns")
		cols := b.InnerBlocks[0]
		require.Equal(t, "core/columns", cols.Name)
		require.Len(t, cols.InnerBlocks, 2)
		assert.Equal(t, "core/list", cols.InnerBlocks[0].InnerBlocks[1].Name)
	})
}

func TestPricing(t *testing.T) {
	cfg := map[string]interface{}{
		"title": "Pricing",
		"plans": []interface{}{
			map[string]interface{}{
				"name": "Free", "price": "$0", "period": "month",
				"features": []interface{}{"1 site", "Community support"},
				"cta":      map[string]interface{}{"text": "Start", "url": "/free"},
			},
			map[string]interface{}{
				"name": "Pro", "price": "$29", "period": "month",
				"features":    []interface{}{"10 sites"},
				"highlighted": true,
			},
		},
	}

	b := Pricing(cfg, "")
	require.NotNil(t, b)
	cols := b.InnerBlocks[len(b.InnerBlocks)-1]
	require.Equal(t, "core/columns", cols.Name)
	require.Len(t, cols.InnerBlocks, 2)

	free := cols.InnerBlocks[0]
	assert.Equal(t, "Free", free.InnerBlocks[0].Text())

	pro := cols.InnerBlocks[1]
	assert.Equal(t, "tertiary", pro.Attr("backgroundColor", ""))

	out := markup.Serialize(*b)
	assert.Contains(t, out, "<strong>$0 / month</strong>")
	assert.Contains(t, out, "<li>1 site</li>")
	assertPlaceholderContract(t, *b)
}

func TestTeam(t *testing.T) {
	cfg := map[string]interface{}{
		"title": "The team",
		"members": []interface{}{
			map[string]interface{}{"name": "Ada", "role": "CTO", "photo": map[string]interface{}{"url": "/ada.png"}},
			map[string]interface{}{"name": "Grace", "role": "Engineer"},
			map[string]interface{}{"name": "Lin"},
			map[string]interface{}{"name": "Mary"},
		},
	}

	b := Team(cfg, "")
	rows := b.InnerBlocks[2:]
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].InnerBlocks, 3)
	assert.Len(t, rows[1].InnerBlocks, 1)

	// Photo alt falls back to the member name.
	ada := rows[0].InnerBlocks[0]
	assert.Equal(t, "core/image", ada.InnerBlocks[0].Name)
	assert.Equal(t, "Ada", ada.InnerBlocks[0].Attr("alt", ""))

	// No photo means no image block.
	lin := rows[0].InnerBlocks[2]
	assert.Equal(t, "core/heading", lin.InnerBlocks[0].Name)
}

func TestStats(t *testing.T) {
	b := Stats(map[string]interface{}{
		"stats": []interface{}{
			map[string]interface{}{"value": "12k", "label": "Sites built"},
			map[string]interface{}{"value": "99.9%", "label": "Uptime"},
		},
	}, "")
	require.NotNil(t, b)
	require.Len(t, b.InnerBlocks, 1) // no title, just the row
	row := b.InnerBlocks[0]
	require.Len(t, row.InnerBlocks, 2)
	assert.Equal(t, "12k", row.InnerBlocks[0].InnerBlocks[0].Text())
}

func TestLogos(t *testing.T) {
	b := Logos(map[string]interface{}{
		"title": "Trusted by",
		"logos": []interface{}{
			map[string]interface{}{"url": "/l1.svg", "alt": "One"},
			map[string]interface{}{"url": "/l2.svg", "alt": "Two"},
		},
	}, "")
	require.Len(t, b.InnerBlocks, 2)
	row := b.InnerBlocks[1]
	require.Len(t, row.InnerBlocks, 2)
	assert.Equal(t, "core/image", row.InnerBlocks[0].InnerBlocks[0].Name)
}

func TestFAQ(t *testing.T) {
	b := FAQ(map[string]interface{}{
		"title": "FAQ",
		"items": []interface{}{
			map[string]interface{}{"question": "Is it free?", "answer": "Yes."},
			map[string]interface{}{"question": "Can I export?", "answer": "Always."},
		},
	}, "")
	require.Len(t, b.InnerBlocks, 5) // heading + 2x(question, answer)
	assert.Equal(t, "Is it free?", b.InnerBlocks[1].Text())
	assert.Equal(t, "Yes.", b.InnerBlocks[2].Text())
}
