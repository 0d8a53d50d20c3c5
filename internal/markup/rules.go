package markup

import (
	"fmt"
	"strings"

	"github.com/forgewp/blockforge/internal/shared/types"
)

// renderRule produces the HTML fragment between a block's comment markers.
// children is the already-serialized child markup (siblings joined by a
// single line break), empty for leaf blocks.
type renderRule func(b types.Block, children string) string

// rules maps block names to their rendering rule. Names not present here
// are handled by the generic fallback in serializer.go.
var rules = map[string]renderRule{
	"core/group":     renderGroup,
	"core/columns":   renderColumns,
	"core/column":    renderColumn,
	"core/cover":     renderCover,
	"core/buttons":   renderButtons,
	"core/heading":   renderHeading,
	"core/paragraph": renderParagraph,
	"core/image":     renderImage,
	"core/button":    renderButton,
	"core/spacer":    renderSpacer,
	"core/separator": renderSeparator,
	"core/list":      renderList,
	"core/list-item": renderListItem,
	"core/quote":     renderQuote,
}

// classList joins non-empty class contributions in a stable order.
func classList(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// classAttr renders a class attribute, or nothing when the list is empty.
func classAttr(classes string) string {
	if classes == "" {
		return ""
	}
	return ` class="` + classes + `"`
}

func textAlignClass(b types.Block) string {
	if v := b.Attr("textAlign", ""); v != "" {
		return "has-text-align-" + v
	}
	return ""
}

func backgroundClass(b types.Block) string {
	if v := b.Attr("backgroundColor", ""); v != "" {
		return "has-" + v + "-background-color"
	}
	return ""
}

func renderGroup(b types.Block, children string) string {
	cls := classList("wp-block-group", backgroundClass(b))
	return `<div` + classAttr(cls) + `>` + children + `</div>`
}

func renderColumns(b types.Block, children string) string {
	return `<div class="wp-block-columns">` + children + `</div>`
}

func renderColumn(b types.Block, children string) string {
	cls := classList("wp-block-column", backgroundClass(b))
	return `<div` + classAttr(cls) + `>` + children + `</div>`
}

// renderCover wraps children in a full-viewport background container.
func renderCover(b types.Block, children string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="wp-block-cover">`)
	if url := b.Attr("url", ""); url != "" {
		sb.WriteString(`<img class="wp-block-cover__image-background" alt="" src="` + url + `" data-object-fit="cover"/>`)
	}
	sb.WriteString(`<span aria-hidden="true" class="wp-block-cover__background has-background-dim"></span>`)
	sb.WriteString(`<div class="wp-block-cover__inner-container">` + children + `</div></div>`)
	return sb.String()
}

func renderButtons(b types.Block, children string) string {
	return `<div class="wp-block-buttons">` + children + `</div>`
}

func renderHeading(b types.Block, _ string) string {
	level := b.IntAttr("level", 2)
	if level < 1 || level > 6 {
		level = 2
	}
	tag := fmt.Sprintf("h%d", level)
	cls := classList("wp-block-heading", textAlignClass(b), backgroundClass(b))
	return "<" + tag + classAttr(cls) + ">" + b.Text() + "</" + tag + ">"
}

func renderParagraph(b types.Block, _ string) string {
	cls := classList(textAlignClass(b), backgroundClass(b))
	return "<p" + classAttr(cls) + ">" + b.Text() + "</p>"
}

// renderImage emits a figure wrapping an img, with an optional caption.
// A missing url degrades to an empty src rather than failing.
func renderImage(b types.Block, _ string) string {
	img := `<img src="` + b.Attr("url", "") + `"`
	if alt := b.Attr("alt", ""); alt != "" {
		img += ` alt="` + alt + `"`
	}
	if w := b.IntAttr("width", 0); w > 0 {
		img += fmt.Sprintf(` width="%d"`, w)
	}
	if h := b.IntAttr("height", 0); h > 0 {
		img += fmt.Sprintf(` height="%d"`, h)
	}
	img += `/>`

	out := `<figure class="wp-block-image">` + img
	if cap := b.Attr("caption", ""); cap != "" {
		out += `<figcaption>` + cap + `</figcaption>`
	}
	return out + `</figure>`
}

func renderButton(b types.Block, _ string) string {
	url := b.Attr("url", "#")
	return `<div class="wp-block-button"><a class="wp-block-button__link" href="` + url + `">` + b.Text() + `</a></div>`
}

const defaultSpacerHeight = "100px"

func renderSpacer(b types.Block, _ string) string {
	height := b.Attr("height", defaultSpacerHeight)
	return `<div style="height:` + height + `" aria-hidden="true" class="wp-block-spacer"></div>`
}

func renderSeparator(b types.Block, _ string) string {
	cls := classList("wp-block-separator", backgroundClass(b))
	return `<hr` + classAttr(cls) + `/>`
}

func renderList(b types.Block, children string) string {
	tag := "ul"
	if ordered, ok := b.Attributes["ordered"].(bool); ok && ordered {
		tag = "ol"
	}
	return "<" + tag + ` class="wp-block-list">` + children + "</" + tag + ">"
}

func renderListItem(b types.Block, _ string) string {
	return "<li>" + b.Text() + "</li>"
}

// renderQuote wraps children in a blockquote, appending a cite element when
// the citation attribute is present.
func renderQuote(b types.Block, children string) string {
	out := `<blockquote class="wp-block-quote">` + children
	if cite := b.Attr("citation", ""); cite != "" {
		out += "<cite>" + cite + "</cite>"
	}
	return out + "</blockquote>"
}
