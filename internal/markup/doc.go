// Package markup serializes block trees into the comment-delimited editor
// grammar.
//
// Dispatch is a fixed block-name -> render-rule registry with a generic
// fallback, so serialization is total over arbitrary trees: an unknown name
// concatenates its literal content, appends its serialized children, and
// still gets the standard comment pair.
//
// Wire format:
//   - one block: "<!-- wp:name {attrs} -->\n{html}\n<!-- /wp:name -->"
//   - root siblings joined by a blank line, nested siblings by one line break
//   - attribute JSON drops nil/empty values and is omitted when empty
//
// Attribute encoding uses sonic's std-compatible config (sorted map keys),
// so structurally-equal attribute maps always encode to identical text.
//
// The serializer never escapes or sanitizes HTML fragment content; it is
// treated as pre-formed trusted markup. See the sanitize package for the
// opt-in boundary pass.
package markup
