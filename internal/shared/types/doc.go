// Package types provides the shared data structures for blockforge.
//
// The central type is Block, the node of the editor document tree that the
// pattern generators build and the markup serializer renders. Everything else
// in the repository speaks in terms of this one shape.
//
// Core Types:
//   - Block: one document tree node (name, attributes, content, children)
//
// Constructors:
//   - NewLeaf: childless block carrying rendered text
//   - NewContainer: wrapper block with one content placeholder per child
//
// Trees are finite and acyclic; a parent exclusively owns its children.
// Blocks are handed between packages as read-only values.
//
// Example Usage:
//
//	heading := types.NewLeaf("core/heading", nil, "Welcome")
//	group := types.NewContainer("core/group", nil, heading)
package types
