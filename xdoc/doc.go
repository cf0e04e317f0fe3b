// Package xdoc implements an in-memory XML node graph: an arena-backed store
// of Root/Element/Attribute/Text/Comment/ProcessingInstruction nodes with
// parent/child tree structure, namespace prefix resolution, and document-order
// sibling traversal.
//
// A [Storage] owns node memory and the string interner; it allocates nodes
// and mutates their scalar fields. A [Connections] holds a distinguished root
// and exposes the structural graph operations — read parent/children/
// attributes/siblings, append children (unlinking from any prior parent
// first), set attributes (replacing by name), and look up namespaces. Both
// share the same node memory; Connections never allocates nodes itself.
//
// Storage and Connections are not safe for concurrent mutation; see the
// doc on the [Connections] type for the concurrency model.
package xdoc

// XMLPrefix and XMLNamespaceURI are the permanently bound `xml` namespace
// prefix and its URI. [Connections.NamespacesInScope] always yields this pair
// first, and it cannot be permanently shadowed there (see
// [Connections.NamespacesInScope] for the documented asymmetry with
// [Connections.NamespaceURIForPrefix]).
const (
	XMLPrefix       = "xml"
	XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"
)
