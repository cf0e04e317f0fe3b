package xdoc

import (
	"iter"

	"github.com/flier/xdoc/internal/xsync"
	"github.com/flier/xdoc/pkg/opt"
)

// NamespaceURIForPrefix walks e and its Element ancestors, returning the URI
// bound to prefix by the nearest one that binds it locally. A Root parent (or
// no parent) ends the walk with none.
//
// The `xml` prefix may be rebound via [Storage.ElementRegisterPrefix] like
// any other prefix, and this method honors the nearest such rebinding — see
// [Connections.NamespacesInScope] for the deliberate asymmetry with that
// method, which does not.
func (c *Connections) NamespaceURIForPrefix(e *Element, prefix string) opt.Option[string] {
	cur := e

	for {
		if uri, ok := cur.prefixToURI[prefix]; ok {
			return opt.Some(uri)
		}

		if cur.parent.IsNone() {
			return opt.None[string]()
		}

		pe, ok := cur.parent.Unwrap().AsElement()
		if !ok {
			return opt.None[string]()
		}

		cur = pe
	}
}

// PrefixForNamespaceURI walks e and its Element ancestors, returning a prefix
// bound to uri at the nearest level that binds one.
//
// At each level: if preferred is given and bound to uri at that level, it is
// returned. Otherwise any one prefix bound to uri at that level is returned
// (tie-break is implementation-defined; callers must not depend on which —
// which prefix is returned is unspecified). Only then does the walk ascend.
func (c *Connections) PrefixForNamespaceURI(e *Element, uri string, preferred opt.Option[string]) opt.Option[string] {
	cur := e

	for {
		var found opt.Option[string]

		for prefix, boundURI := range cur.prefixToURI {
			if boundURI != uri {
				continue
			}

			if preferred.IsSome() && prefix == preferred.Unwrap() {
				return opt.Some(prefix)
			}

			if found.IsNone() {
				found = opt.Some(prefix)
			}
		}

		if found.IsSome() {
			return found
		}

		if cur.parent.IsNone() {
			return opt.None[string]()
		}

		pe, ok := cur.parent.Unwrap().AsElement()
		if !ok {
			return opt.None[string]()
		}

		cur = pe
	}
}

// NamespacesInScope returns the (prefix, uri) pairs visible at e: the fixed
// `xml` binding, then e's own local bindings and each Element ancestor's in
// nearest-to-farthest order, skipping any prefix already emitted.
//
// Because `xml` is seeded before the walk begins, a local rebinding of `xml`
// anywhere in the tree is silently dropped here — unlike
// [Connections.NamespaceURIForPrefix], which does honor such a rebinding.
// This asymmetry is intentional, not a bug.
func (c *Connections) NamespacesInScope(e *Element) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		var seen xsync.Set[string]

		seen.Store(XMLPrefix)

		if !yield(XMLPrefix, XMLNamespaceURI) {
			return
		}

		cur := e

		for {
			for prefix, uri := range cur.prefixToURI {
				if seen.Load(prefix) {
					continue
				}

				seen.Store(prefix)

				if !yield(prefix, uri) {
					return
				}
			}

			if cur.parent.IsNone() {
				return
			}

			pe, ok := cur.parent.Unwrap().AsElement()
			if !ok {
				return
			}

			cur = pe
		}
	}
}
