// Package qname provides a qualified XML name: a namespace URI paired with a
// local part.
package qname

import (
	"fmt"

	"github.com/flier/xdoc/pkg/opt"
)

// QName is a qualified name: an optional namespace URI plus a local part.
//
// Two QNames are Equal iff their namespace URIs and local parts are equal as
// Go strings. Since Go compares strings by content rather than by
// representation, this already satisfies "same name implies same identity"
// without any interning; interning (see internal/intern) only exists to
// deduplicate the backing memory for repeated names, not to make equality
// work.
type QName struct {
	URI   opt.Option[string]
	Local string
}

// New builds a QName with no namespace URI.
func New(local string) QName {
	return QName{Local: local}
}

// NewNS builds a QName qualified by a namespace URI.
func NewNS(uri, local string) QName {
	return QName{URI: opt.Some(uri), Local: local}
}

// Equal reports whether q and other name the same namespace URI and local part.
func (q QName) Equal(other QName) bool {
	return q.Local == other.Local && optStringEqual(q.URI, other.URI)
}

func optStringEqual(a, b opt.Option[string]) bool {
	if a.IsNone() || b.IsNone() {
		return a.IsNone() == b.IsNone()
	}

	return a.Unwrap() == b.Unwrap()
}

func (q QName) String() string {
	if q.URI.IsNone() {
		return q.Local
	}

	return fmt.Sprintf("{%s}%s", q.URI.Unwrap(), q.Local)
}
