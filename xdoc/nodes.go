package xdoc

import (
	"github.com/flier/xdoc/pkg/opt"
	"github.com/flier/xdoc/pkg/qname"
)

// Root anchors a document. It may hold any number of Comment and
// ProcessingInstruction children but at most one Element child.
type Root struct {
	children []ChildOfRoot
}

// Children returns Root's children in document order.
func (r *Root) Children() []ChildOfRoot { return r.children }

// Element is a named node that may carry attributes, local namespace prefix
// bindings, and children of its own.
type Element struct {
	name            qname.QName
	preferredPrefix opt.Option[string]
	parent          opt.Option[ParentOfChild]
	children        []ChildOfElement
	attributes      []*Attribute
	prefixToURI     map[string]string
}

// Name returns e's qualified name.
func (e *Element) Name() qname.QName { return e.name }

// PreferredPrefix returns the advisory prefix hint set by
// [Storage.ElementSetPreferredPrefix], if any.
func (e *Element) PreferredPrefix() opt.Option[string] { return e.preferredPrefix }

// Children returns e's children in document order.
func (e *Element) Children() []ChildOfElement { return e.children }

// Attributes returns e's attributes in unspecified order.
func (e *Element) Attributes() []*Attribute { return e.attributes }

// Attribute is a named value attached to at most one Element.
type Attribute struct {
	name            qname.QName
	preferredPrefix opt.Option[string]
	value           string
	parent          opt.Option[*Element]
}

// Name returns a's qualified name.
func (a *Attribute) Name() qname.QName { return a.name }

// PreferredPrefix returns the advisory prefix hint set by
// [Storage.AttributeSetPreferredPrefix], if any.
func (a *Attribute) PreferredPrefix() opt.Option[string] { return a.preferredPrefix }

// Value returns a's value.
func (a *Attribute) Value() string { return a.value }

// Text is a run of character data attached to at most one Element. Unlike
// Comment and ProcessingInstruction, Text can never attach to Root.
type Text struct {
	value  string
	parent opt.Option[*Element]
}

// Value returns t's text.
func (t *Text) Value() string { return t.value }

// Comment is a comment node, attachable to Root or an Element.
type Comment struct {
	value  string
	parent opt.Option[ParentOfChild]
}

// Value returns c's text.
func (c *Comment) Value() string { return c.value }

// ProcessingInstruction is a processing instruction, attachable to Root or an
// Element.
type ProcessingInstruction struct {
	target string
	value  opt.Option[string]
	parent opt.Option[ParentOfChild]
}

// Target returns pi's target.
func (pi *ProcessingInstruction) Target() string { return pi.target }

// Value returns pi's value, if any.
func (pi *ProcessingInstruction) Value() opt.Option[string] { return pi.value }
