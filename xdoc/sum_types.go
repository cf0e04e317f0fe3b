package xdoc

import "github.com/flier/xdoc/pkg/either"

// ParentOfChild is the disjoint union of the two node kinds that may parent a
// Comment or ProcessingInstruction: Root or Element. Text and Attribute are
// narrower — they can only ever have an Element parent — so they are typed
// directly as opt.Option[*Element] rather than through this union.
type ParentOfChild struct {
	inner either.Either[*Root, *Element]
}

func parentOfRoot(r *Root) ParentOfChild {
	return ParentOfChild{either.Left[*Root, *Element](r)}
}

func parentOfElement(e *Element) ParentOfChild {
	return ParentOfChild{either.Right[*Root](e)}
}

// IsRoot reports whether p is Root.
func (p ParentOfChild) IsRoot() bool { return p.inner.HasLeft() }

// IsElement reports whether p is an Element.
func (p ParentOfChild) IsElement() bool { return p.inner.HasRight() }

// AsRoot returns p's Root, if p is Root.
func (p ParentOfChild) AsRoot() (*Root, bool) {
	if p.inner.HasLeft() {
		return p.inner.UnwrapLeft(), true
	}

	return nil, false
}

// AsElement returns p's Element, if p is an Element.
func (p ParentOfChild) AsElement() (*Element, bool) {
	if p.inner.HasRight() {
		return p.inner.UnwrapRight(), true
	}

	return nil, false
}

func (p ParentOfChild) identity() any {
	if r, ok := p.AsRoot(); ok {
		return r
	}

	e, _ := p.AsElement()

	return e
}

// ChildOfRoot is the disjoint union of the node kinds that may be a direct
// child of Root: Element, Comment, or ProcessingInstruction.
type ChildOfRoot struct {
	inner either.Either[*Element, either.Either[*Comment, *ProcessingInstruction]]
}

// ChildOfRootFromElement wraps e as a Root child.
func ChildOfRootFromElement(e *Element) ChildOfRoot {
	return ChildOfRoot{either.Left[*Element, either.Either[*Comment, *ProcessingInstruction]](e)}
}

// ChildOfRootFromComment wraps c as a Root child.
func ChildOfRootFromComment(c *Comment) ChildOfRoot {
	return ChildOfRoot{either.Right[*Element](either.Left[*Comment, *ProcessingInstruction](c))}
}

// ChildOfRootFromProcessingInstruction wraps pi as a Root child.
func ChildOfRootFromProcessingInstruction(pi *ProcessingInstruction) ChildOfRoot {
	return ChildOfRoot{either.Right[*Element](either.Right[*Comment](pi))}
}

// IsElement reports whether c is an Element.
func (c ChildOfRoot) IsElement() bool { return c.inner.HasLeft() }

// Element returns c's Element, if c is one.
func (c ChildOfRoot) Element() (*Element, bool) {
	if c.inner.HasLeft() {
		return c.inner.UnwrapLeft(), true
	}

	return nil, false
}

// Comment returns c's Comment, if c is one.
func (c ChildOfRoot) Comment() (*Comment, bool) {
	if !c.inner.HasRight() {
		return nil, false
	}

	rest := c.inner.UnwrapRight()
	if !rest.HasLeft() {
		return nil, false
	}

	return rest.UnwrapLeft(), true
}

// ProcessingInstruction returns c's ProcessingInstruction, if c is one.
func (c ChildOfRoot) ProcessingInstruction() (*ProcessingInstruction, bool) {
	if !c.inner.HasRight() {
		return nil, false
	}

	rest := c.inner.UnwrapRight()
	if !rest.HasRight() {
		return nil, false
	}

	return rest.UnwrapRight(), true
}

func (c ChildOfRoot) identity() any {
	if e, ok := c.Element(); ok {
		return e
	}

	if cm, ok := c.Comment(); ok {
		return cm
	}

	pi, _ := c.ProcessingInstruction()

	return pi
}

// widen converts c into the broader element-child union, as required when
// presenting Root's children alongside Element's in sibling iteration (spec
// §4.4: "a Root child ... widens to the element-child union with the same
// underlying handle").
func (c ChildOfRoot) widen() ChildOfElement {
	if e, ok := c.Element(); ok {
		return ChildOfElementFromElement(e)
	}

	if cm, ok := c.Comment(); ok {
		return ChildOfElementFromComment(cm)
	}

	pi, _ := c.ProcessingInstruction()

	return ChildOfElementFromProcessingInstruction(pi)
}

// ChildOfElement is the disjoint union of the node kinds that may be a direct
// child of an Element: Element, Text, Comment, or ProcessingInstruction.
type ChildOfElement struct {
	inner either.Either[*Element, either.Either[*Text, either.Either[*Comment, *ProcessingInstruction]]]
}

// ChildOfElementFromElement wraps e as an Element child.
func ChildOfElementFromElement(e *Element) ChildOfElement {
	return ChildOfElement{either.Left[*Element, either.Either[*Text, either.Either[*Comment, *ProcessingInstruction]]](e)}
}

// ChildOfElementFromText wraps t as an Element child.
func ChildOfElementFromText(t *Text) ChildOfElement {
	return ChildOfElement{either.Right[*Element](
		either.Left[*Text, either.Either[*Comment, *ProcessingInstruction]](t),
	)}
}

// ChildOfElementFromComment wraps c as an Element child.
func ChildOfElementFromComment(c *Comment) ChildOfElement {
	return ChildOfElement{either.Right[*Element](
		either.Right[*Text](either.Left[*Comment, *ProcessingInstruction](c)),
	)}
}

// ChildOfElementFromProcessingInstruction wraps pi as an Element child.
func ChildOfElementFromProcessingInstruction(pi *ProcessingInstruction) ChildOfElement {
	return ChildOfElement{either.Right[*Element](
		either.Right[*Text](either.Right[*Comment](pi)),
	)}
}

// IsElement reports whether c is an Element.
func (c ChildOfElement) IsElement() bool { return c.inner.HasLeft() }

// Element returns c's Element, if c is one.
func (c ChildOfElement) Element() (*Element, bool) {
	if c.inner.HasLeft() {
		return c.inner.UnwrapLeft(), true
	}

	return nil, false
}

// Text returns c's Text, if c is one.
func (c ChildOfElement) Text() (*Text, bool) {
	if !c.inner.HasRight() {
		return nil, false
	}

	rest := c.inner.UnwrapRight()
	if !rest.HasLeft() {
		return nil, false
	}

	return rest.UnwrapLeft(), true
}

// Comment returns c's Comment, if c is one.
func (c ChildOfElement) Comment() (*Comment, bool) {
	if !c.inner.HasRight() {
		return nil, false
	}

	rest := c.inner.UnwrapRight()
	if !rest.HasRight() {
		return nil, false
	}

	rest2 := rest.UnwrapRight()
	if !rest2.HasLeft() {
		return nil, false
	}

	return rest2.UnwrapLeft(), true
}

// ProcessingInstruction returns c's ProcessingInstruction, if c is one.
func (c ChildOfElement) ProcessingInstruction() (*ProcessingInstruction, bool) {
	if !c.inner.HasRight() {
		return nil, false
	}

	rest := c.inner.UnwrapRight()
	if !rest.HasRight() {
		return nil, false
	}

	rest2 := rest.UnwrapRight()
	if !rest2.HasRight() {
		return nil, false
	}

	return rest2.UnwrapRight(), true
}

func (c ChildOfElement) identity() any {
	if e, ok := c.Element(); ok {
		return e
	}

	if t, ok := c.Text(); ok {
		return t
	}

	if cm, ok := c.Comment(); ok {
		return cm
	}

	pi, _ := c.ProcessingInstruction()

	return pi
}
