package xdoc

import (
	"iter"

	"github.com/flier/xdoc/pkg/opt"
)

// siblingRange locates the child matching identity among siblings and yields
// either the children before it or the ones after it, in document order. The
// sequence is lazy, single-pass, and not restartable; mutating
// siblings while an iterator is live is undefined.
func siblingRange(siblings []ChildOfElement, identity any, preceding bool) iter.Seq[ChildOfElement] {
	return func(yield func(ChildOfElement) bool) {
		i := -1

		for idx, ch := range siblings {
			if ch.identity() == identity {
				i = idx

				break
			}
		}

		if i < 0 {
			return
		}

		window := siblings[i+1:]
		if preceding {
			window = siblings[:i]
		}

		for _, ch := range window {
			if !yield(ch) {
				return
			}
		}
	}
}

func emptySeq() iter.Seq[ChildOfElement] {
	return func(func(ChildOfElement) bool) {}
}

func widenRootChildren(root *Root) []ChildOfElement {
	out := make([]ChildOfElement, len(root.children))
	for i, ch := range root.children {
		out[i] = ch.widen()
	}

	return out
}

// siblingsOf finds the document-order siblings of a node whose parent is a
// Root-or-Element union, widening Root's children into the element-child
// union form.
func siblingsOf(parent opt.Option[ParentOfChild], identity any, preceding bool) iter.Seq[ChildOfElement] {
	if parent.IsNone() {
		return emptySeq()
	}

	p := parent.Unwrap()
	if r, ok := p.AsRoot(); ok {
		return siblingRange(widenRootChildren(r), identity, preceding)
	}

	e, _ := p.AsElement()

	return siblingRange(e.children, identity, preceding)
}

// elementChildSiblingsOf finds the document-order siblings of a node (Text)
// whose parent can only ever be an Element.
func elementChildSiblingsOf(parent opt.Option[*Element], identity any, preceding bool) iter.Seq[ChildOfElement] {
	if parent.IsNone() {
		return emptySeq()
	}

	return siblingRange(parent.Unwrap().children, identity, preceding)
}

// ElementPrecedingSiblings returns e's elder siblings, in document order.
func (c *Connections) ElementPrecedingSiblings(e *Element) iter.Seq[ChildOfElement] {
	return siblingsOf(e.parent, e, true)
}

// ElementFollowingSiblings returns e's younger siblings, in document order.
func (c *Connections) ElementFollowingSiblings(e *Element) iter.Seq[ChildOfElement] {
	return siblingsOf(e.parent, e, false)
}

// TextPrecedingSiblings returns t's elder siblings, in document order.
func (c *Connections) TextPrecedingSiblings(t *Text) iter.Seq[ChildOfElement] {
	return elementChildSiblingsOf(t.parent, t, true)
}

// TextFollowingSiblings returns t's younger siblings, in document order.
func (c *Connections) TextFollowingSiblings(t *Text) iter.Seq[ChildOfElement] {
	return elementChildSiblingsOf(t.parent, t, false)
}

// CommentPrecedingSiblings returns cm's elder siblings, in document order.
func (c *Connections) CommentPrecedingSiblings(cm *Comment) iter.Seq[ChildOfElement] {
	return siblingsOf(cm.parent, cm, true)
}

// CommentFollowingSiblings returns cm's younger siblings, in document order.
func (c *Connections) CommentFollowingSiblings(cm *Comment) iter.Seq[ChildOfElement] {
	return siblingsOf(cm.parent, cm, false)
}

// ProcessingInstructionPrecedingSiblings returns pi's elder siblings, in
// document order.
func (c *Connections) ProcessingInstructionPrecedingSiblings(pi *ProcessingInstruction) iter.Seq[ChildOfElement] {
	return siblingsOf(pi.parent, pi, true)
}

// ProcessingInstructionFollowingSiblings returns pi's younger siblings, in
// document order.
func (c *Connections) ProcessingInstructionFollowingSiblings(pi *ProcessingInstruction) iter.Seq[ChildOfElement] {
	return siblingsOf(pi.parent, pi, false)
}
