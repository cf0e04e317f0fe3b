package xdoc

import (
	"github.com/flier/xdoc/internal/debug"
	"github.com/flier/xdoc/pkg/opt"
	"github.com/flier/xdoc/pkg/qname"
)

// Connections holds a document's Root and exposes the graph operations:
// reading parent/children/attributes/siblings, appending children (unlinking
// from any prior parent first), setting attributes (replacing by name), and
// namespace lookups. Connections never allocates nodes; nodes must already
// exist via [Storage].
//
// Connections itself performs no synchronization. A single Connections is
// not safe for concurrent mutation; concurrent reads against an otherwise
// quiescent Connections are fine, as no read operation below mutates state.
type Connections struct {
	root *Root
}

// NewConnections returns a Connections anchored at root.
func NewConnections(root *Root) *Connections {
	return &Connections{root: root}
}

// Root returns the anchoring Root handle.
func (c *Connections) Root() *Root { return c.root }

// ElementParent returns e's parent, if any.
func (c *Connections) ElementParent(e *Element) opt.Option[ParentOfChild] { return e.parent }

// TextParent returns t's parent, if any.
func (c *Connections) TextParent(t *Text) opt.Option[*Element] { return t.parent }

// CommentParent returns cm's parent, if any.
func (c *Connections) CommentParent(cm *Comment) opt.Option[ParentOfChild] { return cm.parent }

// ProcessingInstructionParent returns pi's parent, if any.
func (c *Connections) ProcessingInstructionParent(pi *ProcessingInstruction) opt.Option[ParentOfChild] {
	return pi.parent
}

// AttributeParent returns a's parent, if any.
func (c *Connections) AttributeParent(a *Attribute) opt.Option[*Element] { return a.parent }

// RootChildren returns root's children in document order.
func (c *Connections) RootChildren(root *Root) []ChildOfRoot { return root.children }

// ElementChildren returns e's children in document order.
func (c *Connections) ElementChildren(e *Element) []ChildOfElement { return e.children }

// Attributes returns e's attributes in unspecified order.
func (c *Connections) Attributes(e *Element) []*Attribute { return e.attributes }

// Attribute returns the Attribute of e named name, if any.
func (c *Connections) Attribute(e *Element, name qname.QName) opt.Option[*Attribute] {
	for _, a := range e.attributes {
		if a.name.Equal(name) {
			return opt.Some(a)
		}
	}

	return opt.None[*Attribute]()
}

// AppendRootChild appends child to root's children, unlinking child from
// any parent it currently has.
//
// If child is an Element, any existing Element child of root is detached
// first (root allows at most one Element child). Comment and
// ProcessingInstruction children are never displaced.
func (c *Connections) AppendRootChild(child ChildOfRoot) {
	root := c.root

	debug.Log(nil, "append-root-child", "%v", debug.Dict("child", "identity", child.identity()))

	if e, ok := child.Element(); ok {
		c.detachElement(e)
		c.displaceRootElement(root)
		e.parent = opt.Some(parentOfRoot(root))
		root.children = append(root.children, child)

		return
	}

	if cm, ok := child.Comment(); ok {
		c.detachComment(cm)
		cm.parent = opt.Some(parentOfRoot(root))
		root.children = append(root.children, child)

		return
	}

	pi, _ := child.ProcessingInstruction()
	c.detachPI(pi)
	pi.parent = opt.Some(parentOfRoot(root))
	root.children = append(root.children, child)
}

func (c *Connections) displaceRootElement(root *Root) {
	for i, ch := range root.children {
		if e, ok := ch.Element(); ok {
			e.parent = opt.None[ParentOfChild]()
			root.children = append(root.children[:i], root.children[i+1:]...)

			return
		}
	}
}

// AppendElementChild appends child to parent's children, unlinking child
// from any parent it currently has.
func (c *Connections) AppendElementChild(parent *Element, child ChildOfElement) {
	debug.Log(nil, "append-element-child", "%v", debug.Dict("child", "parent", parent.name, "identity", child.identity()))

	if e, ok := child.Element(); ok {
		if debug.Enabled {
			debug.Assert(!c.wouldCreateCycle(parent, e), "appending an ancestor as a child would create a cycle")
		}
		c.detachElement(e)
		e.parent = opt.Some(parentOfElement(parent))
		parent.children = append(parent.children, child)

		return
	}

	if t, ok := child.Text(); ok {
		c.detachText(t)
		t.parent = opt.Some(parent)
		parent.children = append(parent.children, child)

		return
	}

	if cm, ok := child.Comment(); ok {
		c.detachComment(cm)
		cm.parent = opt.Some(parentOfElement(parent))
		parent.children = append(parent.children, child)

		return
	}

	pi, _ := child.ProcessingInstruction()
	c.detachPI(pi)
	pi.parent = opt.Some(parentOfElement(parent))
	parent.children = append(parent.children, child)
}

// wouldCreateCycle reports whether appending candidate as a child of parent
// would make candidate its own ancestor. This check only runs in debug
// builds (see debug.Assert above); release builds trust the caller and skip
// it entirely, rather than rejecting a call that would corrupt the tree.
func (c *Connections) wouldCreateCycle(parent, candidate *Element) bool {
	if parent == candidate {
		return true
	}

	cur := parent.parent
	for cur.IsSome() {
		e, ok := cur.Unwrap().AsElement()
		if !ok {
			return false
		}

		if e == candidate {
			return true
		}

		cur = e.parent
	}

	return false
}

// SetAttribute replaces any attribute of parent sharing a's qualified name,
// then appends a and sets its parent. The replaced attribute is left with
// no parent.
//
// SetAttribute does not unlink a from a prior Element's attribute list
// before attaching it here; callers are expected not to attach one
// Attribute to two Elements.
func (c *Connections) SetAttribute(parent *Element, a *Attribute) {
	debug.Log(nil, "set-attribute", "%v", debug.Dict("attribute", "parent", parent.name, "name", a.name))

	for i, existing := range parent.attributes {
		if existing.name.Equal(a.name) {
			existing.parent = opt.None[*Element]()
			parent.attributes = append(parent.attributes[:i], parent.attributes[i+1:]...)

			break
		}
	}

	parent.attributes = append(parent.attributes, a)
	a.parent = opt.Some(parent)
}

func (c *Connections) detachElement(e *Element) {
	if e.parent.IsNone() {
		return
	}

	p := e.parent.Unwrap()
	if r, ok := p.AsRoot(); ok {
		removeFromRootChildren(r, e)
	} else if pe, ok := p.AsElement(); ok {
		removeFromElementChildren(pe, e)
	}

	e.parent = opt.None[ParentOfChild]()
}

func (c *Connections) detachText(t *Text) {
	if t.parent.IsNone() {
		return
	}

	removeFromElementChildren(t.parent.Unwrap(), t)
	t.parent = opt.None[*Element]()
}

func (c *Connections) detachComment(cm *Comment) {
	if cm.parent.IsNone() {
		return
	}

	p := cm.parent.Unwrap()
	if r, ok := p.AsRoot(); ok {
		removeFromRootChildren(r, cm)
	} else if pe, ok := p.AsElement(); ok {
		removeFromElementChildren(pe, cm)
	}

	cm.parent = opt.None[ParentOfChild]()
}

func (c *Connections) detachPI(pi *ProcessingInstruction) {
	if pi.parent.IsNone() {
		return
	}

	p := pi.parent.Unwrap()
	if r, ok := p.AsRoot(); ok {
		removeFromRootChildren(r, pi)
	} else if pe, ok := p.AsElement(); ok {
		removeFromElementChildren(pe, pi)
	}

	pi.parent = opt.None[ParentOfChild]()
}

func removeFromRootChildren(root *Root, target any) {
	for i, ch := range root.children {
		if ch.identity() == target {
			root.children = append(root.children[:i], root.children[i+1:]...)

			return
		}
	}
}

func removeFromElementChildren(parent *Element, target any) {
	for i, ch := range parent.children {
		if ch.identity() == target {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)

			return
		}
	}
}
