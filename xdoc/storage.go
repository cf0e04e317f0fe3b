package xdoc

import (
	"github.com/flier/xdoc/internal/intern"
	"github.com/flier/xdoc/pkg/arena"
	"github.com/flier/xdoc/pkg/opt"
	"github.com/flier/xdoc/pkg/qname"
)

// Storage owns every node's memory and the string interner. It allocates
// nodes and mutates the scalar fields that do not touch tree structure;
// structural operations (parenting, attributes, namespaces) live on
// [Connections].
//
// None of Storage's operations return errors: allocation is assumed
// infallible, as out-of-memory has no in-band recovery.
type Storage struct {
	interner *intern.Pool

	roots      arena.Arena[Root]
	elements   arena.Arena[Element]
	attributes arena.Arena[Attribute]
	texts      arena.Arena[Text]
	comments   arena.Arena[Comment]
	pis        arena.Arena[ProcessingInstruction]
}

// NewStorage returns an empty Storage.
func NewStorage() *Storage {
	return &Storage{interner: intern.NewPool()}
}

func (s *Storage) internQName(q qname.QName) qname.QName {
	local := s.interner.Intern(q.Local)
	if q.URI.IsNone() {
		return qname.New(local)
	}

	return qname.NewNS(s.interner.Intern(q.URI.Unwrap()), local)
}

func (s *Storage) internOptString(v opt.Option[string]) opt.Option[string] {
	if v.IsNone() {
		return v
	}

	return opt.Some(s.interner.Intern(v.Unwrap()))
}

// CreateRoot allocates a fresh, childless Root.
func (s *Storage) CreateRoot() *Root {
	return s.roots.New(Root{})
}

// CreateElement allocates a fresh Element named name, with no parent, no
// children or attributes, no preferred prefix, and no local prefix bindings.
func (s *Storage) CreateElement(name qname.QName) *Element {
	return s.elements.New(Element{
		name:        s.internQName(name),
		prefixToURI: make(map[string]string),
	})
}

// CreateAttribute allocates a fresh, unparented Attribute named name with the
// given value.
func (s *Storage) CreateAttribute(name qname.QName, value string) *Attribute {
	return s.attributes.New(Attribute{
		name:  s.internQName(name),
		value: s.interner.Intern(value),
	})
}

// CreateText allocates a fresh, unparented Text node.
func (s *Storage) CreateText(value string) *Text {
	return s.texts.New(Text{value: s.interner.Intern(value)})
}

// CreateComment allocates a fresh, unparented Comment node.
func (s *Storage) CreateComment(value string) *Comment {
	return s.comments.New(Comment{value: s.interner.Intern(value)})
}

// CreateProcessingInstruction allocates a fresh, unparented
// ProcessingInstruction node.
func (s *Storage) CreateProcessingInstruction(target string, value opt.Option[string]) *ProcessingInstruction {
	return s.pis.New(ProcessingInstruction{
		target: s.interner.Intern(target),
		value:  s.internOptString(value),
	})
}

// ElementSetName replaces e's qualified name after interning.
func (s *Storage) ElementSetName(e *Element, name qname.QName) {
	e.name = s.internQName(name)
}

// ElementRegisterPrefix inserts or overwrites e's local (prefix → uri)
// binding, consumed later by [Connections]'s namespace resolution.
func (s *Storage) ElementRegisterPrefix(e *Element, prefix, uri string) {
	e.prefixToURI[s.interner.Intern(prefix)] = s.interner.Intern(uri)
}

// ElementSetPreferredPrefix sets or clears e's advisory preferred-prefix
// hint.
func (s *Storage) ElementSetPreferredPrefix(e *Element, prefix opt.Option[string]) {
	e.preferredPrefix = s.internOptString(prefix)
}

// AttributeSetPreferredPrefix sets or clears a's advisory preferred-prefix
// hint.
func (s *Storage) AttributeSetPreferredPrefix(a *Attribute, prefix opt.Option[string]) {
	a.preferredPrefix = s.internOptString(prefix)
}

// TextSetText replaces t's value after interning.
func (s *Storage) TextSetText(t *Text, value string) {
	t.value = s.interner.Intern(value)
}

// CommentSetText replaces c's value after interning.
func (s *Storage) CommentSetText(c *Comment, value string) {
	c.value = s.interner.Intern(value)
}

// ProcessingInstructionSetTarget replaces pi's target after interning.
func (s *Storage) ProcessingInstructionSetTarget(pi *ProcessingInstruction, target string) {
	pi.target = s.interner.Intern(target)
}

// ProcessingInstructionSetValue replaces pi's value after interning.
func (s *Storage) ProcessingInstructionSetValue(pi *ProcessingInstruction, value opt.Option[string]) {
	pi.value = s.internOptString(value)
}
