package xdoc_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/xdoc"
	"github.com/flier/xdoc/pkg/qname"
)

func TestConnectionsAttributeReplacement(t *testing.T) {
	Convey("Given an element and two attributes sharing a name", t, func() {
		s := xdoc.NewStorage()
		e := s.CreateElement(qname.New("a"))
		a1 := s.CreateAttribute(qname.New("x"), "1")
		a2 := s.CreateAttribute(qname.New("x"), "2")
		conn := xdoc.NewConnections(s.CreateRoot())

		Convey("When setting both in turn", func() {
			conn.SetAttribute(e, a1)
			conn.SetAttribute(e, a2)

			Convey("Then only the second remains, attached", func() {
				attrs := conn.Attributes(e)

				So(attrs, ShouldHaveLength, 1)
				So(attrs[0], ShouldEqual, a2)
				So(attrs[0].Value(), ShouldEqual, "2")
			})

			Convey("Then the replaced first attribute is left without a parent", func() {
				So(conn.AttributeParent(a1).IsNone(), ShouldBeTrue)
			})
		})
	})
}

func TestConnectionsRootElementDisplacement(t *testing.T) {
	Convey("Given a root and two elements", t, func() {
		s := xdoc.NewStorage()
		root := s.CreateRoot()
		conn := xdoc.NewConnections(root)
		e1 := s.CreateElement(qname.New("e1"))
		e2 := s.CreateElement(qname.New("e2"))

		Convey("When appending both as root children", func() {
			conn.AppendRootChild(xdoc.ChildOfRootFromElement(e1))
			conn.AppendRootChild(xdoc.ChildOfRootFromElement(e2))

			Convey("Then only e2 remains as root's Element child", func() {
				children := conn.RootChildren(root)

				So(children, ShouldHaveLength, 1)
				got, ok := children[0].Element()
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, e2)
			})

			Convey("Then e1 is an orphan", func() {
				So(conn.ElementParent(e1).IsNone(), ShouldBeTrue)
			})
		})
	})
}

func TestConnectionsRootPreservesNonElementChildren(t *testing.T) {
	Convey("Given a root with a comment and two elements appended in order", t, func() {
		s := xdoc.NewStorage()
		root := s.CreateRoot()
		conn := xdoc.NewConnections(root)
		c := s.CreateComment("hi")
		e1 := s.CreateElement(qname.New("e1"))
		e2 := s.CreateElement(qname.New("e2"))

		conn.AppendRootChild(xdoc.ChildOfRootFromComment(c))
		conn.AppendRootChild(xdoc.ChildOfRootFromElement(e1))
		conn.AppendRootChild(xdoc.ChildOfRootFromElement(e2))

		Convey("Then root's children are [comment, e2]", func() {
			children := conn.RootChildren(root)

			So(children, ShouldHaveLength, 2)

			gotComment, ok := children[0].Comment()
			So(ok, ShouldBeTrue)
			So(gotComment, ShouldEqual, c)

			gotElement, ok := children[1].Element()
			So(ok, ShouldBeTrue)
			So(gotElement, ShouldEqual, e2)
		})

		Convey("Then e1 is an orphan", func() {
			So(conn.ElementParent(e1).IsNone(), ShouldBeTrue)
		})
	})
}

func TestConnectionsReappendIsMoveToEnd(t *testing.T) {
	Convey("Given an element with three children", t, func() {
		s := xdoc.NewStorage()
		parent := s.CreateElement(qname.New("p"))
		conn := xdoc.NewConnections(s.CreateRoot())

		c1 := s.CreateComment("1")
		c2 := s.CreateComment("2")
		c3 := s.CreateComment("3")

		conn.AppendElementChild(parent, xdoc.ChildOfElementFromComment(c1))
		conn.AppendElementChild(parent, xdoc.ChildOfElementFromComment(c2))
		conn.AppendElementChild(parent, xdoc.ChildOfElementFromComment(c3))

		Convey("When re-appending the first child", func() {
			conn.AppendElementChild(parent, xdoc.ChildOfElementFromComment(c1))

			Convey("Then it moves to the end, preserving the others' relative order", func() {
				children := conn.ElementChildren(parent)

				So(children, ShouldHaveLength, 3)

				got2, _ := children[0].Comment()
				got3, _ := children[1].Comment()
				got1, _ := children[2].Comment()

				So(got2, ShouldEqual, c2)
				So(got3, ShouldEqual, c3)
				So(got1, ShouldEqual, c1)
			})
		})
	})
}

func TestConnectionsAttributeSetTwiceKeepsLatestValue(t *testing.T) {
	Convey("Given an element and an attribute set twice under the same name", t, func() {
		s := xdoc.NewStorage()
		e := s.CreateElement(qname.New("a"))
		conn := xdoc.NewConnections(s.CreateRoot())

		a1 := s.CreateAttribute(qname.New("x"), "v1")
		conn.SetAttribute(e, a1)

		a2 := s.CreateAttribute(qname.New("x"), "v2")
		conn.SetAttribute(e, a2)

		Convey("Then exactly one attribute remains, with the latest value", func() {
			attrs := conn.Attributes(e)

			So(attrs, ShouldHaveLength, 1)
			So(attrs[0].Value(), ShouldEqual, "v2")
		})
	})
}
