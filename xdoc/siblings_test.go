package xdoc_test

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/xdoc"
	"github.com/flier/xdoc/pkg/opt"
	"github.com/flier/xdoc/pkg/qname"
)

func TestSiblingRoundTrip(t *testing.T) {
	Convey("Given an element with four comment children", t, func() {
		s := xdoc.NewStorage()
		e := s.CreateElement(qname.New("e"))
		conn := xdoc.NewConnections(s.CreateRoot())

		c1 := s.CreateComment("1")
		c2 := s.CreateComment("2")
		c3 := s.CreateComment("3")
		c4 := s.CreateComment("4")

		for _, c := range []*xdoc.Comment{c1, c2, c3, c4} {
			conn.AppendElementChild(e, xdoc.ChildOfElementFromComment(c))
		}

		Convey("Then preceding_siblings(c3) = [c1, c2] and following_siblings(c3) = [c4]", func() {
			preceding := slices.Collect(conn.CommentPrecedingSiblings(c3))
			following := slices.Collect(conn.CommentFollowingSiblings(c3))

			So(preceding, ShouldHaveLength, 2)
			got1, _ := preceding[0].Comment()
			got2, _ := preceding[1].Comment()
			So(got1, ShouldEqual, c1)
			So(got2, ShouldEqual, c2)

			So(following, ShouldHaveLength, 1)
			got4, _ := following[0].Comment()
			So(got4, ShouldEqual, c4)
		})

		Convey("Then preceding ++ [self] ++ following reconstructs the child list in order", func() {
			children := conn.ElementChildren(e)

			preceding := slices.Collect(conn.CommentPrecedingSiblings(c3))
			following := slices.Collect(conn.CommentFollowingSiblings(c3))

			rebuilt := append(append(append([]xdoc.ChildOfElement{}, preceding...), xdoc.ChildOfElementFromComment(c3)), following...)

			So(len(rebuilt), ShouldEqual, len(children))
			for i := range children {
				want, _ := children[i].Comment()
				got, _ := rebuilt[i].Comment()
				So(got, ShouldEqual, want)
			}
		})
	})
}

func TestSiblingsOfOrphanIsEmpty(t *testing.T) {
	Convey("Given an unparented comment", t, func() {
		s := xdoc.NewStorage()
		conn := xdoc.NewConnections(s.CreateRoot())
		c := s.CreateComment("orphan")

		Convey("Then both sibling sequences are empty", func() {
			So(slices.Collect(conn.CommentPrecedingSiblings(c)), ShouldBeEmpty)
			So(slices.Collect(conn.CommentFollowingSiblings(c)), ShouldBeEmpty)
		})
	})
}

func TestSiblingsWidenRootChildren(t *testing.T) {
	Convey("Given a root with a comment, an element, and a processing instruction", t, func() {
		s := xdoc.NewStorage()
		root := s.CreateRoot()
		conn := xdoc.NewConnections(root)

		c := s.CreateComment("c")
		e := s.CreateElement(qname.New("e"))
		pi := s.CreateProcessingInstruction("pi", opt.None[string]())

		conn.AppendRootChild(xdoc.ChildOfRootFromComment(c))
		conn.AppendRootChild(xdoc.ChildOfRootFromElement(e))
		conn.AppendRootChild(xdoc.ChildOfRootFromProcessingInstruction(pi))

		Convey("Then the element's siblings are the comment before and the PI after, widened", func() {
			preceding := slices.Collect(conn.ElementPrecedingSiblings(e))
			following := slices.Collect(conn.ElementFollowingSiblings(e))

			So(preceding, ShouldHaveLength, 1)
			gotComment, ok := preceding[0].Comment()
			So(ok, ShouldBeTrue)
			So(gotComment, ShouldEqual, c)

			So(following, ShouldHaveLength, 1)
			gotPI, ok := following[0].ProcessingInstruction()
			So(ok, ShouldBeTrue)
			So(gotPI, ShouldEqual, pi)
		})
	})
}
