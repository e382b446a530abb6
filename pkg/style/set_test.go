package style_test

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/bennyboer/syntax-tree/pkg/style"
)

func TestSet(t *testing.T) {
	Convey("Given an empty set", t, func() {
		s := new(Set[FontStyle])

		Convey("It should contain nothing", func() {
			So(s.Len(), ShouldEqual, 0)
			So(s.Contains(Bold), ShouldBeFalse)
		})

		Convey("Adding values should keep insertion order", func() {
			So(s.Add(Underline), ShouldBeTrue)
			So(s.Add(Bold), ShouldBeTrue)
			So(s.Add(Underline), ShouldBeFalse)

			So(s.Len(), ShouldEqual, 2)
			So(s.Contains(Underline), ShouldBeTrue)
			So(s.Contains(Bold), ShouldBeTrue)
			So(slices.Collect(s.All()), ShouldResemble, []FontStyle{Underline, Bold})
		})

		Convey("Removing values should preserve the order of the rest", func() {
			s.Add(Underline)
			s.Add(Bold)
			s.Add(Italic)

			So(s.Remove(Bold), ShouldBeTrue)
			So(s.Remove(Bold), ShouldBeFalse)
			So(slices.Collect(s.All()), ShouldResemble, []FontStyle{Underline, Italic})
		})

		Convey("Clear should empty the set", func() {
			s.Add(Bold)
			s.Clear()

			So(s.Len(), ShouldEqual, 0)
			So(s.Contains(Bold), ShouldBeFalse)
		})
	})

	Convey("Given two sets", t, func() {
		a := NewSet(Bold, Italic)
		b := NewSet(Italic, Bold)
		c := NewSet(Italic)

		Convey("Equal should ignore order", func() {
			So(a.Equal(b), ShouldBeTrue)
			So(b.Equal(a), ShouldBeTrue)
			So(a.Equal(c), ShouldBeFalse)
		})
	})

	Convey("Given many values", t, func() {
		s := new(Set[int])
		for i := 0; i < 100; i++ {
			s.Add(i * 7)
		}

		Convey("The index should keep up through growth", func() {
			So(s.Len(), ShouldEqual, 100)
			for i := 0; i < 100; i++ {
				So(s.Contains(i*7), ShouldBeTrue)
			}
			So(s.Contains(1), ShouldBeFalse)
		})
	})
}

func TestFontStyleString(t *testing.T) {
	Convey("FontStyle should render its name", t, func() {
		So(Bold.String(), ShouldEqual, "Bold")
		So(Italic.String(), ShouldEqual, "Italic")
		So(Underline.String(), ShouldEqual, "Underline")
	})
}
