package util

import (
	"testing"

	"github.com/clipdeck/clipdeck/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify should pick the right noun", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(0, "video", "videos"), ShouldEqual, "0 videos")
		So(Quantify(3, "video", "videos"), ShouldEqual, "3 videos")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem should drop the directory and extension", t, func() {
		So(FileStem("/home/me/Beach Day.mp4"), ShouldEqual, "Beach Day")
		So(FileStem("clip"), ShouldEqual, "clip")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp should bound values", t, func() {
		So(Clamp(120.0, 0, 100), ShouldEqual, 100.0)
		So(Clamp(-3, 0, 100), ShouldEqual, 0)
		So(Clamp(42, 0, 100), ShouldEqual, 42)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files in memory", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.WriteFile("/data/a/b.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Deleting a directory should remove its contents", func() {
			So(Delete("/data"), ShouldBeNil)
			exists, _ := fs.Exists("/data/a/b.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path should be a no-op", func() {
			So(Delete("/nope"), ShouldBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Given a stack", t, func() {
		var s Stack[string]
		s.Push("list")
		s.Push("detail")

		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "list")
		So(s.Pop(), ShouldBeEmpty)
	})
}
