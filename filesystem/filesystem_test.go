package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Reset(SetOsFs)

		Convey("It should default to the OS filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("When switched to memory", func() {
			SetMemMapFs()

			Convey("Files written through GacheFs should be visible through API", func() {
				fs := GacheFs{}
				So(fs.MkdirAll("/a/b", os.ModePerm), ShouldBeNil)

				f, err := fs.OpenFile("/a/b/c.json", os.O_CREATE|os.O_WRONLY, 0644)
				So(err, ShouldBeNil)
				_, err = f.Write([]byte("{}"))
				So(err, ShouldBeNil)
				So(f.Close(), ShouldBeNil)

				data, err := API().ReadFile("/a/b/c.json")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "{}")
			})
		})
	})
}
