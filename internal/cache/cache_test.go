package cache

import (
	"testing"
	"time"

	"github.com/clipdeck/clipdeck/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrune(t *testing.T) {
	Convey("Given a directory with old and new files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
		So(fs.WriteFile("/logs/old.log", []byte("old"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/logs/new.log", []byte("new"), 0o644), ShouldBeNil)
		So(fs.Chtimes("/logs/old.log", now.Add(-8*24*time.Hour), now.Add(-8*24*time.Hour)), ShouldBeNil)
		So(fs.Chtimes("/logs/new.log", now.Add(-time.Hour), now.Add(-time.Hour)), ShouldBeNil)

		Convey("Only the expired file should be removed", func() {
			removed, err := Prune("/logs", TTL, now)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 1)

			exists, _ := fs.Exists("/logs/old.log")
			So(exists, ShouldBeFalse)
			exists, _ = fs.Exists("/logs/new.log")
			So(exists, ShouldBeTrue)
		})

		Convey("A missing directory should be ignored", func() {
			removed, err := Prune("/nowhere", TTL, now)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 0)
		})
	})
}
