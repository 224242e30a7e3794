package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipdeck/clipdeck/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given version pairs", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.1.0", "0.1.0", 0},
			{"v0.2.0", "0.1.9", 1},
			{"1.0.0", "1.0.1", -1},
			{"2.0.0", "v10.0.0", -1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("Malformed versions should fail", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		filesystem.SetMemMapFs()

		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v0.3.1"}`))
		}))
		defer srv.Close()

		previous := releaseURL
		releaseURL = srv.URL
		Reset(func() { releaseURL = previous })

		Convey("The tag should be returned without its prefix and cached", func() {
			latest, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "0.3.1")

			again, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(again, ShouldEqual, "0.3.1")
			So(hits, ShouldBeLessThanOrEqualTo, 1)
		})
	})
}
