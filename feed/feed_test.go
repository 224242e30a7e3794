package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/video"
	. "github.com/smartystreets/goconvey/convey"
)

type stubLister struct {
	calls   int
	results [][]video.Video
	errs    []error
}

func (s *stubLister) List(context.Context) ([]video.Video, error) {
	i := s.calls
	s.calls++
	return s.results[i], s.errs[i]
}

func TestFeed(t *testing.T) {
	Convey("Given a new feed", t, func() {
		f := New()

		Convey("It should start idle and empty", func() {
			So(f.State(), ShouldEqual, Idle)
			So(f.Len(), ShouldEqual, 0)
			So(f.Message(), ShouldBeEmpty)
		})

		Convey("When a fetch is running", func() {
			So(f.Begin(), ShouldBeTrue)

			Convey("A second fetch should be refused", func() {
				So(f.Begin(), ShouldBeFalse)
				So(f.Fetches(), ShouldEqual, 1)
			})
		})

		Convey("When the first fetch fails and the retry succeeds", func() {
			lister := &stubLister{
				results: [][]video.Video{nil, {{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}},
				errs:    []error{&api.Error{Kind: api.ErrTransport, Op: "list", Message: api.ListTransportMessage}, nil},
			}

			err := f.Load(context.Background(), lister)

			Convey("The feed should show the error", func() {
				So(errors.Is(err, api.ErrTransport), ShouldBeTrue)
				So(f.State(), ShouldEqual, Failed)
				So(f.Message(), ShouldEqual, api.ListTransportMessage)
			})

			Convey("Retrying should clear the error and show the list", func() {
				So(f.Load(context.Background(), lister), ShouldBeNil)
				So(lister.calls, ShouldEqual, 2)
				So(f.State(), ShouldEqual, Success)
				So(f.Message(), ShouldBeEmpty)
				So(f.Len(), ShouldEqual, 2)
				So(f.Videos()[0].Title, ShouldEqual, "One")
				So(f.Videos()[1].Title, ShouldEqual, "Two")
			})
		})

		Convey("When a refresh fails after a success", func() {
			lister := &stubLister{
				results: [][]video.Video{{{ID: 1, Title: "One"}}, nil},
				errs:    []error{nil, errors.New("boom")},
			}
			So(f.Load(context.Background(), lister), ShouldBeNil)
			So(f.Load(context.Background(), lister), ShouldNotBeNil)

			Convey("The previous list should be kept", func() {
				So(f.State(), ShouldEqual, Failed)
				So(f.Len(), ShouldEqual, 1)
				So(f.Message(), ShouldEqual, "boom")
			})
		})

		Convey("Finish without a running fetch should do nothing", func() {
			f.Finish([]video.Video{{ID: 1}}, nil)
			So(f.State(), ShouldEqual, Idle)
			So(f.Len(), ShouldEqual, 0)
		})
	})
}
