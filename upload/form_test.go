package upload

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clipdeck/clipdeck/api"
	. "github.com/smartystreets/goconvey/convey"
)

type stubUploader struct {
	calls []api.UploadRequest
	err   error
}

func (s *stubUploader) Upload(_ context.Context, r api.UploadRequest) (*api.UploadResult, error) {
	s.calls = append(s.calls, r)
	if s.err != nil {
		return nil, s.err
	}
	return &api.UploadResult{Status: 200}, nil
}

func TestForm(t *testing.T) {
	Convey("Given an upload form", t, func() {
		up := &stubUploader{}
		f := &Form{}

		Convey("Submitting without a file should fail locally", func() {
			f.Title = "Holiday"
			err := f.Submit(context.Background(), up)

			So(errors.Is(err, api.ErrValidation), ShouldBeTrue)
			So(f.Message(), ShouldEqual, api.MissingFileMessage)
			So(up.calls, ShouldBeEmpty)
		})

		Convey("Submitting with a blank title should fail locally", func() {
			f.Pick("/videos/clip.mp4")
			f.Title = "  "
			err := f.Submit(context.Background(), up)

			So(errors.Is(err, api.ErrValidation), ShouldBeTrue)
			So(f.Message(), ShouldEqual, api.MissingTitleMessage)
			So(up.calls, ShouldBeEmpty)
		})

		Convey("Overlong fields should be rejected", func() {
			f.Pick("/videos/clip.mp4")
			f.Title = strings.Repeat("a", 101)
			So(errors.Is(f.Submit(context.Background(), up), api.ErrValidation), ShouldBeTrue)

			f.Title = "ok"
			f.Description = strings.Repeat("é", 501)
			So(errors.Is(f.Submit(context.Background(), up), api.ErrValidation), ShouldBeTrue)
			So(up.calls, ShouldBeEmpty)
		})

		Convey("Picking a file should clear the previous error", func() {
			_ = f.Submit(context.Background(), up)
			So(f.Message(), ShouldNotBeEmpty)

			f.Pick("/videos/clip.mp4")
			So(f.Message(), ShouldBeEmpty)
		})

		Convey("When the form is valid", func() {
			f.Pick("/videos/clip.mp4")
			f.Title = "Holiday"
			f.Description = "Beach day"

			Convey("And the upload succeeds", func() {
				So(f.Submit(context.Background(), up), ShouldBeNil)

				Convey("Exactly one upload should be sent with the form values", func() {
					So(up.calls, ShouldHaveLength, 1)
					So(up.calls[0], ShouldResemble, api.UploadRequest{Path: "/videos/clip.mp4", Title: "Holiday", Description: "Beach day"})
				})

				Convey("The form should be reset with a notice", func() {
					So(f.Filled(), ShouldBeFalse)
					So(f.Loading(), ShouldBeFalse)
					So(f.Notice(), ShouldEqual, SuccessMessage)
					So(f.Message(), ShouldBeEmpty)
				})
			})

			Convey("And the service rejects it", func() {
				up.err = &api.Error{Kind: api.ErrServer, Op: "upload", Status: 413, Message: "File too large"}
				So(f.Submit(context.Background(), up), ShouldNotBeNil)

				Convey("The values should be kept and the server message shown", func() {
					So(f.Path, ShouldEqual, "/videos/clip.mp4")
					So(f.Title, ShouldEqual, "Holiday")
					So(f.Description, ShouldEqual, "Beach day")
					So(f.Message(), ShouldEqual, "File too large")
					So(f.Notice(), ShouldBeEmpty)
				})
			})

			Convey("And the service is unreachable", func() {
				up.err = &api.Error{Kind: api.ErrTransport, Op: "upload", Err: errors.New("connection refused")}
				So(f.Submit(context.Background(), up), ShouldNotBeNil)

				Convey("The generic message should be shown", func() {
					So(f.Message(), ShouldEqual, api.UploadTransportMessage)
					So(f.Title, ShouldEqual, "Holiday")
				})
			})

			Convey("And an upload is already running", func() {
				_, err := f.Begin()
				So(err, ShouldBeNil)

				Convey("A second submit should be refused", func() {
					So(f.Submit(context.Background(), up), ShouldEqual, ErrBusy)
					So(up.calls, ShouldBeEmpty)
					So(f.Loading(), ShouldBeTrue)
				})
			})
		})
	})
}
