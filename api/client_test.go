package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/clipdeck/clipdeck/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeService records hits and answers every request with status and body.
func fakeService(status int, body string, inspect func(r *http.Request)) (*httptest.Server, *int32) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	return srv, &hits
}

func TestNew(t *testing.T) {
	Convey("Given a base with trailing slashes", t, func() {
		c := New("http://media.test/api/v1/videos//")

		Convey("The base should be normalized", func() {
			So(c.Base(), ShouldEqual, "http://media.test/api/v1/videos")
		})
	})
}

func TestList(t *testing.T) {
	Convey("Given a service listing two videos", t, func() {
		var path, auth string
		srv, hits := fakeService(http.StatusOK, `{"message":"ok","object":[
			{"id":1,"title":"First","description":"a","url":"/v/1","fileSize":1024,"uploadDate":"2024-01-01T00:00:00Z"},
			{"id":2,"title":"Second","description":"b","url":"/v/2","fileSize":2048,"uploadDate":"2024-01-02T00:00:00Z"}
		]}`, func(r *http.Request) {
			path = r.URL.Path
			auth = r.Header.Get("Authorization")
		})
		defer srv.Close()

		videos, err := New(srv.URL).List(context.Background())

		Convey("It should return every item in order", func() {
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Title, ShouldEqual, "First")
			So(videos[1].Title, ShouldEqual, "Second")
			So(videos[1].FileSize, ShouldEqual, int64(2048))
		})

		Convey("It should hit the list endpoint once without credentials", func() {
			So(atomic.LoadInt32(hits), ShouldEqual, 1)
			So(path, ShouldEqual, "/list-videos")
			So(auth, ShouldBeEmpty)
		})
	})

	Convey("Given a token", t, func() {
		var auth string
		srv, _ := fakeService(http.StatusOK, `{"object":[]}`, func(r *http.Request) {
			auth = r.Header.Get("Authorization")
		})
		defer srv.Close()

		videos, err := New(srv.URL, WithToken("secret")).List(context.Background())

		Convey("It should send it as a bearer token", func() {
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
			So(auth, ShouldEqual, "Bearer secret")
		})
	})

	Convey("Given a service that omits the object", t, func() {
		srv, _ := fakeService(http.StatusOK, `{"message":"nothing"}`, nil)
		defer srv.Close()

		videos, err := New(srv.URL).List(context.Background())

		Convey("It should return an empty list", func() {
			So(err, ShouldBeNil)
			So(videos, ShouldNotBeNil)
			So(videos, ShouldBeEmpty)
		})
	})

	Convey("Given a service failing with a message", t, func() {
		srv, _ := fakeService(http.StatusInternalServerError, `{"message":"database is down"}`, nil)
		defer srv.Close()

		_, err := New(srv.URL).List(context.Background())

		Convey("The server message should be surfaced verbatim", func() {
			So(errors.Is(err, ErrServer), ShouldBeTrue)
			So(Message(err), ShouldEqual, "database is down")

			var apiErr *Error
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, http.StatusInternalServerError)
		})
	})

	Convey("Given a service failing without a message", t, func() {
		srv, _ := fakeService(http.StatusBadGateway, `<html>bad gateway</html>`, nil)
		defer srv.Close()

		_, err := New(srv.URL).List(context.Background())

		Convey("The fallback message should be used", func() {
			So(errors.Is(err, ErrServer), ShouldBeTrue)
			So(Message(err), ShouldEqual, ListFailedMessage)
		})
	})

	Convey("Given a successful status with a malformed body", t, func() {
		srv, _ := fakeService(http.StatusOK, `not json`, nil)
		defer srv.Close()

		_, err := New(srv.URL).List(context.Background())

		Convey("It should fail with the fallback message", func() {
			So(errors.Is(err, ErrServer), ShouldBeTrue)
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)
			So(Message(err), ShouldEqual, ListFailedMessage)
		})
	})

	Convey("Given an unreachable service", t, func() {
		srv, _ := fakeService(http.StatusOK, `{}`, nil)
		base := srv.URL
		srv.Close()

		_, err := New(base).List(context.Background())

		Convey("It should report a transport error with the generic message", func() {
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
			So(Message(err), ShouldEqual, ListTransportMessage)
		})
	})

	Convey("Given a cancelled context", t, func() {
		srv, hits := fakeService(http.StatusOK, `{"object":[]}`, nil)
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(srv.URL).List(ctx)

		Convey("The cancellation should be visible to the caller", func() {
			So(errors.Is(err, ErrTransport), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(atomic.LoadInt32(hits), ShouldEqual, 0)
		})
	})
}

func TestStreamURL(t *testing.T) {
	Convey("Given a base and an id", t, func() {
		base := "http://media.test/api/v1/videos"

		Convey("The URL should be the base, /stream/ and the id", func() {
			for _, id := range []int64{0, 1, 42, 9007199254740993} {
				So(StreamURL(base, id), ShouldEqual, base+"/stream/"+strconv.FormatInt(id, 10))
			}
			So(StreamURL(base, 7), ShouldEqual, "http://media.test/api/v1/videos/stream/7")
		})

		Convey("Trailing slashes on the base should collapse to one separator", func() {
			So(StreamURL(base+"/", 7), ShouldEqual, base+"/stream/7")
			So(StreamURL(base+"//", 7), ShouldEqual, base+"/stream/7")
		})

		Convey("The client and package helper should agree", func() {
			So(New(base+"/").StreamURL(7), ShouldEqual, StreamURL(base, 7))
		})

		Convey("No token should leak into the URL", func() {
			So(New(base, WithToken("secret")).StreamURL(7), ShouldNotContainSubstring, "secret")
		})
	})
}

func TestMediaType(t *testing.T) {
	Convey("Given local paths", t, func() {
		Convey("The MIME type should come from the extension", func() {
			ct, name := MediaType("/home/me/clip.mp4")
			So(ct, ShouldEqual, "video/mp4")
			So(name, ShouldEqual, "video.mp4")

			ct, name = MediaType("movie.MOV")
			So(ct, ShouldEqual, "video/MOV")
			So(name, ShouldEqual, "video.MOV")
		})

		Convey("A path without an extension should be sent as raw bytes", func() {
			ct, name := MediaType("/tmp/recording")
			So(ct, ShouldEqual, "application/octet-stream")
			So(name, ShouldEqual, "video")
		})
	})
}

func TestUpload(t *testing.T) {
	Convey("Given a video on disk", t, func() {
		So(filesystem.API().WriteFile("/videos/clip.webm", []byte("fake-video-bytes"), 0o644), ShouldBeNil)

		Convey("When the title is blank", func() {
			srv, hits := fakeService(http.StatusOK, `{}`, nil)
			defer srv.Close()

			_, err := New(srv.URL).Upload(context.Background(), UploadRequest{Path: "/videos/clip.webm", Title: "   "})

			Convey("No request should be made", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(Message(err), ShouldEqual, MissingTitleMessage)
				So(atomic.LoadInt32(hits), ShouldEqual, 0)
			})
		})

		Convey("When no file is selected", func() {
			srv, hits := fakeService(http.StatusOK, `{}`, nil)
			defer srv.Close()

			_, err := New(srv.URL).Upload(context.Background(), UploadRequest{Title: "Holiday"})

			Convey("No request should be made", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(Message(err), ShouldEqual, MissingFileMessage)
				So(atomic.LoadInt32(hits), ShouldEqual, 0)
			})
		})

		Convey("When the file does not exist", func() {
			srv, hits := fakeService(http.StatusOK, `{}`, nil)
			defer srv.Close()

			_, err := New(srv.URL).Upload(context.Background(), UploadRequest{Path: "/videos/missing.mp4", Title: "Holiday"})

			Convey("No request should be made", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(Message(err), ShouldEqual, InvalidFileMessage)
				So(atomic.LoadInt32(hits), ShouldEqual, 0)
			})
		})

		Convey("When the request is valid", func() {
			type received struct {
				method      string
				path        string
				contentType string
				filename    string
				title       string
				description string
				content     string
				fields      int
				err         error
			}
			var got received

			srv, hits := fakeService(http.StatusCreated, `{"message":"Video uploaded"}`, func(r *http.Request) {
				got.method = r.Method
				got.path = r.URL.Path
				if got.err = r.ParseMultipartForm(1 << 20); got.err != nil {
					return
				}

				got.fields = len(r.MultipartForm.Value) + len(r.MultipartForm.File)
				got.title = r.FormValue("title")
				got.description = r.FormValue("description")

				f, header, err := r.FormFile("file")
				if got.err = err; err != nil {
					return
				}
				defer f.Close()
				got.filename = header.Filename
				got.contentType = header.Header.Get("Content-Type")
				content, _ := io.ReadAll(f)
				got.content = string(content)
			})
			defer srv.Close()

			result, err := New(srv.URL).Upload(context.Background(), UploadRequest{
				Path:        "/videos/clip.webm",
				Title:       "Holiday",
				Description: "Beach day",
			})

			Convey("Exactly one multipart POST with three fields should be sent", func() {
				So(err, ShouldBeNil)
				So(got.err, ShouldBeNil)
				So(atomic.LoadInt32(hits), ShouldEqual, 1)
				So(got.method, ShouldEqual, http.MethodPost)
				So(got.path, ShouldEqual, "/upload")
				So(got.fields, ShouldEqual, 3)
			})

			Convey("The parts should carry the form values and the file", func() {
				So(got.title, ShouldEqual, "Holiday")
				So(got.description, ShouldEqual, "Beach day")
				So(got.filename, ShouldEqual, "video.webm")
				So(got.contentType, ShouldEqual, "video/webm")
				So(got.content, ShouldEqual, "fake-video-bytes")
			})

			Convey("The result should carry the server's reply", func() {
				So(result.Status, ShouldEqual, http.StatusCreated)
				So(result.Message, ShouldEqual, "Video uploaded")
			})
		})

		Convey("When the service accepts with a non-JSON body", func() {
			srv, _ := fakeService(http.StatusOK, `stored`, nil)
			defer srv.Close()

			result, err := New(srv.URL).Upload(context.Background(), UploadRequest{Path: "/videos/clip.webm", Title: "Holiday"})

			Convey("It should still succeed", func() {
				So(err, ShouldBeNil)
				So(result.Status, ShouldEqual, http.StatusOK)
				So(result.Message, ShouldBeEmpty)
			})
		})

		Convey("When the service rejects the upload", func() {
			srv, _ := fakeService(http.StatusRequestEntityTooLarge, `{"message":"File too large"}`, nil)
			defer srv.Close()

			_, err := New(srv.URL).Upload(context.Background(), UploadRequest{Path: "/videos/clip.webm", Title: "Holiday"})

			Convey("The server message should be surfaced", func() {
				So(errors.Is(err, ErrServer), ShouldBeTrue)
				So(Message(err), ShouldEqual, "File too large")
			})
		})

		Convey("When the service rejects with an unreadable body", func() {
			srv, _ := fakeService(http.StatusInternalServerError, `oops`, nil)
			defer srv.Close()

			_, err := New(srv.URL).Upload(context.Background(), UploadRequest{Path: "/videos/clip.webm", Title: "Holiday"})

			Convey("The fallback message should be used", func() {
				So(Message(err), ShouldEqual, UploadFailedMessage)
			})
		})
	})
}

func TestErrorString(t *testing.T) {
	Convey("Given a server error", t, func() {
		err := &Error{Kind: ErrServer, Op: "list", Status: 500, Message: "boom"}

		Convey("Its string should name the operation, status and message", func() {
			So(err.Error(), ShouldEqual, "list: service returned an error (HTTP 500): boom")
		})

		Convey("Message should fall back to the error string for foreign errors", func() {
			So(Message(errors.New("plain")), ShouldEqual, "plain")
			So(strings.HasPrefix(Message(err), "boom"), ShouldBeTrue)
		})
	})
}
