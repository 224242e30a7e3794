// Package upload holds the state of the video submission form.
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/clipdeck/clipdeck/api"
	"github.com/clipdeck/clipdeck/video"
)

// SuccessMessage is shown after the service accepts an upload.
const SuccessMessage = "Video uploaded successfully"

// ErrBusy is returned when a submit is attempted while another one runs.
var ErrBusy = errors.New("upload already in progress")

// Uploader is satisfied by *api.Client.
type Uploader interface {
	Upload(ctx context.Context, r api.UploadRequest) (*api.UploadResult, error)
}

// Form keeps user input between attempts. Values are cleared only after a successful upload.
type Form struct {
	Path        string
	Title       string
	Description string

	loading bool
	err     error
	notice  string
}

// Pick selects a file and clears any error shown for the previous attempt.
func (f *Form) Pick(path string) {
	f.Path = path
	f.err = nil
}

// Request is the current input as an api.UploadRequest.
func (f *Form) Request() api.UploadRequest {
	return api.UploadRequest{
		Path:        f.Path,
		Title:       f.Title,
		Description: f.Description,
	}
}

// Validate checks required fields first, then length limits.
func (f *Form) Validate() error {
	if err := f.Request().Validate(); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(f.Title); n > video.MaxTitleLength {
		return &api.Error{
			Kind:    api.ErrValidation,
			Op:      "upload",
			Message: fmt.Sprintf("Title must be at most %d characters", video.MaxTitleLength),
		}
	}

	if n := utf8.RuneCountInString(f.Description); n > video.MaxDescriptionLength {
		return &api.Error{
			Kind:    api.ErrValidation,
			Op:      "upload",
			Message: fmt.Sprintf("Description must be at most %d characters", video.MaxDescriptionLength),
		}
	}

	return nil
}

// Begin validates the form and marks it busy. On error nothing is sent and
// the error is kept for display.
func (f *Form) Begin() (api.UploadRequest, error) {
	if f.loading {
		return api.UploadRequest{}, ErrBusy
	}

	f.notice = ""
	if err := f.Validate(); err != nil {
		f.err = err
		return api.UploadRequest{}, err
	}

	f.loading = true
	f.err = nil
	return f.Request(), nil
}

// Finish records the outcome of the upload started by Begin.
func (f *Form) Finish(err error) {
	f.loading = false

	if err != nil {
		f.err = err
		return
	}

	f.Path, f.Title, f.Description = "", "", ""
	f.notice = SuccessMessage
}

// Submit runs Begin, a single upload and Finish.
func (f *Form) Submit(ctx context.Context, up Uploader) error {
	req, err := f.Begin()
	if err != nil {
		return err
	}

	_, err = up.Upload(ctx, req)
	f.Finish(err)
	return err
}

func (f *Form) Loading() bool {
	return f.loading
}

func (f *Form) Err() error {
	return f.err
}

// Message is the error text to display. Transport failures use the generic upload message.
func (f *Form) Message() string {
	switch {
	case f.err == nil:
		return ""
	case errors.Is(f.err, api.ErrTransport):
		return api.UploadTransportMessage
	default:
		return api.Message(f.err)
	}
}

// Notice is the success message of the last upload, if any.
func (f *Form) Notice() string {
	return f.notice
}

// Filled reports whether any input is present.
func (f *Form) Filled() bool {
	return strings.TrimSpace(f.Path+f.Title+f.Description) != ""
}
