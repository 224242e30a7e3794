package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/clipdeck/clipdeck/filesystem"
)

// Messages shown for a failed upload.
const (
	MissingFileMessage     = "Please select a video to upload"
	MissingTitleMessage    = "Please enter a title"
	InvalidFileMessage     = "Invalid video file"
	UploadFailedMessage    = "Upload failed"
	UploadTransportMessage = "Error uploading video. Please try again."
)

// UploadRequest is one video submission.
type UploadRequest struct {
	// Path of the local file, read through filesystem.API().
	Path        string
	Title       string
	Description string
}

// UploadResult is what the service said about an accepted upload.
type UploadResult struct {
	Status  int
	Message string
}

// Validate checks the request without touching the network.
func (r UploadRequest) Validate() error {
	const op = "upload"

	if strings.TrimSpace(r.Path) == "" {
		return validation(op, MissingFileMessage)
	}

	if strings.TrimSpace(r.Title) == "" {
		return validation(op, MissingTitleMessage)
	}

	return nil
}

// MediaType derives the part's content type and file name from the path extension.
// A path without an extension is sent as application/octet-stream named "video".
func MediaType(path string) (contentType, name string) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "application/octet-stream", "video"
	}

	return "video/" + ext, "video." + ext
}

// Upload posts the file, title and description as a single multipart request.
// Any 2xx response counts as success, whatever its body.
func (c *Client) Upload(ctx context.Context, r UploadRequest) (*UploadResult, error) {
	const op = "upload"

	if err := r.Validate(); err != nil {
		return nil, err
	}

	file, err := filesystem.API().Open(r.Path)
	if err != nil {
		return nil, &Error{Kind: ErrValidation, Op: op, Message: InvalidFileMessage, Err: err}
	}
	defer file.Close()

	if info, err := file.Stat(); err != nil || info.IsDir() {
		return nil, &Error{Kind: ErrValidation, Op: op, Message: InvalidFileMessage, Err: err}
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(form, file, r))
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", pr)
	if err != nil {
		pr.CloseWithError(err)
		return nil, &Error{Kind: ErrTransport, Op: op, Message: UploadTransportMessage, Err: err}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := c.send(req, op, UploadTransportMessage)
	pr.Close()
	if err != nil {
		return nil, err
	}

	env, err := decode[json.RawMessage](res, op, UploadFailedMessage)
	if err != nil && !res.ok() {
		return nil, err
	}

	return &UploadResult{Status: res.status, Message: env.Message}, nil
}

func writeUploadForm(form *multipart.Writer, file io.Reader, r UploadRequest) error {
	contentType, name := MediaType(r.Path)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}

	if _, err = io.Copy(part, file); err != nil {
		return err
	}

	if err = form.WriteField("title", r.Title); err != nil {
		return err
	}

	if err = form.WriteField("description", r.Description); err != nil {
		return err
	}

	return form.Close()
}
