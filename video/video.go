// Package video defines the metadata record the media service returns for each video.
package video

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Video is a single entry of the list endpoint.
type Video struct {
	ID          int64  `json:"id" jsonschema:"description=Server assigned identifier"`
	Title       string `json:"title" jsonschema:"maxLength=100"`
	Description string `json:"description" jsonschema:"maxLength=500"`
	// URL is delivered by the service but playback always goes through the stream endpoint.
	URL        string `json:"url"`
	FileSize   int64  `json:"fileSize" jsonschema:"description=Size in bytes"`
	UploadDate string `json:"uploadDate"`
}

// Limits enforced by the upload form.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes in powers of 1024 with at most two decimals, e.g. "1.5 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)

	value := float64(bytes) / math.Pow(1024, float64(i))
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64) + " " + sizeUnits[i]
}

// HumanSize is FormatFileSize applied to the video's size.
func (v *Video) HumanSize() string {
	return FormatFileSize(v.FileSize)
}

var uploadDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// UploadedAt parses UploadDate. The service does not pin a format, so several are tried.
func (v *Video) UploadedAt() (time.Time, bool) {
	raw := strings.TrimSpace(v.UploadDate)
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// UploadedAgo describes the upload date relative to now, or returns it unchanged if it can't be parsed.
func (v *Video) UploadedAgo(now time.Time) string {
	t, ok := v.UploadedAt()
	if !ok {
		return v.UploadDate
	}

	return humanize.RelTime(t, now, "ago", "from now")
}

// IDString is the identifier as it appears in stream URLs.
func (v *Video) IDString() string {
	return strconv.FormatInt(v.ID, 10)
}

func (v *Video) String() string {
	return v.Title
}
