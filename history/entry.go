package history

import (
	"fmt"
	"time"

	"github.com/clipdeck/clipdeck/video"
)

// Entry is a played video.
type Entry struct {
	VideoID           int64     `json:"video_id"`
	Title             string    `json:"title"`
	Service           string    `json:"service"`
	WatchedPercentage float64   `json:"watched_percentage"`
	PlayedAt          time.Time `json:"played_at"`
}

// Key identifies an entry. The same id on two services are different videos.
func Key(service string, id int64) string {
	return fmt.Sprintf("%s#%d", service, id)
}

func (e *Entry) key() string {
	return Key(e.Service, e.VideoID)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s : %.0f%%", e.Title, e.WatchedPercentage)
}

func newEntry(service string, v *video.Video) *Entry {
	return &Entry{
		VideoID:  v.ID,
		Title:    v.Title,
		Service:  service,
		PlayedAt: time.Now(),
	}
}
