package api

import (
	"strconv"
	"strings"
)

// StreamURL is the media URL of the video with the given id under base.
// Trailing slashes on base are trimmed, so the result is always
// "{base}/stream/{id}" with a single separator. Nothing is escaped and no
// auth or range handling is added.
func StreamURL(base string, id int64) string {
	return strings.TrimRight(base, "/") + "/stream/" + strconv.FormatInt(id, 10)
}

// StreamURL resolves id against the client's base.
func (c *Client) StreamURL(id int64) string {
	return c.base + "/stream/" + strconv.FormatInt(id, 10)
}
