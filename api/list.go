package api

import (
	"context"
	"net/http"

	"github.com/clipdeck/clipdeck/video"
)

// Messages shown for a failed list call.
const (
	ListFailedMessage    = "Failed to fetch videos"
	ListTransportMessage = "Error fetching videos"
)

// List fetches every video in the order the service returns them.
func (c *Client) List(ctx context.Context) ([]video.Video, error) {
	const op = "list"

	req, err := c.newRequest(ctx, http.MethodGet, "/list-videos", nil)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Op: op, Message: ListTransportMessage, Err: err}
	}

	res, err := c.send(req, op, ListTransportMessage)
	if err != nil {
		return nil, err
	}

	env, err := decode[[]video.Video](res, op, ListFailedMessage)
	if err != nil {
		return nil, err
	}

	if env.Object == nil {
		return []video.Video{}, nil
	}

	return env.Object, nil
}
