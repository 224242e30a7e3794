// Package api talks to the video service: listing, uploading and resolving stream URLs.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/log"
	"github.com/clipdeck/clipdeck/network"
	"github.com/sirupsen/logrus"
)

// maxBodySize bounds how much of a JSON response is read.
const maxBodySize = 32 << 20

// Client issues requests against a single service base URL.
type Client struct {
	base      string
	http      *http.Client
	token     string
	userAgent string
}

type Option func(*Client)

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithToken sends "Authorization: Bearer <token>" on list and upload requests.
func WithToken(token string) Option {
	return func(cl *Client) { cl.token = token }
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// New returns a client for base. Trailing slashes are dropped.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base:      strings.TrimRight(base, "/"),
		http:      network.Client,
		userAgent: constant.UserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Base is the normalized service URL.
func (c *Client) Base() string {
	return c.base
}

// envelope is the shape of every JSON body the service sends.
type envelope[T any] struct {
	Message string `json:"message"`
	Object  T      `json:"object"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// response is a fully read reply.
type response struct {
	status int
	body   []byte
	entry  *logrus.Entry
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// send performs req and reads the body. Only transport failures are errors here.
func (c *Client) send(req *http.Request, op, transportMsg string) (*response, error) {
	entry := log.WithFields(logrus.Fields{"op": op, "method": req.Method, "url": req.URL.String()})
	entry.Debug("sending request")

	res, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Error("request failed")
		return nil, &Error{Kind: ErrTransport, Op: op, Message: transportMsg, Err: err}
	}
	defer res.Body.Close()

	entry = entry.WithField("status", res.StatusCode)

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		entry.WithError(err).Error("reading body failed")
		return nil, &Error{Kind: ErrTransport, Op: op, Status: res.StatusCode, Message: transportMsg, Err: err}
	}

	return &response{status: res.StatusCode, body: body, entry: entry}, nil
}

// decode reads the envelope of res. Non-2xx replies and undecodable 2xx bodies
// become ErrServer with the server's message, or fallbackMsg when it has none.
func decode[T any](res *response, op, fallbackMsg string) (envelope[T], error) {
	var env envelope[T]
	decodeErr := json.Unmarshal(res.body, &env)

	if !res.ok() {
		message := fallbackMsg
		if decodeErr == nil && env.Message != "" {
			message = env.Message
		}
		res.entry.WithField("message", message).Warn("service rejected request")
		return env, &Error{Kind: ErrServer, Op: op, Status: res.status, Message: message}
	}

	if decodeErr != nil {
		res.entry.WithError(decodeErr).Warn("malformed response")
		return env, &Error{
			Kind:    ErrServer,
			Op:      op,
			Status:  res.status,
			Message: fallbackMsg,
			Err:     fmt.Errorf("%w: %w", ErrMalformed, decodeErr),
		}
	}

	res.entry.Info("request succeeded")
	return env, nil
}
