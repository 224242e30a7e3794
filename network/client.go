// Package network builds the HTTP client used to talk to the media service.
package network

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// Client is shared by every request. It has no overall timeout; callers bound requests with a context.
var Client = NewClient(0)

// NewClient returns a client over the tuned transport. A zero timeout means none.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 90 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second

	// Cloned transports lose the implicit h2 upgrade.
	_ = http2.ConfigureTransport(t)
	return t
}
