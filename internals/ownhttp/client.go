package ownhttp

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout is used when New is called with a zero timeout
const DefaultTimeout = 30 * time.Second

// New returns a new http.Client that sets the User-Agent header and throttles
// outgoing requests
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// nexus allows short bursts, we never need more than two requests anyway
	limiter := rate.NewLimiter(rate.Every(time.Second), 4)

	return &http.Client{
		Timeout:   timeout,
		Transport: NewAddHeaderTransport(NewThrottleTransport(nil, limiter)),
	}
}
