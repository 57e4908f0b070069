package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport waits for the limiter before handing a request to T.
// Waiting stops early when the request context is done.
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return tt.T.RoundTrip(req)
}

// NewThrottleTransport wraps T (http.DefaultTransport when nil). A nil limiter
// does not throttle at all.
func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &ThrottleTransport{T, limiter}
}
