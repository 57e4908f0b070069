package ownhttp

import "net/http"

// UserAgent is sent with every request unless the request sets its own
var UserAgent = "nexusfetch (https://github.com/nexusfetch/nexusfetch)"

// AddHeaderTransport sets the User-Agent header on outgoing requests
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		// RoundTrippers must not modify the original request
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return adt.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
