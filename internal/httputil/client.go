// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import "net/http"

// uaTransport injects a User-Agent header into every request. Some origin
// servers (arXiv HTML mirrors among them) reject requests without one.
type uaTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(clone)
}

// NewClient returns an HTTP client that sends userAgent on every request.
// A zero timeout leaves per-request deadlines to the caller's context.
func NewClient(userAgent string) *http.Client {
	return &http.Client{
		Transport: &uaTransport{base: http.DefaultTransport, userAgent: userAgent},
	}
}
