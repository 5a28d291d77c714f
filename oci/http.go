package oci

import (
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rhels/imagegate/useragent"
)

type userAgentTransporter struct {
	userAgent    string
	roundTripper http.RoundTripper
}

func (u *userAgentTransporter) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", u.userAgent)

	return u.roundTripper.RoundTrip(req)
}

func HTTPTransport() http.RoundTripper {
	return &userAgentTransporter{
		userAgent:    useragent.Default(),
		roundTripper: cleanhttp.DefaultTransport(),
	}
}

// HTTPClient returns a client suitable for registry metadata APIs, using
// the same pooled transport and user agent as manifest access.
func HTTPClient() *http.Client {
	return &http.Client{Transport: HTTPTransport()}
}
