package httpx

import (
	"encoding/json"
	"net"
	"net/http"
	"time"
)

// NewClient builds the outbound client shared by every provider adapter.
// timeout bounds each call end to end, body included.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Details turns an error body into something that marshals back as the
// provider sent it: raw JSON when the body parses, the text otherwise.
func Details(body []byte) any {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
