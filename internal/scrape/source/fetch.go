package source

import (
	"context"
	"net/http"
	"time"
)

const UserAgent = "OpenRoles/1.0 (+local)"

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

// Get issues a GET with the engine User-Agent. Transport failures and
// 4xx/5xx responses come back as *FetchError; on success the caller owns
// the body.
func Get(ctx context.Context, hc *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	res, err := hc.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	if res.StatusCode >= 400 {
		res.Body.Close()
		return nil, &FetchError{URL: rawURL, Status: res.StatusCode}
	}
	return res, nil
}
