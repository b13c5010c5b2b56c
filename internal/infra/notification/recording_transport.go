package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
)

// Provider SDKs reduce failed responses to a message; the transport keeps
// the status and raw body so they can be reported verbatim.
type upstreamFailure struct {
	statusCode int
	body       string
}

type upstreamFailureKey struct{}

func withFailureRecorder(ctx context.Context) (context.Context, *upstreamFailure) {
	failure := &upstreamFailure{}
	return context.WithValue(ctx, upstreamFailureKey{}, failure), failure
}

func (f *upstreamFailure) recorded() bool {
	return f.statusCode != 0
}

type recordingTransport struct {
	base http.RoundTripper
	// baseURL, when set, replaces scheme and host of every request.
	baseURL *url.URL
}

func newRecordingClient(client *http.Client, baseURL *url.URL) *http.Client {
	if client == nil {
		client = &http.Client{Timeout: _sendTimeout}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	wrapped := *client
	wrapped.Transport = &recordingTransport{base: base, baseURL: baseURL}
	return &wrapped
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.baseURL != nil {
		req = req.Clone(req.Context())
		req.URL.Scheme = t.baseURL.Scheme
		req.URL.Host = t.baseURL.Host
		req.Host = ""
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if failure, ok := req.Context().Value(upstreamFailureKey{}).(*upstreamFailure); ok {
		failure.statusCode = resp.StatusCode
		failure.body = string(body)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
