package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -source=api_client.go -destination=../../../test/unit/doubles/application/client/api_client_mock.go -package=client

const _requestTimeout = 30 * time.Second

type Applier interface {
	Apply(ctx context.Context, request ApplyRequest) (ApplyResult, error)
}

type ContactSender interface {
	Send(ctx context.Context, request ContactRequest) error
}

// APIError is a non-2xx answer from the intake or contact endpoint.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("api error %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type apiResponse struct {
	Ok        bool   `json:"ok"`
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, httpClient *http.Client) apiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: _requestTimeout}
	}
	return apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c apiClient) post(ctx context.Context, path string, payload any) (apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return apiResponse{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apiResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apiResponse{}, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiResponse{}, fmt.Errorf("reading response: %w", err)
	}

	var decoded apiResponse
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := decoded.Error
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		return decoded, &APIError{
			StatusCode: resp.StatusCode,
			Message:    message,
			RequestID:  decoded.RequestID,
		}
	}

	return decoded, nil
}
