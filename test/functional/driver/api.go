package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) Apply(body map[string]any) (*http.Response, error) {
	return d.postJSON("/api/apply", body)
}

func (d *APIDriver) ApplyRaw(body string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/api/apply", d.baseURL), "application/json", strings.NewReader(body))
}

func (d *APIDriver) Contact(body map[string]any) (*http.Response, error) {
	return d.postJSON("/api/contact", body)
}

func (d *APIDriver) Call(method, path string) (*http.Response, error) {
	req, err := http.NewRequest(method, d.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return d.client.Do(req)
}

// Preflight sends a CORS preflight for a JSON POST from origin.
func (d *APIDriver) Preflight(path, origin string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodOptions, d.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	return d.client.Do(req)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) postJSON(path string, body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(d.baseURL+path, "application/json", bytes.NewBuffer(reqBody))
}
