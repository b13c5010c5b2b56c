package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

const (
	_contentTypeJSON = "application/json; charset=utf-8"
	_maxBodyBytes    = 1 << 20
)

type ErrorResponse struct {
	Ok        bool   `json:"ok"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type OkResponse struct {
	Ok        bool   `json:"ok"`
	RequestID string `json:"requestId,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string, requestID string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{
		Error:     errMsg,
		RequestID: requestID,
	})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	body, err := marshalJSON(output)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body = []byte(`{"ok":false,"error":"Server error"}`)
	}
	w.Header().Set("Content-Type", _contentTypeJSON)
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// ReplyStatus answers with an empty body.
func ReplyStatus(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func marshalJSON(output any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(output); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeJSONObject reads the request body into placeholder. A blank body, or
// well-formed JSON that is not an object, decodes as the empty object.
func DecodeJSONObject(w http.ResponseWriter, r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, _maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	reqBody = bytes.TrimSpace(reqBody)
	if len(reqBody) == 0 || (reqBody[0] != '{' && json.Valid(reqBody)) {
		reqBody = []byte(`{}`)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

// EndpointCORS sets the headers every form endpoint answers with.
func EndpointCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
