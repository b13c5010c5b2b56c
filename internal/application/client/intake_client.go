package client

import (
	"context"
	"net/http"

	"pilot-server/internal/application/domain"
)

type ApplyRequest struct {
	Payload domain.SubmissionPayload
	PageURL string
}

type ApplyResult struct {
	// RequestID is only returned by non-file capture modes.
	RequestID string
}

// applyBody keeps the legacy fields at the top level next to the nested form.
type applyBody struct {
	domain.LegacyFields
	FormVersion string      `json:"formVersion"`
	Form        domain.Form `json:"form"`
	Website     string      `json:"website"`
	PageURL     string      `json:"pageUrl"`
	UTM         domain.UTM  `json:"utm"`
}

var _ Applier = (*IntakeClient)(nil)

type IntakeClient struct {
	api apiClient
}

func NewIntakeClient(baseURL string, httpClient *http.Client) *IntakeClient {
	return &IntakeClient{api: newAPIClient(baseURL, httpClient)}
}

func (c *IntakeClient) Apply(ctx context.Context, request ApplyRequest) (ApplyResult, error) {
	response, err := c.api.post(ctx, "/api/apply", applyBody{
		LegacyFields: request.Payload.Legacy,
		FormVersion:  request.Payload.FormVersion,
		Form:         request.Payload.Form,
		Website:      request.Payload.Honeypot,
		PageURL:      request.PageURL,
		UTM:          domain.UTMFromURL(request.PageURL),
	})
	if err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{RequestID: response.RequestID}, nil
}
