package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/usecases"
	"pilot-server/internal/infra/googleauth"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const DefaultSheetTab = "Applications"

type SheetsConfig struct {
	SheetID             string
	Tab                 string
	ServiceAccountEmail string
	PrivateKey          string
	// Endpoint overrides the Sheets API base URL; empty means Google's.
	Endpoint string
}

func NewSheetsCapture(config SheetsConfig, authenticator *googleauth.Authenticator) *SheetsCapture {
	if config.Tab == "" {
		config.Tab = DefaultSheetTab
	}
	return &SheetsCapture{
		config:        config,
		authenticator: authenticator,
	}
}

var _ usecases.CaptureBackend = (*SheetsCapture)(nil)

// SheetsCapture appends one row per application. It authenticates again on
// every call.
type SheetsCapture struct {
	config        SheetsConfig
	authenticator *googleauth.Authenticator
}

func (c *SheetsCapture) Mode() usecases.CaptureMode {
	return usecases.CaptureModeGoogleSheets
}

func (c *SheetsCapture) MissingConfiguration() []string {
	var missing []string
	if c.config.SheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if c.config.ServiceAccountEmail == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if c.config.PrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	return missing
}

func (c *SheetsCapture) Capture(ctx context.Context, requestID string, record domain.CapturedRecord) error {
	slog.Info("appending application to sheet",
		slog.String("request_id", requestID),
		slog.String("sheet_id", c.config.SheetID),
		slog.String("tab", c.config.Tab),
		slog.String("service_account_email", c.config.ServiceAccountEmail),
	)

	token, err := c.authenticator.Token(ctx, googleauth.ServiceAccount{
		Email:      c.config.ServiceAccountEmail,
		PrivateKey: c.config.PrivateKey,
	})
	if err != nil {
		return err
	}

	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))),
	}
	if c.config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.config.Endpoint))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("creating sheets service: %w", err)
	}

	sheetRange := c.config.Tab + "!A1"
	values := &sheets.ValueRange{
		Range:          sheetRange,
		MajorDimension: "ROWS",
		Values:         [][]any{record.Row()},
	}

	_, err = service.Spreadsheets.Values.
		Append(c.config.SheetID, sheetRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &usecases.UpstreamError{Operation: "Sheets append", StatusCode: apiErr.Code, Body: apiErr.Body}
	}
	if err != nil {
		return fmt.Errorf("appending to sheet: %w", err)
	}

	return nil
}
