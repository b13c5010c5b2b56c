package wire

import (
	"log/slog"
	"strings"

	"pilot-server/cmd/config"
	"pilot-server/internal/application/httpapi"
	"pilot-server/internal/application/persistence"
	"pilot-server/internal/application/usecases"
	contactUsecases "pilot-server/internal/contact/usecases"
	"pilot-server/internal/infra/googleauth"
	"pilot-server/internal/infra/notification"
	"pilot-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideApplyControllerConfig(cfg config.AppConfig) httpapi.ApplyControllerConfig {
	return httpapi.ApplyControllerConfig{Debug: cfg.Capture.Debug}
}

// provideCaptureBackend selects the backend once at startup. Missing settings
// do not stop the server; they surface as a failed submission instead.
func provideCaptureBackend(cfg config.AppConfig) (usecases.CaptureBackend, error) {
	mode := usecases.ParseCaptureMode(cfg.Capture.Mode)
	slog.Info("capture backend selected", slog.String("mode", string(mode)))

	switch mode {
	case usecases.CaptureModeGoogleSheets:
		exchanger := googleauth.NewTokenExchanger(cfg.Google.TokenURL, nil)
		return persistence.NewSheetsCapture(persistence.SheetsConfig{
			SheetID:             cfg.Google.SheetID,
			Tab:                 cfg.Google.SheetTab,
			ServiceAccountEmail: cfg.Google.ServiceAccountEmail,
			PrivateKey:          cfg.Google.PrivateKey,
			Endpoint:            cfg.Google.SheetsEndpoint,
		}, googleauth.NewAuthenticator(exchanger)), nil
	case usecases.CaptureModeDatabase:
		if cfg.Database.DSN == "" {
			return persistence.NewMisconfiguredCapture(mode, "DATABASE_DSN"), nil
		}
		orm, err := sql.Open(sql.ParseDriver(cfg.Database.Driver), cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		capture, err := persistence.NewDatabaseCapture(orm)
		if err != nil {
			return nil, err
		}
		return capture, nil
	default:
		return persistence.NewNDJSONCapture(cfg.Capture.SubmissionsPath), nil
	}
}

func provideContactSettings(cfg config.AppConfig) contactUsecases.ContactSettings {
	return contactUsecases.ContactSettings{
		Provider:      cfg.Contact.Provider,
		APIKey:        cfg.Contact.APIKey(),
		FromEmail:     cfg.Contact.FromEmail,
		ToEmail:       cfg.Contact.ToEmail,
		SubjectPrefix: cfg.Contact.SubjectPrefix,
	}
}

func provideEmailSender(cfg config.AppConfig) (notification.EmailSender, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.Contact.Provider), contactUsecases.ProviderMailerSend) {
		client, err := notification.NewMailerSendClient(notification.MailerSendConfig{
			APIKey: cfg.Contact.MailerSendAPIKey,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	client, err := notification.NewResendClient(notification.ResendConfig{
		APIKey:  cfg.Contact.ResendAPIKey,
		BaseURL: cfg.Contact.ResendBaseURL,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
