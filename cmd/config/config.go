package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"pilot-server/internal/infra/utils"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// Every key is read from the environment variable it is bound to here. A
// config/server.yaml file may provide the same keys.
var _envBindings = map[string]string{
	"general.log_level":            "LOG_LEVEL",
	"server.address":               "HTTP_ADDR",
	"server.allowed_origins":       "ALLOWED_ORIGINS",
	"capture.mode":                 "CAPTURE_MODE",
	"capture.submissions_path":     "SUBMISSIONS_PATH",
	"capture.debug":                "APPLY_DEBUG",
	"google.sheet_id":              "GOOGLE_SHEET_ID",
	"google.sheet_tab":             "GOOGLE_SHEET_TAB",
	"google.service_account_email": "GOOGLE_SERVICE_ACCOUNT_EMAIL",
	"google.private_key":           "GOOGLE_PRIVATE_KEY",
	"google.token_url":             "GOOGLE_TOKEN_URL",
	"google.sheets_endpoint":       "GOOGLE_SHEETS_ENDPOINT",
	"database.driver":              "DATABASE_DRIVER",
	"database.dsn":                 "DATABASE_DSN",
	"contact.provider":             "CONTACT_EMAIL_PROVIDER",
	"contact.resend_api_key":       "RESEND_API_KEY",
	"contact.resend_base_url":      "RESEND_BASE_URL",
	"contact.mailersend_api_key":   "MAILERSEND_API_KEY",
	"contact.from_email":           "CONTACT_FROM_EMAIL",
	"contact.to_email":             "CONTACT_TO_EMAIL",
	"contact.subject_prefix":       "CONTACT_SUBJECT_PREFIX",
	"telemetry.otelcol_endpoint":   "OTELCOL_ENDPOINT",
}

var _defaults = map[string]string{
	"general.log_level":          "info",
	"server.address":             ":3000",
	"capture.mode":               "ndjson",
	"capture.submissions_path":   "/tmp/fundraising-pilot-applications.ndjson",
	"google.sheet_tab":           "Applications",
	"database.driver":            "postgres",
	"contact.provider":           "resend",
	"contact.subject_prefix":     "[Contact]",
	"telemetry.otelcol_endpoint": "localhost:4317",
}

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		config, err := load(viper.New())
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func load(v *viper.Viper) (AppConfig, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	for key, value := range _defaults {
		v.SetDefault(key, value)
	}
	for key, env := range _envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return AppConfig{}, err
		}
	}

	get := func(key string) string {
		value := v.GetString(key)
		if strings.TrimSpace(value) == "" {
			return _defaults[key]
		}
		return value
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: strings.ToLower(strings.TrimSpace(get("general.log_level"))),
		},
		Server: ServerConfig{
			Address:        get("server.address"),
			AllowedOrigins: splitList(get("server.allowed_origins")),
		},
		Capture: CaptureConfig{
			Mode:            get("capture.mode"),
			SubmissionsPath: get("capture.submissions_path"),
			Debug:           utils.IsTruthy(get("capture.debug")),
		},
		Google: GoogleConfig{
			SheetID:             get("google.sheet_id"),
			SheetTab:            get("google.sheet_tab"),
			ServiceAccountEmail: get("google.service_account_email"),
			PrivateKey:          get("google.private_key"),
			TokenURL:            get("google.token_url"),
			SheetsEndpoint:      get("google.sheets_endpoint"),
		},
		Database: DatabaseConfig{
			Driver: get("database.driver"),
			DSN:    get("database.dsn"),
		},
		Contact: ContactConfig{
			Provider:         get("contact.provider"),
			ResendAPIKey:     get("contact.resend_api_key"),
			ResendBaseURL:    get("contact.resend_base_url"),
			MailerSendAPIKey: get("contact.mailersend_api_key"),
			FromEmail:        get("contact.from_email"),
			ToEmail:          get("contact.to_email"),
			SubjectPrefix:    get("contact.subject_prefix"),
		},
		Telemetry: TelemetryConfig{
			OtelcolEndpoint: get("telemetry.otelcol_endpoint"),
		},
	}, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

type AppConfig struct {
	General   GeneralConfig
	Server    ServerConfig
	Capture   CaptureConfig
	Google    GoogleConfig
	Database  DatabaseConfig
	Contact   ContactConfig
	Telemetry TelemetryConfig
}

type GeneralConfig struct {
	LogLevel string
}

type ServerConfig struct {
	Address        string
	AllowedOrigins []string
}

type CaptureConfig struct {
	Mode            string
	SubmissionsPath string
	Debug           bool
}

type GoogleConfig struct {
	SheetID             string
	SheetTab            string
	ServiceAccountEmail string
	PrivateKey          string
	TokenURL            string
	SheetsEndpoint      string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type ContactConfig struct {
	Provider         string
	ResendAPIKey     string
	ResendBaseURL    string
	MailerSendAPIKey string
	FromEmail        string
	ToEmail          string
	SubjectPrefix    string
}

// APIKey is the key of the selected provider.
func (c ContactConfig) APIKey() string {
	if strings.EqualFold(strings.TrimSpace(c.Provider), "mailersend") {
		return c.MailerSendAPIKey
	}
	return c.ResendAPIKey
}

type TelemetryConfig struct {
	OtelcolEndpoint string
}
