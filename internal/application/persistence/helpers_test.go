package persistence_test

import (
	"encoding/json"
	"time"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/infra/utils"
)

func sampleRecord() domain.CapturedRecord {
	return domain.CapturedRecord{
		SubmittedAt:  utils.Time{Time: time.Date(2026, 2, 3, 4, 5, 6, 789000000, time.UTC)},
		Name:         "Jane",
		Email:        "jane@x.org",
		Organization: "Acme & Sons",
		CurrentCrm:   "Other: Custom tool",
		Goals:        "<grow> donors",
		PageURL:      "https://pilot.example/?utm_source=news",
		UTM:          json.RawMessage(`{"utm_source":"news"}`),
		UserAgent:    "test-agent",
	}
}
