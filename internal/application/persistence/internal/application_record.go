package internal

import (
	"time"

	"pilot-server/internal/application/domain"
)

type ApplicationRecord struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SubmittedAt  time.Time `json:"submitted_at" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;index"`
	Organization string    `json:"organization" gorm:"not null"`
	CurrentCrm   string    `json:"current_crm"`
	Goals        string    `json:"goals" gorm:"type:text;not null"`
	PageURL      string    `json:"page_url"`
	UTM          string    `json:"utm" gorm:"type:text"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ApplicationRecord) TableName() string {
	return "pilot_applications"
}

func FromCapturedRecord(requestID string, value domain.CapturedRecord) ApplicationRecord {
	utm := string(value.UTM)
	if utm == "" {
		utm = "{}"
	}
	return ApplicationRecord{
		ID:           requestID,
		SubmittedAt:  value.SubmittedAt.UTC(),
		Name:         value.Name,
		Email:        value.Email,
		Organization: value.Organization,
		CurrentCrm:   value.CurrentCrm,
		Goals:        value.Goals,
		PageURL:      value.PageURL,
		UTM:          utm,
		UserAgent:    value.UserAgent,
	}
}
