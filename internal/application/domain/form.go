package domain

import (
	"fmt"
	"strings"

	"pilot-server/internal/infra/utils"
)

const OtherCurrentSystem = "Other"

var (
	AnnualFundraisingVolumeBands = []string{
		"Under $250k",
		"$250k-$1M",
		"$1M-$5M",
		"$5M-$20M",
		"$20M+",
		"Not sure",
	}

	DonationVolumeBands = []string{
		"0-50",
		"51-200",
		"201-500",
		"501-2,000",
		"2,000+",
		"Not sure",
	}

	CurrentSystems = []string{
		"Bloomerang",
		"Salesforce Nonprofit Cloud / NPSP",
		"Blackbaud (Raiser's Edge / RE NXT)",
		"DonorPerfect",
		"Neon CRM",
		"Little Green Light",
		"Spreadsheets",
		OtherCurrentSystem,
		"Not sure",
	}
)

// Form is the v1 application as edited in the panel. JSON names are part of
// the wire contract with the intake endpoint.
type Form struct {
	OrgName                     string `json:"orgName"`
	OrgWebsite                  string `json:"orgWebsite"`
	Country                     string `json:"country"`
	AnnualFundraisingVolumeBand string `json:"annualFundraisingVolumeBand"`
	ContactName                 string `json:"contactName"`
	ContactEmail                string `json:"contactEmail"`

	CurrentSystem         string `json:"currentSystem"`
	CurrentSystemOther    string `json:"currentSystemOther"`
	DonationsPerMonthBand string `json:"donationsPerMonthBand"`
	CrmChangeReason       string `json:"crmChangeReason"`

	PilotNotes string `json:"pilotNotes"`
}

type FieldKey string

const (
	FieldOrgName                     FieldKey = "orgName"
	FieldContactName                 FieldKey = "contactName"
	FieldContactEmail                FieldKey = "contactEmail"
	FieldCurrentSystem               FieldKey = "currentSystem"
	FieldDonationsPerMonthBand       FieldKey = "donationsPerMonthBand"
	FieldAnnualFundraisingVolumeBand FieldKey = "annualFundraisingVolumeBand"
)

// RequiredFields is the order in which missing fields are reported and focused.
var RequiredFields = []FieldKey{
	FieldOrgName,
	FieldContactName,
	FieldContactEmail,
	FieldCurrentSystem,
	FieldDonationsPerMonthBand,
	FieldAnnualFundraisingVolumeBand,
}

var FieldSection = map[FieldKey]Section{
	FieldOrgName:                     SectionOrg,
	FieldContactName:                 SectionOrg,
	FieldContactEmail:                SectionOrg,
	FieldCurrentSystem:               SectionSetup,
	FieldDonationsPerMonthBand:       SectionSetup,
	FieldAnnualFundraisingVolumeBand: SectionSetup,
}

func (k FieldKey) Section() Section {
	return FieldSection[k]
}

func (k FieldKey) Label() string {
	switch k {
	case FieldOrgName:
		return "Organization name"
	case FieldContactName:
		return "Primary contact name"
	case FieldContactEmail:
		return "Primary contact email"
	case FieldCurrentSystem:
		return "Current system"
	case FieldDonationsPerMonthBand:
		return "Gift transactions per month"
	case FieldAnnualFundraisingVolumeBand:
		return "Annual fundraising volume"
	default:
		return string(k)
	}
}

func (f Form) value(key FieldKey) string {
	switch key {
	case FieldOrgName:
		return f.OrgName
	case FieldContactName:
		return f.ContactName
	case FieldContactEmail:
		return f.ContactEmail
	case FieldCurrentSystem:
		return f.CurrentSystem
	case FieldDonationsPerMonthBand:
		return f.DonationsPerMonthBand
	case FieldAnnualFundraisingVolumeBand:
		return f.AnnualFundraisingVolumeBand
	default:
		return ""
	}
}

func NormalizeEmail(value string) string {
	return strings.TrimSpace(value)
}

// RequiredMissing lists the required fields that are still empty, in
// RequiredFields order. The email also counts as missing while it does not
// look like an address.
func RequiredMissing(form Form) []FieldKey {
	missing := make([]FieldKey, 0, len(RequiredFields))
	for _, key := range RequiredFields {
		value := strings.TrimSpace(form.value(key))
		if value == "" {
			missing = append(missing, key)
			continue
		}
		if key == FieldContactEmail && !utils.IsValidEmail(NormalizeEmail(value)) {
			missing = append(missing, key)
		}
	}
	return missing
}

func SectionComplete(form Form, section Section) bool {
	for _, key := range RequiredMissing(form) {
		if key.Section() == section {
			return false
		}
	}
	return true
}

func CanSubmit(form Form) bool {
	return len(RequiredMissing(form)) == 0
}

// MissingSummary renders up to three labels, then "+N" for the rest.
func MissingSummary(missing []FieldKey) string {
	if len(missing) == 0 {
		return ""
	}

	shown := missing
	if len(shown) > 3 {
		shown = shown[:3]
	}
	labels := make([]string, 0, len(shown))
	for _, key := range shown {
		labels = append(labels, key.Label())
	}

	summary := strings.Join(labels, ", ")
	if extra := len(missing) - len(shown); extra > 0 {
		summary = fmt.Sprintf("%s +%d", summary, extra)
	}
	return summary
}
