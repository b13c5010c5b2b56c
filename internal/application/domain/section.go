package domain

type Section string

const (
	SectionOrg       Section = "org"
	SectionSetup     Section = "setup"
	SectionReadiness Section = "readiness"
)

var Sections = []Section{SectionOrg, SectionSetup, SectionReadiness}

func (s Section) Label() string {
	switch s {
	case SectionOrg:
		return "Org snapshot"
	case SectionSetup:
		return "Current setup"
	case SectionReadiness:
		return "Confirm"
	default:
		return string(s)
	}
}

func (s Section) IsValid() bool {
	switch s {
	case SectionOrg, SectionSetup, SectionReadiness:
		return true
	default:
		return false
	}
}

// Next is a no-op on the last section.
func (s Section) Next() Section {
	switch s {
	case SectionOrg:
		return SectionSetup
	default:
		return SectionReadiness
	}
}

// Previous is a no-op on the first section.
func (s Section) Previous() Section {
	switch s {
	case SectionReadiness:
		return SectionSetup
	default:
		return SectionOrg
	}
}
