package steps

import (
	"bufio"
	"encoding/json"
	"os"
)

func (fc *FeatureContext) aCompleteApplicationFrom(name, organization string) error {
	fc.body = map[string]any{
		"name":         name,
		"email":        "jane@acme.org",
		"organization": organization,
		"currentCrm":   "Bloomerang",
		"goals":        "Cleaner gift entry",
		"pageUrl":      "https://pilot.example.org/",
		"utm":          map[string]any{},
	}
	return nil
}

func (fc *FeatureContext) theRequestFieldIs(field, value string) error {
	fc.body[field] = value
	return nil
}

func (fc *FeatureContext) theApplicationWasOpenedFrom(pageURL string) error {
	fc.body["pageUrl"] = pageURL
	fc.body["utm"] = map[string]any{"utm_source": "newsletter", "utm_campaign": "spring"}
	return nil
}

func (fc *FeatureContext) iSubmitTheApplication() error {
	response, err := fc.env.API.Apply(fc.body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iSubmitTheRawApplicationBody(body string) error {
	response, err := fc.env.API.ApplyRaw(body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) capturedApplications() []map[string]any {
	file, err := os.Open(fc.env.SubmissionsPath)
	if os.IsNotExist(err) {
		return nil
	}
	fc.require.NoError(err)
	defer file.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record map[string]any
		fc.require.NoError(json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	fc.require.NoError(scanner.Err())
	return records
}

func (fc *FeatureContext) applicationsShouldBeCaptured(count int) error {
	fc.require.Len(fc.capturedApplications(), count)
	return nil
}

func (fc *FeatureContext) theCapturedApplicationShouldHave(field, value string) error {
	records := fc.capturedApplications()
	fc.require.NotEmpty(records)
	fc.require.Equal(value, records[len(records)-1][field])
	return nil
}

func (fc *FeatureContext) theCapturedApplicationUTMShouldHave(key, value string) error {
	records := fc.capturedApplications()
	fc.require.NotEmpty(records)
	utm, ok := records[len(records)-1]["utm"].(map[string]any)
	fc.require.True(ok, "utm should be an object")
	fc.require.Equal(value, utm[key])
	return nil
}
