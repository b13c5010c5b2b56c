package steps

func (fc *FeatureContext) aContactMessageFrom(name, email, message string) error {
	fc.body = map[string]any{
		"name":    name,
		"email":   email,
		"message": message,
		"source":  "footer",
		"pageUrl": "https://pilot.example.org/about",
	}
	return nil
}

func (fc *FeatureContext) theEmailProviderRejectsMessages(status int, body string) error {
	fc.env.Provider.Reject(status, body)
	return nil
}

func (fc *FeatureContext) iSendTheContactMessage() error {
	response, err := fc.env.API.Contact(fc.body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) emailsShouldBeSent(count int) error {
	fc.require.Len(fc.env.Provider.Sent(), count)
	return nil
}

func (fc *FeatureContext) theEmailSubjectShouldBe(subject string) error {
	sent := fc.env.Provider.Sent()
	fc.require.Len(sent, 1)
	fc.require.Equal(subject, sent[0].Subject)
	return nil
}

func (fc *FeatureContext) theEmailShouldReplyTo(address string) error {
	sent := fc.env.Provider.Sent()
	fc.require.Len(sent, 1)
	fc.require.Equal(address, sent[0].ReplyTo)
	return nil
}

func (fc *FeatureContext) theEmailBodyShouldContain(text string) error {
	sent := fc.env.Provider.Sent()
	fc.require.Len(sent, 1)
	fc.require.Contains(sent[0].Text, text)
	return nil
}
