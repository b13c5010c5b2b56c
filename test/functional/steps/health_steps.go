package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.env.API.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	data := fc.decodedResponse()

	fc.require.Contains(data, "status", "Status should be present")
	fc.require.Contains(data, "VERSION", "VERSION should be present")
	fc.require.Contains(data, "COMMIT_HASH", "COMMIT_HASH should be present")

	status, ok := data["status"].(string)
	fc.require.True(ok, "Status should be a string")
	fc.require.Equal("success", status, "Status should be 'success'")
	return nil
}
