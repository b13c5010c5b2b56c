package steps

import (
	"net/http"
	"strings"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theResponseShouldBeOk() error {
	data := fc.decodedResponse()
	fc.require.Equal(true, data["ok"], "ok should be true")
	fc.require.NotContains(data, "error")
	return nil
}

func (fc *FeatureContext) theResponseShouldNotCarryARequestID() error {
	fc.require.NotContains(fc.decodedResponse(), "requestId")
	return nil
}

func (fc *FeatureContext) theResponseShouldCarryARequestID() error {
	requestID, ok := fc.decodedResponse()["requestId"].(string)
	fc.require.True(ok, "requestId should be a string")
	fc.require.NotEmpty(requestID)
	return nil
}

func (fc *FeatureContext) theResponseErrorShouldBe(message string) error {
	data := fc.decodedResponse()
	fc.require.Equal(false, data["ok"], "ok should be false")
	fc.require.Equal(message, data["error"])
	return nil
}

func (fc *FeatureContext) theResponseErrorShouldStartWith(prefix string) error {
	data := fc.decodedResponse()
	fc.require.Equal(false, data["ok"], "ok should be false")
	message, _ := data["error"].(string)
	fc.require.True(strings.HasPrefix(message, prefix), "error %q should start with %q", message, prefix)
	return nil
}

func (fc *FeatureContext) iSendARequestTo(method, path string) error {
	response, err := fc.env.API.Call(method, path)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) aBrowserSendsAPreflight(origin, path string) error {
	response, err := fc.env.API.Preflight(path, origin)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldAllowTheOrigin(origin string) error {
	fc.require.Equal(origin, fc.response.Header.Get("Access-Control-Allow-Origin"))
	return nil
}

func (fc *FeatureContext) theResponseShouldNotAllowAnyOrigin() error {
	fc.require.Empty(fc.response.Header.Get("Access-Control-Allow-Origin"))
	fc.require.Equal(http.StatusNoContent, fc.response.StatusCode)
	return nil
}
