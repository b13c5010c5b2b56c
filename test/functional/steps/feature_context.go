package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"pilot-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	env          *driver.Environment
	body         map[string]any
	response     *http.Response
	responseData map[string]any
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) Start() error {
	env, err := driver.StartEnvironment()
	if err != nil {
		return err
	}
	fc.env = env
	return nil
}

func (fc *FeatureContext) Stop() {
	if fc.env != nil {
		fc.env.Close()
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response should be ok$`, fc.theResponseShouldBeOk)
	ctx.Then(`^the response should not carry a request id$`, fc.theResponseShouldNotCarryARequestID)
	ctx.Then(`^the response should carry a request id$`, fc.theResponseShouldCarryARequestID)
	ctx.Then(`^the response error should be "([^"]*)"$`, fc.theResponseErrorShouldBe)
	ctx.Then(`^the response error should start with "([^"]*)"$`, fc.theResponseErrorShouldStartWith)
	ctx.When(`^I send a (GET|PUT|DELETE) request to "([^"]*)"$`, fc.iSendARequestTo)
	ctx.When(`^a browser on "([^"]*)" sends a preflight to "([^"]*)"$`, fc.aBrowserSendsAPreflight)
	ctx.Then(`^the response should allow the origin "([^"]*)"$`, fc.theResponseShouldAllowTheOrigin)
	ctx.Then(`^the response should not allow any origin$`, fc.theResponseShouldNotAllowAnyOrigin)

	// Application steps
	ctx.Given(`^a complete application from "([^"]*)" at "([^"]*)"$`, fc.aCompleteApplicationFrom)
	ctx.Given(`^the application field "([^"]*)" is "([^"]*)"$`, fc.theRequestFieldIs)
	ctx.Given(`^the application was opened from "([^"]*)"$`, fc.theApplicationWasOpenedFrom)
	ctx.When(`^I submit the application$`, fc.iSubmitTheApplication)
	ctx.When(`^I submit the raw application body '([^']*)'$`, fc.iSubmitTheRawApplicationBody)
	ctx.Then(`^(\d+) applications? should be captured$`, fc.applicationsShouldBeCaptured)
	ctx.Then(`^the captured application should have "([^"]*)" set to "([^"]*)"$`, fc.theCapturedApplicationShouldHave)
	ctx.Then(`^the captured application utm should have "([^"]*)" set to "([^"]*)"$`, fc.theCapturedApplicationUTMShouldHave)

	// Contact steps
	ctx.Given(`^a contact message from "([^"]*)" at "([^"]*)" saying "([^"]*)"$`, fc.aContactMessageFrom)
	ctx.Given(`^the contact field "([^"]*)" is "([^"]*)"$`, fc.theRequestFieldIs)
	ctx.Given(`^the email provider rejects messages with status (\d+) and body '([^']*)'$`, fc.theEmailProviderRejectsMessages)
	ctx.When(`^I send the contact message$`, fc.iSendTheContactMessage)
	ctx.Then(`^(\d+) emails? should be sent$`, fc.emailsShouldBeSent)
	ctx.Then(`^the email subject should be "([^"]*)"$`, fc.theEmailSubjectShouldBe)
	ctx.Then(`^the email should reply to "([^"]*)"$`, fc.theEmailShouldReplyTo)
	ctx.Then(`^the email body should contain "([^"]*)"$`, fc.theEmailBodyShouldContain)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, fc.env.Reset()
	})
}

func (fc *FeatureContext) reset() {
	fc.body = nil
	fc.response = nil
	fc.responseData = nil
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

// decodedResponse reads the response body once and keeps it for later steps.
func (fc *FeatureContext) decodedResponse() map[string]any {
	if fc.responseData == nil {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
		fc.responseData = data
	}
	return fc.responseData
}
