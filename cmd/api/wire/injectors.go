//go:build wireinject
// +build wireinject

package wire

import (
	applicationHTTPAPI "pilot-server/internal/application/httpapi"
	applicationUsecases "pilot-server/internal/application/usecases"
	contactHTTPAPI "pilot-server/internal/contact/httpapi"
	contactUsecases "pilot-server/internal/contact/usecases"

	"github.com/google/wire"
)

func InitializeApplyController() (*applicationHTTPAPI.ApplyController, error) {
	wire.Build(
		provideAppConfig,
		provideCaptureBackend,
		applicationUsecases.NewIntakeService,
		wire.Bind(new(applicationUsecases.IntakeService), new(*applicationUsecases.SimpleIntakeService)),
		provideApplyControllerConfig,
		applicationHTTPAPI.NewApplyController,
	)
	return nil, nil
}

func InitializeContactController() (*contactHTTPAPI.ContactController, error) {
	wire.Build(
		provideAppConfig,
		provideContactSettings,
		provideEmailSender,
		contactUsecases.NewContactService,
		wire.Bind(new(contactUsecases.ContactService), new(*contactUsecases.SimpleContactService)),
		contactHTTPAPI.NewContactController,
	)
	return nil, nil
}
