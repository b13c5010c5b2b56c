package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"pilot-server/internal/contact/domain"
	"pilot-server/internal/contact/usecases"
	"pilot-server/internal/infra/httpserver"
	"pilot-server/internal/infra/notification"
	"pilot-server/internal/infra/utils"
	shared "pilot-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serverErrorMessage      = "Server error"
	methodNotAllowedMessage = "Method not allowed"
)

func NewContactController(service usecases.ContactService) *ContactController {
	return &ContactController{
		service: service,
	}
}

var _ httpserver.Controller = &ContactController{}

type ContactController struct {
	service usecases.ContactService
}

func (c *ContactController) AddRoutes(router *http.ServeMux) {
	router.Handle("/api/contact", c.contact())
}

func (c *ContactController) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.EndpointCORS(w)

		switch r.Method {
		case http.MethodOptions:
			httpserver.ReplyStatus(w, http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			httpserver.ReplyWithError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage, "")
			return
		}

		requestID := utils.GenerateRequestID()
		span := httpserver.GetSpanFromContext(r)
		span.SetAttributes(
			attribute.String("endpoint", "contact"),
			attribute.String("request_id", requestID),
		)

		var body shared.RequestBody
		if err := httpserver.DecodeJSONObject(w, r, &body); err != nil {
			slog.Error("contact request unreadable",
				slog.String("request_id", requestID),
				slog.String("error", err.Error()),
			)
			httpserver.ReplyWithError(w, http.StatusInternalServerError, serverErrorMessage, "")
			return
		}

		_, err := c.service.Send(r.Context(), requestID, domain.NewContactMessage(body))

		var sendErr *notification.SendError
		switch {
		case err == nil:
			httpserver.ReplyJSONResponse(w, http.StatusOK, httpserver.OkResponse{Ok: true})
		case errors.Is(err, domain.ErrMissingRequiredFields), errors.Is(err, domain.ErrInvalidEmail):
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, usecases.ErrEmailNotConfigured):
			httpserver.ReplyWithError(w, http.StatusInternalServerError, err.Error(), "")
		case errors.As(err, &sendErr):
			httpserver.ReplyWithError(w, http.StatusBadGateway, sendErr.Error(), "")
		default:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, serverErrorMessage, "")
		}
	}
}
