package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/usecases"
	"pilot-server/internal/infra/httpserver"
	"pilot-server/internal/infra/utils"
	shared "pilot-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/attribute"
)

const (
	submissionFailedMessage = "Submission failed"
	methodNotAllowedMessage = "Method not allowed"
)

type ApplyControllerConfig struct {
	// Debug returns the underlying error message instead of a generic one.
	Debug bool
}

func NewApplyController(service usecases.IntakeService, config ApplyControllerConfig) *ApplyController {
	return &ApplyController{
		service: service,
		debug:   config.Debug,
	}
}

var _ httpserver.Controller = &ApplyController{}

type ApplyController struct {
	service usecases.IntakeService
	debug   bool
}

func (c *ApplyController) AddRoutes(router *http.ServeMux) {
	router.Handle("/api/apply", c.apply())
}

func (c *ApplyController) apply() http.HandlerFunc {
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
			attribute.String("endpoint", "apply"),
			attribute.String("request_id", requestID),
		)

		var body shared.RequestBody
		if err := httpserver.DecodeJSONObject(w, r, &body); err != nil {
			c.replyUnexpected(w, requestID, err)
			return
		}

		receipt, err := c.service.Submit(r.Context(), requestID, domain.NewIntakeRequest(body, r.UserAgent()))

		var misconfigured *usecases.CaptureMisconfiguredError
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrMissingRequiredFields), errors.Is(err, domain.ErrInvalidEmail):
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error(), "")
			return
		case errors.As(err, &misconfigured):
			httpserver.ReplyWithError(w, http.StatusInternalServerError, misconfigured.Error(), requestID)
			return
		default:
			c.replyUnexpected(w, requestID, err)
			return
		}

		response := httpserver.OkResponse{Ok: true}
		if receipt.Outcome == usecases.IntakeAccepted && receipt.Mode.EchoesRequestID() {
			response.RequestID = requestID
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ApplyController) replyUnexpected(w http.ResponseWriter, requestID string, err error) {
	slog.Error("application submission failed",
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
		slog.String("stack", string(debug.Stack())),
	)

	message := submissionFailedMessage
	if c.debug {
		message = err.Error()
	}
	httpserver.ReplyWithError(w, http.StatusInternalServerError, message, requestID)
}
