package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pilot-server/internal/infra/node"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const _shutdownTimeout = 10 * time.Second

type Server interface {
	Run()
	Shutdown()
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

type ServerOptions struct {
	Address string
	// AllowedOrigins enables cross-origin requests from these origins. When
	// empty no Access-Control-Allow-Origin header is ever sent.
	AllowedOrigins []string
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		panic(err)
	}
}

func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(options ServerOptions, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()

	tracingMiddleware := createTracingMiddleware()
	metricsMiddleware := MetricsMiddleware()

	var handler http.Handler = metricsMiddleware(tracingMiddleware(router))
	if len(options.AllowedOrigins) > 0 {
		handler = newCORS(options.AllowedOrigins).Handler(handler)
	}

	address := options.Address
	if address == "" {
		address = ":3000"
	}

	server := &StandardServer{
		&http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	return server
}

// Endpoints answer their own preflight so the 204 and method list stay theirs.
func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		OptionsPassthrough: true,
		AllowCredentials:   false,
		MaxAge:             300, // Maximum value not ignored by any of major browsers
	})
}

// createTracingMiddleware creates a middleware that adds OpenTelemetry tracing to all requests
func createTracingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			propagator := b3.New()
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.Tracer("pilot-server")
			ctx, span := tracer.Start(ctx, "http.request",
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.remote_addr", r.RemoteAddr),
					attribute.String("span.kind", "server"),
					attribute.String("component", "http-server"),
				),
			)
			defer span.End()

			r = r.WithContext(ctx)

			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			wrapped := &statusCodeResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			span.SetAttributes(attribute.Int("http.status_code", wrapped.statusCode))
		})
	}
}

type statusCodeResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusCodeResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

type healthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"VERSION"`
	CommitHash string `json:"COMMIT_HASH"`
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		info := node.GetNodeInfo()
		ReplyJSONResponse(w, http.StatusOK, healthResponse{
			Status:     "success",
			Version:    info.Version,
			CommitHash: info.CommitHash,
		})
	}
}
