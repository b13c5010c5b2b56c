package httpserver

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _maxEndpointSegments = 3

var (
	metricsMutex sync.Mutex
	httpMetrics  *requestMetrics

	// Path segments that identify a resource rather than a route.
	idSegmentRegex = regexp.MustCompile(`^([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}|[0-9]+|[0-9a-fA-F]{32})$`)
)

type requestMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

// ResetMetricsForTesting drops the instruments so the next middleware picks
// up the current meter provider.
func ResetMetricsForTesting() {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	httpMetrics = nil
}

// IsMetricsInitialized returns whether metrics have been initialized (for testing)
func IsMetricsInitialized() bool {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	return httpMetrics != nil
}

func initMetrics() *requestMetrics {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if httpMetrics != nil {
		return httpMetrics
	}

	meter := otel.GetMeterProvider().Meter("pilot-server")
	m := &requestMetrics{}

	var err error
	m.duration, err = meter.Float64Histogram(
		fmt.Sprintf("%s.%s", "pilot_server", "http.request.duration.seconds"),
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		panic(err)
	}

	m.total, err = meter.Int64Counter(
		fmt.Sprintf("%s.%s", "pilot_server", "http.requests.total"),
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		panic(err)
	}

	m.active, err = meter.Int64UpDownCounter(
		fmt.Sprintf("%s.%s", "pilot_server", "http.requests.active"),
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		panic(err)
	}

	httpMetrics = m
	return m
}

// MetricsMiddleware creates a middleware that measures HTTP request metrics
func MetricsMiddleware() func(http.Handler) http.Handler {
	m := initMetrics()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			routeAttrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)

			m.active.Add(r.Context(), 1, routeAttrs)
			defer m.active.Add(r.Context(), -1, routeAttrs)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrappedWriter, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
				attribute.Int("http.status_code", wrappedWriter.statusCode),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
			m.total.Add(r.Context(), 1, attrs)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not support hijacking")
}

// normalizeEndpoint keeps the endpoint label bounded: identifiers become _id
// and anything deeper than a few segments is folded into the prefix.
func normalizeEndpoint(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "root"
	}

	segments := strings.Split(trimmed, "/")
	if len(segments) > _maxEndpointSegments {
		segments = append(segments[:_maxEndpointSegments], "*")
	}
	for i, segment := range segments {
		if idSegmentRegex.MatchString(segment) {
			segments[i] = "_id"
		}
	}

	return "/" + strings.Join(segments, "/")
}
