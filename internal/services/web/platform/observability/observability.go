// Package observability provides HTTP middleware that records per-request
// telemetry on the service logger.
package observability

import (
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// RequestLogger returns middleware that logs one line per request with the
// method, path, response status, bytes written, latency, and request id.
// When a trace span is active on the request context its trace id is
// appended so log lines can be correlated with exported spans.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			line := "method=%s path=%s status=%d bytes=%d latency=%s request_id=%s"
			args := []any{r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start), r.Header.Get("X-Request-ID")}
			if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
				line += " trace_id=%s"
				args = append(args, sc.TraceID().String())
			}
			logger.Printf(line, args...)
		})
	}
}

// statusRecorder captures the status code and body size written by the
// wrapped handler. Handlers that never call WriteHeader report 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}
