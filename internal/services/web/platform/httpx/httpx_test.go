package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChainRunsFirstMiddlewareOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusNoContent)
	}), tag("outer"), nil, tag("inner"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if got := strings.Join(order, ","); got != "outer,inner,handler" {
		t.Fatalf("call order = %q, want %q", got, "outer,inner,handler")
	}
}

func TestChainDefaultsNilHandlerToNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{name: "generates id when missing", incoming: "", want: ""},
		{name: "preserves caller id", incoming: "req-123", want: "req-123"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Header.Get("X-Request-ID")
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if seen == "" {
				t.Fatal("handler saw no request id")
			}
			if tt.want != "" && seen != tt.want {
				t.Fatalf("request id = %q, want %q", seen, tt.want)
			}
			if got := rr.Header().Get("X-Request-ID"); got != seen {
				t.Fatalf("echoed id = %q, want %q", got, seen)
			}
		})
	}
}

func TestRecoverPanicWritesInternalServerError(t *testing.T) {
	t.Parallel()

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestRecoverPanicLogsRequestDetails(t *testing.T) {
	prev := log.Writer()
	defer log.SetOutput(prev)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	line := buffer.String()
	for _, marker := range []string{"panic serving", "/panic", "request_id=req-42", "boom"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("panic log missing %q: %q", marker, line)
		}
	}
}

func TestRecoverPanicPassesThroughNormalResponses(t *testing.T) {
	t.Parallel()

	h := RecoverPanic()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
}

func TestRequestContextFallsBackForNilRequest(t *testing.T) {
	t.Parallel()

	if RequestContext(nil) == nil {
		t.Fatal("expected non-nil context for nil request")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestContext(req); got != req.Context() {
		t.Fatal("expected the request's own context")
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		htmx         bool
		wantStatus   int
		wantLocation string
		wantHX       string
	}{
		{
			name:         "plain request gets 302",
			wantStatus:   http.StatusFound,
			wantLocation: "/owners/7",
		},
		{
			name:       "htmx request gets HX-Redirect",
			htmx:       true,
			wantStatus: http.StatusOK,
			wantHX:     "/owners/7",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/owners/new", nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rr := httptest.NewRecorder()
			WriteRedirect(rr, req, "/owners/7")

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tt.wantLocation)
			}
			if got := rr.Header().Get("HX-Redirect"); got != tt.wantHX {
				t.Fatalf("HX-Redirect = %q, want %q", got, tt.wantHX)
			}
		})
	}
}

func TestWriteRedirectHandlesNilRequest(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, nil, "/owners/7")

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/owners/7" {
		t.Fatalf("Location = %q, want %q", got, "/owners/7")
	}
}

func TestWriteHXRedirectSetsHeader(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteHXRedirect(rr, "/owners/3")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Redirect"); got != "/owners/3" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/owners/3")
	}
}

func TestRedirectHelpersTolerateNilWriter(t *testing.T) {
	t.Parallel()

	WriteRedirect(nil, nil, "/ignored")
	WriteHXRedirect(nil, "/ignored")
}
