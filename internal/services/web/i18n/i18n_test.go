package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		cookie      string
		accept      string
		wantTag     string
		wantPersist bool
	}{
		{
			name:        "query param wins over cookie and header",
			url:         "/owners/find?lang=pt-BR",
			cookie:      "en",
			accept:      "en",
			wantTag:     "pt-BR",
			wantPersist: true,
		},
		{
			name:    "cookie wins over header",
			url:     "/owners/find",
			cookie:  "en",
			accept:  "pt-BR",
			wantTag: "en-US",
		},
		{
			name:    "accept-language fallback",
			url:     "/owners/find",
			accept:  "pt-BR, en;q=0.9",
			wantTag: "pt-BR",
		},
		{
			name:    "no hints default to en-US",
			url:     "/owners/find",
			wantTag: "en-US",
		},
		{
			name:    "invalid query param falls through to header",
			url:     "/owners/find?lang=not-a-lang",
			accept:  "pt-BR",
			wantTag: "pt-BR",
		},
		{
			name:    "unsupported cookie falls back to default",
			url:     "/owners/find",
			cookie:  "fr",
			wantTag: "en-US",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			tag, persist := ResolveTag(req)
			if tag.String() != tt.wantTag {
				t.Fatalf("tag = %s, want %s", tag, tt.wantTag)
			}
			if persist != tt.wantPersist {
				t.Fatalf("persist = %t, want %t", persist, tt.wantPersist)
			}
		})
	}
}

func TestSetLanguageCookieAttributes(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, Default())

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != LangCookieName {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, LangCookieName)
	}
	if cookie.Value != Default().String() {
		t.Fatalf("cookie value = %q, want %q", cookie.Value, Default().String())
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want %q", cookie.Path, "/")
	}
	if cookie.MaxAge <= 0 {
		t.Fatal("cookie MaxAge not set")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie SameSite = %v, want Lax", cookie.SameSite)
	}
}

func TestSetLanguageCookieNilWriter(t *testing.T) {
	t.Parallel()

	SetLanguageCookie(nil, Default())
}

func TestCatalogsTranslateOwnerMessages(t *testing.T) {
	t.Parallel()

	en := Printer(Default())
	if got := en.Sprintf("owners.find.heading"); got != "Find Owners" {
		t.Fatalf("en heading = %q, want %q", got, "Find Owners")
	}

	pt := Printer(Supported()[1])
	if got := pt.Sprintf("owners.find.heading"); got != "Buscar Proprietários" {
		t.Fatalf("pt-BR heading = %q, want %q", got, "Buscar Proprietários")
	}
}
