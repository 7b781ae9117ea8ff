// Package i18n holds the web service's message catalogs and resolves the
// request language. English and Brazilian Portuguese are supported; the
// catalogs live in the messages_*.go files.
package i18n

import (
	"net/http"

	"github.com/louisbranch/petclinic/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangCookieName stores the visitor's language preference.
const LangCookieName = i18nhttp.LangCookieName

// Supported lists the languages the web service renders.
func Supported() []language.Tag {
	return i18nhttp.Supported()
}

// Default is the language used when the request carries no usable hint.
func Default() language.Tag {
	return i18nhttp.Default()
}

// Printer returns a message printer bound to tag.
func Printer(tag language.Tag) *message.Printer {
	return i18nhttp.Printer(tag)
}

// ResolveTag picks the request language: the lang query param wins, then
// the preference cookie, then Accept-Language. The bool reports whether the
// choice came from the query param and should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	return i18nhttp.ResolveTag(r)
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	i18nhttp.SetLanguageCookie(w, tag)
}
