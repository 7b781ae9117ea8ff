package templates

import (
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	appErrorTitleKey           = "title.error"
	appErrorHeadingKey         = "error.heading"
	appErrorMessageNotFoundKey = "error.not_found"
	appErrorMessageInternalKey = "error.internal"
	appErrorBackKey            = "error.back"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	_ = statusCode
	return T(loc, appErrorTitleKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageInternalKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorContent renders the error panel without the page chrome.
func ErrorContent(page PageContext, statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body items-center text-center">`)
		b.WriteString(`<img src="/static/pets.svg" alt="" class="w-32">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, appErrorHeadingKey)) + `</h2>`)
		b.WriteString(`<p>` + html.EscapeString(appErrorMessage(statusCode, page.Loc)) + `</p>`)
		b.WriteString(`<div class="card-actions">`)
		b.WriteString(`<a class="btn btn-primary" href="/owners/find">` + html.EscapeString(T(page.Loc, appErrorBackKey)) + `</a>`)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ErrorPage renders the full error page.
func ErrorPage(page PageContext, statusCode int) templ.Component {
	return layoutPage(page, appErrorTitleKey, ErrorContent(page, statusCode))
}
