// Package weberror renders shared error pages for web handlers.
package weberror

import (
	"context"
	"net/http"

	sharedhtmx "github.com/louisbranch/petclinic/internal/services/shared/htmx"
	sharedtemplates "github.com/louisbranch/petclinic/internal/services/shared/templates"
	apperrors "github.com/louisbranch/petclinic/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/petclinic/internal/services/web/templates"
)

// Normalize collapses statuses onto the two error-page variants.
func Normalize(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// WriteErrorPage writes a localized error page for full-page and HTMX requests.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int) {
	if w == nil {
		return
	}
	statusCode = Normalize(statusCode)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if sharedhtmx.IsHTMXRequest(r) {
		title := sharedtemplates.ComposePageTitle(webtemplates.AppErrorPageTitle(statusCode, page.Loc))
		if titleTag := sharedhtmx.TitleTag(title); titleTag != "" {
			_, _ = w.Write([]byte(titleTag))
		}
		_ = webtemplates.ErrorContent(page, statusCode).Render(requestContext(r), w)
		return
	}

	_ = webtemplates.ErrorPage(page, statusCode).Render(requestContext(r), w)
}

// WriteError maps err onto an error page, preserving not-found semantics.
func WriteError(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, err error) {
	WriteErrorPage(w, r, page, apperrors.HTTPStatus(err))
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
