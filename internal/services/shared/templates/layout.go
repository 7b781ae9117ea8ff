package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/petclinic/internal/platform/branding"
)

const loadingHTML = `<span class="loading loading-ring loading-md"></span>`

// LanguageLink is one language switcher entry rendered in the chrome footer.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// ChromeLayoutOptions carries the inputs for the shared page chrome.
type ChromeLayoutOptions struct {
	// Title is the base page title; the brand suffix is appended on render.
	Title       string
	Lang        string
	AppName     string
	Loc         Localizer
	CurrentPath string
	Breadcrumbs []BreadcrumbItem
	Languages   []LanguageLink
}

// ChromeLayout renders the HTML document shell around page content. Fragment
// requests bypass the chrome entirely, so everything here is full-page only.
func ChromeLayout(options ChromeLayoutOptions, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		lang := strings.TrimSpace(options.Lang)
		if lang == "" {
			lang = "en-US"
		}
		b.WriteString("<!DOCTYPE html>")
		b.WriteString(`<html lang="` + html.EscapeString(lang) + `" data-theme="light">`)
		b.WriteString("<head>")
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>" + html.EscapeString(ComposePageTitle(options.Title)) + "</title>")
		b.WriteString(`<link rel="stylesheet" href="/static/app.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.WriteString(`<script src="/static/app.js" defer></script>`)
		b.WriteString("</head>")
		b.WriteString(`<body class="min-h-screen bg-base-200">`)
		writeChromeHeader(&b, options)
		writeChromeBreadcrumbs(&b, options.Breadcrumbs)
		b.WriteString(`<main id="main-content" class="container mx-auto p-4">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		var f strings.Builder
		f.WriteString("</main>")
		writeChromeFooter(&f, options)
		f.WriteString("</body></html>")
		_, err := io.WriteString(w, f.String())
		return err
	})
}

func writeChromeHeader(b *strings.Builder, options ChromeLayoutOptions) {
	appName := strings.TrimSpace(options.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	b.WriteString(`<header class="navbar bg-base-100 shadow">`)
	b.WriteString(`<div class="flex-1">`)
	b.WriteString(`<a class="btn btn-ghost text-xl" href="/">` + html.EscapeString(appName) + `</a>`)
	b.WriteString(`</div>`)
	b.WriteString(`<nav class="flex-none">`)
	b.WriteString(`<ul class="menu menu-horizontal px-1">`)
	writeChromeNavLink(b, options, "/", T(options.Loc, "nav.home"))
	writeChromeNavLink(b, options, "/owners/find", T(options.Loc, "nav.find_owners"))
	b.WriteString(`</ul>`)
	b.WriteString(`</nav>`)
	b.WriteString(`<div id="page-loading" class="htmx-indicator px-2">` + loadingHTML + `</div>`)
	b.WriteString(`</header>`)
}

func writeChromeNavLink(b *strings.Builder, options ChromeLayoutOptions, target string, label string) {
	class := ""
	if navLinkActive(options.CurrentPath, target) {
		class = ` class="active"`
	}
	escaped := html.EscapeString(target)
	b.WriteString(`<li><a` + class + ` href="` + escaped + `" hx-get="` + escaped + `" hx-target="#main-content" hx-push-url="true" hx-indicator="#page-loading" data-nav-item="true">` + html.EscapeString(label) + `</a></li>`)
}

func navLinkActive(currentPath string, target string) bool {
	currentPath = strings.TrimSpace(currentPath)
	if target == "/" {
		return currentPath == "/"
	}
	return currentPath == target || strings.HasPrefix(currentPath, target+"/")
}

func writeChromeBreadcrumbs(b *strings.Builder, breadcrumbs []BreadcrumbItem) {
	if len(breadcrumbs) == 0 {
		return
	}
	b.WriteString(`<div class="breadcrumbs container mx-auto px-4 text-sm">`)
	b.WriteString("<ul>")
	for _, item := range breadcrumbs {
		if strings.TrimSpace(item.URL) != "" {
			b.WriteString(`<li><a href="` + html.EscapeString(item.URL) + `">` + html.EscapeString(item.Label) + `</a></li>`)
		} else {
			b.WriteString("<li>" + html.EscapeString(item.Label) + "</li>")
		}
	}
	b.WriteString("</ul></div>")
}

func writeChromeFooter(b *strings.Builder, options ChromeLayoutOptions) {
	b.WriteString(`<footer class="footer footer-center bg-base-100 text-base-content p-4">`)
	if len(options.Languages) > 0 {
		b.WriteString(`<nav class="grid grid-flow-col gap-2">`)
		for _, link := range options.Languages {
			class := "link link-hover"
			if link.Active {
				class += " font-bold"
			}
			b.WriteString(`<a class="` + class + `" href="` + html.EscapeString(link.URL) + `">` + html.EscapeString(link.Label) + `</a>`)
		}
		b.WriteString(`</nav>`)
	}
	appName := strings.TrimSpace(options.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	b.WriteString(`<aside><p>` + html.EscapeString(appName) + `</p></aside>`)
	b.WriteString(`</footer>`)
}
