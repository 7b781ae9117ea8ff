package templates

import (
	"github.com/a-h/templ"
	sharedtemplates "github.com/louisbranch/petclinic/internal/services/shared/templates"
	"golang.org/x/text/message"
)

// Layout wraps page content in the shared application chrome.
func Layout(options LayoutOptions, content templ.Component) templ.Component {
	return sharedtemplates.ChromeLayout(sharedtemplates.ChromeLayoutOptions{
		Title:       options.Title,
		Lang:        options.Lang,
		AppName:     options.AppName,
		Loc:         options.Loc,
		CurrentPath: options.CurrentPath,
		Breadcrumbs: options.Breadcrumbs,
		Languages:   options.Languages,
	}, content)
}

func layoutPage(page PageContext, titleKey message.Reference, content templ.Component) templ.Component {
	return Layout(LayoutOptionsForPage(page, titleKey), content)
}
