package templates

import (
	sharedtemplates "github.com/louisbranch/petclinic/internal/services/shared/templates"
	"golang.org/x/text/message"
)

type LayoutOptions struct {
	Title       string
	Lang        string
	AppName     string
	Loc         Localizer
	CurrentPath string
	Breadcrumbs []sharedtemplates.BreadcrumbItem
	Languages   []sharedtemplates.LanguageLink
}

// LayoutOptionsForPage builds the shared layout options from a page context and title key.
func LayoutOptionsForPage(page PageContext, titleKey message.Reference) LayoutOptions {
	return LayoutOptions{
		Title:       T(page.Loc, titleKey),
		Lang:        page.Lang,
		AppName:     page.AppName,
		Loc:         page.Loc,
		CurrentPath: page.CurrentPath,
		Breadcrumbs: pageBreadcrumbs(page),
		Languages:   languageLinks(page),
	}
}

func pageBreadcrumbs(page PageContext) []sharedtemplates.BreadcrumbItem {
	return sharedtemplates.BuildPathBreadcrumbs(page.CurrentPath, page.Loc, ownerNamesForPath(page.CurrentPath, page.OwnerName))
}
