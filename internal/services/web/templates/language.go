package templates

import (
	sharedi18n "github.com/louisbranch/petclinic/internal/services/shared/i18nhttp"
	sharedtemplates "github.com/louisbranch/petclinic/internal/services/shared/templates"
	webi18n "github.com/louisbranch/petclinic/internal/services/web/i18n"
	"golang.org/x/text/language"
)

// languageLinks builds the chrome language-switcher entries. Each link keeps
// the current path and query with only the lang param swapped, and the
// page's resolved language is marked active.
func languageLinks(page PageContext) []sharedtemplates.LanguageLink {
	options := sharedi18n.BuildLanguageOptions(webi18n.Supported(), page.Lang, func(tag language.Tag) string {
		return T(page.Loc, sharedi18n.LanguageKeyLabel(tag))
	})

	links := make([]sharedtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, sharedtemplates.LanguageLink{
			Label:  option.Label,
			URL:    sharedi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, option.Tag),
			Active: option.Active,
		})
	}
	return links
}
