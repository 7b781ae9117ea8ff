package templates

import (
	"strings"

	"github.com/louisbranch/petclinic/internal/platform/branding"
)

// ComposePageTitle appends the product suffix unless the title already
// carries it. Hyphen-suffixed variants are normalized to the pipe form.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	pipeSuffix := " | " + branding.AppName
	if strings.HasSuffix(title, pipeSuffix) {
		return title
	}
	hyphenSuffix := " - " + branding.AppName
	if strings.HasSuffix(title, hyphenSuffix) {
		return strings.TrimSuffix(title, hyphenSuffix) + pipeSuffix
	}
	return title + pipeSuffix
}
