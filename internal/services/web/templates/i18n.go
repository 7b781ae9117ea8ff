package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key through loc. Without a localizer the string key itself
// serves as the format, so untranslated pages stay readable.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return keyString
	}
	return fmt.Sprintf(keyString, args...)
}
