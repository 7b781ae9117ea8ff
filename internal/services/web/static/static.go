// Package static embeds the stylesheet, script, and image assets served
// under /static/.
package static

import "embed"

//go:embed *.css *.js *.svg
var FS embed.FS
