// Package owners serves the owner directory: searching, listing, owner
// details, and the create/edit forms.
package owners

import (
	"net/http"
	"strings"

	"github.com/louisbranch/petclinic/internal/platform/branding"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
)

// Module provides owner directory routes backed by an owner store.
type Module struct {
	store   storage.OwnerStore
	appName string
}

// New returns an owners module backed by store.
func New(store storage.OwnerStore, appName string) Module {
	if strings.TrimSpace(appName) == "" {
		appName = branding.AppName
	}
	return Module{store: store, appName: appName}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "owners" }

// RegisterRoutes mounts the owner routes on mux.
func (m Module) RegisterRoutes(mux *http.ServeMux) {
	registerRoutes(mux, handlers{store: m.store, appName: m.appName})
}
