package owners

import (
	"net/http"

	"github.com/louisbranch/petclinic/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Owners, h.handleListOwners)
	mux.HandleFunc(http.MethodGet+" "+routepath.OwnersFind, h.handleFindOwnersForm)

	mux.HandleFunc(http.MethodGet+" "+routepath.OwnersNew, h.handleNewOwnerForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.OwnersNew, h.handleCreateOwner)

	mux.HandleFunc(http.MethodGet+" "+routepath.OwnerPattern, h.handleOwnerDetails)
	mux.HandleFunc(http.MethodGet+" "+routepath.OwnerEditPattern, h.handleEditOwnerForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.OwnerEditPattern, h.handleUpdateOwner)
}
