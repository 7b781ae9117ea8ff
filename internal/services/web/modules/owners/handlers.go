package owners

import (
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	sharedhtmx "github.com/louisbranch/petclinic/internal/services/shared/htmx"
	sharedtemplates "github.com/louisbranch/petclinic/internal/services/shared/templates"
	webi18n "github.com/louisbranch/petclinic/internal/services/web/i18n"
	apperrors "github.com/louisbranch/petclinic/internal/services/web/platform/errors"
	"github.com/louisbranch/petclinic/internal/services/web/platform/httpx"
	"github.com/louisbranch/petclinic/internal/services/web/platform/weberror"
	"github.com/louisbranch/petclinic/internal/services/web/routepath"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
	webtemplates "github.com/louisbranch/petclinic/internal/services/web/templates"
)

// handlers serves the owner directory routes.
type handlers struct {
	store   storage.OwnerStore
	appName string
}

// pageContext resolves the request language and builds the shared page
// context. Persisting the language cookie must happen before any body write.
func (h handlers) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webtemplates.PageContext{
		Lang:         tag.String(),
		Loc:          webi18n.Printer(tag),
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		AppName:      h.appName,
	}
}

func (h handlers) handleFindOwnersForm(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	h.renderFindOwnersForm(w, r, page, webtemplates.FindOwnersState{})
}

func (h handlers) handleListOwners(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	lastName, pageNumber := parseListQuery(r)

	owners, total, err := h.store.FindOwnersByLastName(httpx.RequestContext(r), lastName, pageNumber, ownersPageSize)
	if err != nil {
		weberror.WriteError(w, r, page, err)
		return
	}

	// An out-of-range page is empty too, and falls through to the find form
	// before the single-match redirect can fire.
	if len(owners) == 0 {
		state := webtemplates.FindOwnersState{
			LastName: lastName,
			Errors: []webtemplates.FieldError{{
				Field:   routepath.LastNameQueryKey,
				Message: webtemplates.T(page.Loc, "validation.not_found"),
			}},
		}
		h.renderFindOwnersForm(w, r, page, state)
		return
	}

	if total == 1 {
		httpx.WriteRedirect(w, r, routepath.Owner(owners[0].ID))
		return
	}

	state := webtemplates.OwnersListState{
		LastName:    lastName,
		CurrentPage: pageNumber,
		TotalPages:  (total + ownersPageSize - 1) / ownersPageSize,
		TotalItems:  total,
		Owners:      ownerRows(owners),
	}
	sharedhtmx.PushURL(w, routepath.OwnersSearch(lastName, pageNumber))
	title := pageTitleTag(webtemplates.OwnersListPageTitle(page.Loc))
	h.renderPage(w, r, webtemplates.OwnersListContent(page, state), webtemplates.OwnersListPage(page, state), title)
}

func (h handlers) handleOwnerDetails(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	ownerID, ok := parseOwnerID(r)
	if !ok {
		weberror.WriteErrorPage(w, r, page, http.StatusNotFound)
		return
	}

	owner, err := h.store.FindOwnerByID(httpx.RequestContext(r), ownerID)
	if err != nil {
		weberror.WriteError(w, r, page, err)
		return
	}

	page.OwnerName = ownerDisplayName(owner)
	if sharedhtmx.IsHTMXRequest(r) {
		sharedhtmx.PushURL(w, routepath.Owner(ownerID))
	}
	state := ownerDetailsState(owner)
	title := pageTitleTag(webtemplates.OwnerDetailsPageTitle(page.Loc))
	h.renderPage(w, r, webtemplates.OwnerDetailsContent(page, state), webtemplates.OwnerDetailsPage(page, state), title)
}

func (h handlers) handleNewOwnerForm(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	h.renderOwnerForm(w, r, page, webtemplates.OwnerFormState{})
}

func (h handlers) handleCreateOwner(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	form, err := parseOwnerForm(r)
	if err != nil {
		weberror.WriteError(w, r, page, apperrors.E(apperrors.KindInvalidInput, "failed to parse owner form"))
		return
	}

	if fieldErrors := validateOwnerForm(form, page.Loc); len(fieldErrors) > 0 {
		state := webtemplates.OwnerFormState{Values: form.values(), Errors: fieldErrors}
		h.renderOwnerForm(w, r, page, state)
		return
	}

	owner := form.owner(0)
	if err := h.store.SaveOwner(httpx.RequestContext(r), &owner); err != nil {
		weberror.WriteError(w, r, page, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Owner(owner.ID))
}

func (h handlers) handleEditOwnerForm(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	ownerID, ok := parseOwnerID(r)
	if !ok {
		weberror.WriteErrorPage(w, r, page, http.StatusNotFound)
		return
	}

	owner, err := h.store.FindOwnerByID(httpx.RequestContext(r), ownerID)
	if err != nil {
		weberror.WriteError(w, r, page, err)
		return
	}

	page.OwnerName = ownerDisplayName(owner)
	if sharedhtmx.IsHTMXRequest(r) {
		sharedhtmx.PushURL(w, routepath.OwnerEdit(ownerID))
	}
	state := webtemplates.OwnerFormState{ID: ownerID, Values: ownerFormValues(owner)}
	h.renderOwnerForm(w, r, page, state)
}

func (h handlers) handleUpdateOwner(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(w, r)
	ownerID, ok := parseOwnerID(r)
	if !ok {
		weberror.WriteErrorPage(w, r, page, http.StatusNotFound)
		return
	}

	form, err := parseOwnerForm(r)
	if err != nil {
		weberror.WriteError(w, r, page, apperrors.E(apperrors.KindInvalidInput, "failed to parse owner form"))
		return
	}

	page.OwnerName = strings.TrimSpace(form.FirstName + " " + form.LastName)
	if fieldErrors := validateOwnerForm(form, page.Loc); len(fieldErrors) > 0 {
		state := webtemplates.OwnerFormState{ID: ownerID, Values: form.values(), Errors: fieldErrors}
		h.renderOwnerForm(w, r, page, state)
		return
	}

	owner := form.owner(ownerID)
	if err := h.store.SaveOwner(httpx.RequestContext(r), &owner); err != nil {
		weberror.WriteError(w, r, page, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Owner(ownerID))
}

func (h handlers) renderFindOwnersForm(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, state webtemplates.FindOwnersState) {
	title := pageTitleTag(webtemplates.FindOwnersPageTitle(page.Loc))
	h.renderPage(w, r, webtemplates.FindOwnersContent(page, state), webtemplates.FindOwnersPage(page, state), title)
}

func (h handlers) renderOwnerForm(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, state webtemplates.OwnerFormState) {
	title := pageTitleTag(webtemplates.OwnerFormPageTitle(state, page.Loc))
	h.renderPage(w, r, webtemplates.OwnerFormContent(page, state), webtemplates.OwnerFormPage(page, state), title)
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sharedhtmx.RenderPage(w, r, fragment, full, htmxTitle)
}

func pageTitleTag(title string) string {
	return sharedhtmx.TitleTag(sharedtemplates.ComposePageTitle(title))
}

func ownerRows(owners []storage.Owner) []webtemplates.OwnerRow {
	rows := make([]webtemplates.OwnerRow, 0, len(owners))
	for _, owner := range owners {
		rows = append(rows, webtemplates.OwnerRow{
			ID:        owner.ID,
			Name:      ownerDisplayName(owner),
			Address:   owner.Address,
			City:      owner.City,
			Telephone: owner.Telephone,
			Pets:      petNames(owner.Pets),
		})
	}
	return rows
}

func ownerDisplayName(owner storage.Owner) string {
	return strings.TrimSpace(owner.FirstName + " " + owner.LastName)
}

func petNames(pets []storage.Pet) []string {
	if len(pets) == 0 {
		return nil
	}
	names := make([]string, 0, len(pets))
	for _, pet := range pets {
		names = append(names, pet.Name)
	}
	return names
}

func ownerDetailsState(owner storage.Owner) webtemplates.OwnerDetailsState {
	pets := make([]webtemplates.PetRow, 0, len(owner.Pets))
	for _, pet := range owner.Pets {
		pets = append(pets, webtemplates.PetRow{
			Name:      pet.Name,
			BirthDate: pet.BirthDate.Format(time.DateOnly),
			Type:      pet.Type,
		})
	}
	return webtemplates.OwnerDetailsState{
		ID:        owner.ID,
		Name:      ownerDisplayName(owner),
		Address:   owner.Address,
		City:      owner.City,
		Telephone: owner.Telephone,
		Pets:      pets,
	}
}

func ownerFormValues(owner storage.Owner) webtemplates.OwnerFormValues {
	return webtemplates.OwnerFormValues{
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Address:   owner.Address,
		City:      owner.City,
		Telephone: owner.Telephone,
	}
}
