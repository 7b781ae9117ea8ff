package templates

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/petclinic/internal/services/web/routepath"
)

const (
	findOwnersTitleKey   = "owners.find.heading"
	ownersListTitleKey   = "owners.list.heading"
	ownerNewTitleKey     = "title.owner_new"
	ownerEditTitleKey    = "title.owner_edit"
	ownerDetailsTitleKey = "owner.details.heading"
)

// hxContentAttrs targets fragment swaps at the chrome content region.
const hxContentAttrs = ` hx-target="#main-content" hx-indicator="#page-loading"`

// FieldError reports a validation failure for a single form field.
type FieldError struct {
	Field   string
	Message string
}

// OwnerFormValues carries the raw owner form inputs for re-rendering.
type OwnerFormValues struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

// OwnerFormState drives the owner create and edit forms. A zero ID means the
// form creates a new owner.
type OwnerFormState struct {
	ID     int64
	Values OwnerFormValues
	Errors []FieldError
}

// FindOwnersState drives the find owners form.
type FindOwnersState struct {
	LastName string
	Errors   []FieldError
}

// OwnerRow is one row in the owners list.
type OwnerRow struct {
	ID        int64
	Name      string
	Address   string
	City      string
	Telephone string
	Pets      []string
}

// OwnersListState drives the paginated owners list.
type OwnersListState struct {
	LastName    string
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Owners      []OwnerRow
}

// PetRow is one pet row in the owner details pets table.
type PetRow struct {
	Name      string
	BirthDate string
	Type      string
}

// OwnerDetailsState drives the owner details page.
type OwnerDetailsState struct {
	ID        int64
	Name      string
	Address   string
	City      string
	Telephone string
	Pets      []PetRow
}

// FindOwnersPageTitle returns the browser page title for the find owners form.
func FindOwnersPageTitle(loc Localizer) string {
	return T(loc, findOwnersTitleKey)
}

// OwnersListPageTitle returns the browser page title for the owners list.
func OwnersListPageTitle(loc Localizer) string {
	return T(loc, ownersListTitleKey)
}

// OwnerFormPageTitle returns the browser page title for the owner form.
func OwnerFormPageTitle(state OwnerFormState, loc Localizer) string {
	if state.ID > 0 {
		return T(loc, ownerEditTitleKey)
	}
	return T(loc, ownerNewTitleKey)
}

// OwnerDetailsPageTitle returns the browser page title for owner details.
func OwnerDetailsPageTitle(loc Localizer) string {
	return T(loc, ownerDetailsTitleKey)
}

// FindOwnersContent renders the find owners form without the page chrome.
func FindOwnersContent(page PageContext, state FindOwnersState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, findOwnersTitleKey)) + `</h2>`)
		b.WriteString(`<form method="get" action="` + routepath.Owners + `" hx-get="` + routepath.Owners + `"` + hxContentAttrs + `>`)
		writeInputField(&b, page.Loc, "owner.last_name", routepath.LastNameQueryKey, state.LastName, fieldErrorMessage(state.Errors, routepath.LastNameQueryKey))
		b.WriteString(`<div class="card-actions mt-4">`)
		b.WriteString(`<button type="submit" class="btn btn-primary">` + html.EscapeString(T(page.Loc, "owners.find.submit")) + `</button>`)
		b.WriteString(`<a class="btn" href="` + routepath.OwnersNew + `" hx-get="` + routepath.OwnersNew + `" hx-push-url="true"` + hxContentAttrs + `>` + html.EscapeString(T(page.Loc, "owners.find.add")) + `</a>`)
		b.WriteString(`</div>`)
		b.WriteString(`</form>`)
		b.WriteString(`</div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FindOwnersPage renders the find owners form with the page chrome.
func FindOwnersPage(page PageContext, state FindOwnersState) templ.Component {
	return layoutPage(page, findOwnersTitleKey, FindOwnersContent(page, state))
}

// OwnerFormContent renders the owner create or edit form without the page chrome.
func OwnerFormContent(page PageContext, state OwnerFormState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		action := routepath.OwnersNew
		submitKey := "owner.form.submit_add"
		if state.ID > 0 {
			action = routepath.OwnerEdit(state.ID)
			submitKey = "owner.form.submit_update"
		}
		var b strings.Builder
		b.WriteString(`<section class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, "owner.form.heading")) + `</h2>`)
		b.WriteString(`<form method="post" action="` + action + `" hx-post="` + action + `"` + hxContentAttrs + `>`)
		writeInputField(&b, page.Loc, "owner.first_name", "firstName", state.Values.FirstName, fieldErrorMessage(state.Errors, "firstName"))
		writeInputField(&b, page.Loc, "owner.last_name", "lastName", state.Values.LastName, fieldErrorMessage(state.Errors, "lastName"))
		writeInputField(&b, page.Loc, "owner.address", "address", state.Values.Address, fieldErrorMessage(state.Errors, "address"))
		writeInputField(&b, page.Loc, "owner.city", "city", state.Values.City, fieldErrorMessage(state.Errors, "city"))
		writeInputField(&b, page.Loc, "owner.telephone", "telephone", state.Values.Telephone, fieldErrorMessage(state.Errors, "telephone"))
		b.WriteString(`<div class="card-actions mt-4">`)
		b.WriteString(`<button type="submit" class="btn btn-primary">` + html.EscapeString(T(page.Loc, submitKey)) + `</button>`)
		b.WriteString(`</div>`)
		b.WriteString(`</form>`)
		b.WriteString(`</div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OwnerFormPage renders the owner create or edit form with the page chrome.
func OwnerFormPage(page PageContext, state OwnerFormState) templ.Component {
	titleKey := ownerNewTitleKey
	if state.ID > 0 {
		titleKey = ownerEditTitleKey
	}
	return layoutPage(page, titleKey, OwnerFormContent(page, state))
}

// OwnersListContent renders the paginated owners list without the page chrome.
func OwnersListContent(page PageContext, state OwnersListState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, ownersListTitleKey)) + `</h2>`)
		b.WriteString(`<div class="overflow-x-auto">`)
		b.WriteString(`<table class="table">`)
		b.WriteString(`<thead><tr>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "owner.name")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "owner.address")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "owner.city")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "owner.telephone")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "owner.pets")) + `</th>`)
		b.WriteString(`</tr></thead>`)
		b.WriteString(`<tbody>`)
		for _, owner := range state.Owners {
			ownerURL := routepath.Owner(owner.ID)
			b.WriteString(`<tr>`)
			b.WriteString(`<td><a class="link" href="` + ownerURL + `" hx-get="` + ownerURL + `"` + hxContentAttrs + `>` + html.EscapeString(owner.Name) + `</a></td>`)
			b.WriteString(`<td>` + html.EscapeString(owner.Address) + `</td>`)
			b.WriteString(`<td>` + html.EscapeString(owner.City) + `</td>`)
			b.WriteString(`<td>` + html.EscapeString(owner.Telephone) + `</td>`)
			b.WriteString(`<td>` + html.EscapeString(strings.Join(owner.Pets, ", ")) + `</td>`)
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody>`)
		b.WriteString(`</table>`)
		b.WriteString(`</div>`)
		b.WriteString(`<p class="text-sm">` + html.EscapeString(T(page.Loc, "owners.list.total", state.TotalItems)) + `</p>`)
		writeListPager(&b, page, state)
		b.WriteString(`</div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OwnersListPage renders the paginated owners list with the page chrome.
func OwnersListPage(page PageContext, state OwnersListState) templ.Component {
	return layoutPage(page, ownersListTitleKey, OwnersListContent(page, state))
}

// OwnerDetailsContent renders owner details without the page chrome.
func OwnerDetailsContent(page PageContext, state OwnerDetailsState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		editURL := routepath.OwnerEdit(state.ID)
		var b strings.Builder
		b.WriteString(`<section class="space-y-4">`)
		b.WriteString(`<div class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, ownerDetailsTitleKey)) + `</h2>`)
		b.WriteString(`<table class="table">`)
		b.WriteString(`<tbody>`)
		writeDetailsRow(&b, T(page.Loc, "owner.name"), state.Name)
		writeDetailsRow(&b, T(page.Loc, "owner.address"), state.Address)
		writeDetailsRow(&b, T(page.Loc, "owner.city"), state.City)
		writeDetailsRow(&b, T(page.Loc, "owner.telephone"), state.Telephone)
		b.WriteString(`</tbody>`)
		b.WriteString(`</table>`)
		b.WriteString(`<div class="card-actions">`)
		b.WriteString(`<a class="btn btn-primary" href="` + editURL + `" hx-get="` + editURL + `"` + hxContentAttrs + `>` + html.EscapeString(T(page.Loc, "owner.details.edit")) + `</a>`)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
		b.WriteString(`<div class="card bg-base-100 shadow">`)
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<h2 class="card-title">` + html.EscapeString(T(page.Loc, "owner.details.pets")) + `</h2>`)
		b.WriteString(`<table class="table">`)
		b.WriteString(`<thead><tr>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "pet.name")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "pet.birth_date")) + `</th>`)
		b.WriteString(`<th>` + html.EscapeString(T(page.Loc, "pet.type")) + `</th>`)
		b.WriteString(`</tr></thead>`)
		b.WriteString(`<tbody>`)
		for _, pet := range state.Pets {
			b.WriteString(`<tr>`)
			b.WriteString(`<td>` + html.EscapeString(pet.Name) + `</td>`)
			b.WriteString(`<td>` + html.EscapeString(pet.BirthDate) + `</td>`)
			b.WriteString(`<td>` + html.EscapeString(pet.Type) + `</td>`)
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody>`)
		b.WriteString(`</table>`)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OwnerDetailsPage renders owner details with the page chrome.
func OwnerDetailsPage(page PageContext, state OwnerDetailsState) templ.Component {
	return layoutPage(page, ownerDetailsTitleKey, OwnerDetailsContent(page, state))
}

func fieldErrorMessage(errors []FieldError, field string) string {
	for _, fieldError := range errors {
		if fieldError.Field == field {
			return fieldError.Message
		}
	}
	return ""
}

func writeInputField(b *strings.Builder, loc Localizer, labelKey string, name string, value string, errorMessage string) {
	b.WriteString(`<label class="form-control w-full max-w-md">`)
	b.WriteString(`<div class="label"><span class="label-text">` + html.EscapeString(T(loc, labelKey)) + `</span></div>`)
	inputClass := "input input-bordered w-full max-w-md"
	if errorMessage != "" {
		inputClass += " input-error"
	}
	b.WriteString(`<input type="text" name="` + html.EscapeString(name) + `" value="` + html.EscapeString(value) + `" class="` + inputClass + `">`)
	if errorMessage != "" {
		b.WriteString(`<div class="label"><span class="label-text-alt text-error">` + html.EscapeString(errorMessage) + `</span></div>`)
	}
	b.WriteString(`</label>`)
}

func writeDetailsRow(b *strings.Builder, label string, value string) {
	b.WriteString(`<tr><th>` + html.EscapeString(label) + `</th><td>` + html.EscapeString(value) + `</td></tr>`)
}

func writeListPager(b *strings.Builder, page PageContext, state OwnersListState) {
	if state.TotalPages <= 1 {
		return
	}
	b.WriteString(`<div class="flex items-center gap-2">`)
	b.WriteString(`<span class="text-sm">` + html.EscapeString(T(page.Loc, "owners.list.pages")) + `</span>`)
	b.WriteString(`<div class="join">`)
	for n := 1; n <= state.TotalPages; n++ {
		if n == state.CurrentPage {
			b.WriteString(`<span class="join-item btn btn-sm btn-active">` + strconv.Itoa(n) + `</span>`)
			continue
		}
		writePagerLink(b, routepath.OwnersSearch(state.LastName, n), strconv.Itoa(n), "")
	}
	writePagerArrow(b, state.CurrentPage > 1, routepath.OwnersSearch(state.LastName, 1), "«", T(page.Loc, "pagination.first"))
	writePagerArrow(b, state.CurrentPage > 1, routepath.OwnersSearch(state.LastName, state.CurrentPage-1), "‹", T(page.Loc, "pagination.previous"))
	writePagerArrow(b, state.CurrentPage < state.TotalPages, routepath.OwnersSearch(state.LastName, state.CurrentPage+1), "›", T(page.Loc, "pagination.next"))
	writePagerArrow(b, state.CurrentPage < state.TotalPages, routepath.OwnersSearch(state.LastName, state.TotalPages), "»", T(page.Loc, "pagination.last"))
	b.WriteString(`</div>`)
	b.WriteString(`<span class="text-sm">` + html.EscapeString(T(page.Loc, "owners.list.page_of", state.CurrentPage, state.TotalPages)) + `</span>`)
	b.WriteString(`</div>`)
}

func writePagerLink(b *strings.Builder, href string, label string, title string) {
	titleAttr := ""
	if title != "" {
		titleAttr = ` title="` + html.EscapeString(title) + `" aria-label="` + html.EscapeString(title) + `"`
	}
	b.WriteString(`<a class="join-item btn btn-sm" href="` + html.EscapeString(href) + `" hx-get="` + html.EscapeString(href) + `"` + hxContentAttrs + titleAttr + `>` + html.EscapeString(label) + `</a>`)
}

func writePagerArrow(b *strings.Builder, enabled bool, href string, glyph string, title string) {
	if !enabled {
		b.WriteString(`<span class="join-item btn btn-sm btn-disabled" title="` + html.EscapeString(title) + `">` + glyph + `</span>`)
		return
	}
	writePagerLink(b, href, glyph, title)
}
