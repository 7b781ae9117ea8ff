package owners

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/petclinic/internal/services/web/routepath"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
	webtemplates "github.com/louisbranch/petclinic/internal/services/web/templates"
)

// ownersPageSize is the owner directory page length.
const ownersPageSize = 5

var ownerFormValidator = validator.New()

// ownerForm carries one trimmed owner form submission.
type ownerForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Address   string `validate:"required"`
	City      string `validate:"required"`
	Telephone string `validate:"required,number,len=10"`
}

func parseOwnerForm(r *http.Request) (ownerForm, error) {
	if err := r.ParseForm(); err != nil {
		return ownerForm{}, err
	}
	return ownerForm{
		FirstName: strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:  strings.TrimSpace(r.PostFormValue("lastName")),
		Address:   strings.TrimSpace(r.PostFormValue("address")),
		City:      strings.TrimSpace(r.PostFormValue("city")),
		Telephone: strings.TrimSpace(r.PostFormValue("telephone")),
	}, nil
}

func (f ownerForm) values() webtemplates.OwnerFormValues {
	return webtemplates.OwnerFormValues{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Address:   f.Address,
		City:      f.City,
		Telephone: f.Telephone,
	}
}

// owner builds the storage record for this submission. The id always comes
// from the route, never from the form body.
func (f ownerForm) owner(id int64) storage.Owner {
	return storage.Owner{
		ID:        id,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Address:   f.Address,
		City:      f.City,
		Telephone: f.Telephone,
	}
}

func validateOwnerForm(form ownerForm, loc webtemplates.Localizer) []webtemplates.FieldError {
	err := ownerFormValidator.Struct(form)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []webtemplates.FieldError{{Field: "firstName", Message: webtemplates.T(loc, "validation.required")}}
	}
	fieldErrors := make([]webtemplates.FieldError, 0, len(invalid))
	for _, fieldErr := range invalid {
		fieldErrors = append(fieldErrors, webtemplates.FieldError{
			Field:   ownerFormFieldName(fieldErr.Field()),
			Message: ownerFieldErrorMessage(fieldErr, loc),
		})
	}
	return fieldErrors
}

func ownerFormFieldName(structField string) string {
	switch structField {
	case "FirstName":
		return "firstName"
	case "LastName":
		return "lastName"
	case "Address":
		return "address"
	case "City":
		return "city"
	case "Telephone":
		return "telephone"
	default:
		return structField
	}
}

func ownerFieldErrorMessage(fieldErr validator.FieldError, loc webtemplates.Localizer) string {
	if fieldErr.Field() == "Telephone" && fieldErr.Tag() != "required" {
		return webtemplates.T(loc, "validation.telephone")
	}
	return webtemplates.T(loc, "validation.required")
}

// parseListQuery reads the search filter and 1-based page number. A missing
// last name matches every owner; a missing or unusable page defaults to 1.
func parseListQuery(r *http.Request) (string, int) {
	query := r.URL.Query()
	lastName := strings.TrimSpace(query.Get(routepath.LastNameQueryKey))
	page := 1
	if raw := strings.TrimSpace(query.Get(routepath.PageQueryKey)); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return lastName, page
}

func parseOwnerID(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.PathValue(routepath.OwnerIDParam))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
