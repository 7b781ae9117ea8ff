package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "app.name", "PetClinic")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.find_owners", "Find owners")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Page titles
	message.SetString(lang, "title.owner_new", "New Owner")
	message.SetString(lang, "title.owner_edit", "Edit Owner")
	message.SetString(lang, "title.error", "Error")

	// Owner fields
	message.SetString(lang, "owner.first_name", "First Name")
	message.SetString(lang, "owner.last_name", "Last Name")
	message.SetString(lang, "owner.name", "Name")
	message.SetString(lang, "owner.address", "Address")
	message.SetString(lang, "owner.city", "City")
	message.SetString(lang, "owner.telephone", "Telephone")
	message.SetString(lang, "owner.pets", "Pets")

	// Find page
	message.SetString(lang, "owners.find.heading", "Find Owners")
	message.SetString(lang, "owners.find.submit", "Find Owner")
	message.SetString(lang, "owners.find.add", "Add Owner")

	// List page
	message.SetString(lang, "owners.list.heading", "Owners")
	message.SetString(lang, "owners.list.pages", "Pages:")
	message.SetString(lang, "owners.list.page_of", "Page %d of %d")
	message.SetString(lang, "owners.list.total", "%d owners found")
	message.SetString(lang, "pagination.first", "First")
	message.SetString(lang, "pagination.previous", "Previous")
	message.SetString(lang, "pagination.next", "Next")
	message.SetString(lang, "pagination.last", "Last")

	// Owner form
	message.SetString(lang, "owner.form.heading", "Owner")
	message.SetString(lang, "owner.form.submit_add", "Add Owner")
	message.SetString(lang, "owner.form.submit_update", "Update Owner")

	// Owner details
	message.SetString(lang, "owner.details.heading", "Owner Information")
	message.SetString(lang, "owner.details.edit", "Edit Owner")
	message.SetString(lang, "owner.details.pets", "Pets")
	message.SetString(lang, "pet.name", "Name")
	message.SetString(lang, "pet.birth_date", "Birth Date")
	message.SetString(lang, "pet.type", "Type")

	// Validation messages
	message.SetString(lang, "validation.required", "is required")
	message.SetString(lang, "validation.telephone", "must be a 10-digit number")
	message.SetString(lang, "validation.not_found", "not found")

	// Error pages
	message.SetString(lang, "error.heading", "Something happened...")
	message.SetString(lang, "error.not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.internal", "We are working on it. Please try again later.")
	message.SetString(lang, "error.back", "Back to owners")
}
