// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root             = "/"
	Health           = "/healthz"
	Owners           = "/owners"
	OwnersPrefix     = "/owners/"
	OwnersNew        = "/owners/new"
	OwnersFind       = "/owners/find"
	OwnerIDParam     = "ownerID"
	OwnerPattern     = OwnersPrefix + "{" + OwnerIDParam + "}"
	OwnerEditPattern = OwnerPattern + "/edit"
	LastNameQueryKey = "lastName"
	PageQueryKey     = "page"
)

// Owner returns the owner detail route.
func Owner(id int64) string {
	return OwnersPrefix + strconv.FormatInt(id, 10)
}

// OwnerEdit returns the owner edit-form route.
func OwnerEdit(id int64) string {
	return Owner(id) + "/edit"
}

// OwnersSearch returns the owner list route with its canonical query string.
// The same URL is pushed to the browser history when the list is rendered.
func OwnersSearch(lastName string, page int) string {
	lastName = strings.TrimSpace(lastName)
	return Owners + "?" + LastNameQueryKey + "=" + url.QueryEscape(lastName) + "&" + PageQueryKey + "=" + strconv.Itoa(page)
}
