// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the product name rendered in page titles and chrome.
const AppName = "PetClinic"
