package templates

import (
	"reflect"
	"testing"

	"golang.org/x/text/message"
)

type breadcrumbLocalizer struct{}

func (breadcrumbLocalizer) Sprintf(key message.Reference, _ ...any) string {
	if s, ok := key.(string); ok {
		switch s {
		case "nav.home":
			return "Home"
		case "nav.find_owners":
			return "Find Owners"
		case "owners.list.heading":
			return "Owners"
		case "owners.find.heading":
			return "Find Owners"
		case "title.owner_new":
			return "New Owner"
		case "title.owner_edit":
			return "Edit Owner"
		}
		return s
	}
	return ""
}

func TestBuildPathBreadcrumbs(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []BreadcrumbItem
	}{
		{
			name: "owners list",
			path: "/owners",
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
			},
		},
		{
			name: "owner details",
			path: "/owners/12",
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "12"},
			},
		},
		{
			name: "owner edit",
			path: "/owners/12/edit",
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "12", URL: "/owners/12"},
				{Label: "Edit Owner"},
			},
		},
		{
			name: "new owner form",
			path: "/owners/new",
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "New Owner"},
			},
		},
		{
			name: "find owners form",
			path: "/owners/find",
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "Find Owners"},
			},
		},
		{
			name:     "root has no trail",
			path:     "/",
			expected: []BreadcrumbItem{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPathBreadcrumbs(tc.path, breadcrumbLocalizer{})
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("BuildPathBreadcrumbs(%q) = %#v, expected %#v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestBuildPathBreadcrumbsOwnerNames(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		ownerNames map[string]string
		expected   []BreadcrumbItem
	}{
		{
			name: "owner edit uses owner name",
			path: "/owners/12/edit",
			ownerNames: map[string]string{
				"12": "Betty Davis",
			},
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "Betty Davis", URL: "/owners/12"},
				{Label: "Edit Owner"},
			},
		},
		{
			name: "owner details uses owner name",
			path: "/owners/12",
			ownerNames: map[string]string{
				"12": "Betty Davis",
			},
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "Betty Davis"},
			},
		},
		{
			name: "reserved segments keep their labels",
			path: "/owners/new",
			ownerNames: map[string]string{
				"new": "Not An Owner",
			},
			expected: []BreadcrumbItem{
				{Label: "Home", URL: "/"},
				{Label: "Owners", URL: "/owners"},
				{Label: "New Owner"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPathBreadcrumbs(tc.path, breadcrumbLocalizer{}, tc.ownerNames)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("BuildPathBreadcrumbs(%q) = %#v, expected %#v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestBuildPathBreadcrumbsWithOptionsOmitsRoot(t *testing.T) {
	got := BuildPathBreadcrumbsWithOptions("/owners/12/edit", breadcrumbLocalizer{}, PathBreadcrumbOptions{
		LabelForSegment: ownerPathSegmentLabel,
	})
	expected := []BreadcrumbItem{
		{Label: "Owners", URL: "/owners"},
		{Label: "12", URL: "/owners/12"},
		{Label: "Edit Owner"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("BuildPathBreadcrumbsWithOptions = %#v, expected %#v", got, expected)
	}
}
