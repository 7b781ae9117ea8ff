package templates

import (
	"strings"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the full accumulated path
// to the segment (for example, "/owners/12/edit").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// IncludeRoot adds a home-like root breadcrumb when enabled.
	IncludeRoot bool
	// RootPath is the URL used for the root breadcrumb when IncludeRoot is true.
	RootPath string
	// RootLabel is the localization key (or fallback string) for the root breadcrumb.
	RootLabel string
	// LabelForSegment resolves labels for each non-root segment.
	LabelForSegment BreadcrumbSegmentLabeler
	// OwnerNames maps owner IDs to display names for path segments under `/owners/`.
	OwnerNames map[string]string
}

// BuildPathBreadcrumbs builds breadcrumb items from a request path for owner pages.
func BuildPathBreadcrumbs(path string, loc Localizer, ownerNames ...map[string]string) []BreadcrumbItem {
	var withOwnerNames map[string]string
	if len(ownerNames) > 0 {
		withOwnerNames = ownerNames[0]
	}
	return BuildPathBreadcrumbsWithOptions(path, loc, PathBreadcrumbOptions{
		IncludeRoot:     true,
		RootPath:        "/",
		RootLabel:       "nav.home",
		LabelForSegment: ownerPathSegmentLabel,
		OwnerNames:      withOwnerNames,
	})
}

// BuildPathBreadcrumbsWithOptions builds breadcrumb items for a request path using
// caller-provided labeling behavior.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return []BreadcrumbItem{}
	}

	cleanPath := strings.Trim(path, "/")
	if cleanPath == "" {
		return []BreadcrumbItem{}
	}

	segments := strings.Split(cleanPath, "/")
	if options.LabelForSegment == nil {
		options.LabelForSegment = defaultSegmentLabel
	}
	if len(options.OwnerNames) > 0 {
		options.LabelForSegment = labelOwnerName(options.OwnerNames, options.LabelForSegment)
	}

	nonEmptyCount := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			nonEmptyCount++
		}
	}
	if nonEmptyCount == 0 {
		return []BreadcrumbItem{}
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	pathSoFar := ""
	validIndex := 0
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		pathSoFar += "/" + segment
		label := options.LabelForSegment(segment, pathSoFar, loc)
		if strings.TrimSpace(label) == "" {
			label = segment
		}
		breadcrumb := BreadcrumbItem{Label: label}
		if validIndex < nonEmptyCount-1 || nonEmptyCount == 1 {
			breadcrumb.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, breadcrumb)
		validIndex++
	}

	if len(breadcrumbs) == 1 && options.IncludeRoot {
		return []BreadcrumbItem{}
	}

	return breadcrumbs
}

func labelOwnerName(ownerNames map[string]string, next BreadcrumbSegmentLabeler) BreadcrumbSegmentLabeler {
	return func(segment string, fullPath string, loc Localizer) string {
		if ownerName := ownerNameForSegment(segment, fullPath, ownerNames); ownerName != "" {
			return ownerName
		}
		return next(segment, fullPath, loc)
	}
}

func ownerNameForSegment(segment string, fullPath string, ownerNames map[string]string) string {
	if segment == "" || len(ownerNames) == 0 {
		return ""
	}
	if strings.TrimSpace(segment) == "new" || strings.TrimSpace(segment) == "find" {
		return ""
	}
	fullPath = strings.TrimSpace(strings.Trim(fullPath, "/"))
	if fullPath == "" {
		return ""
	}
	parts := strings.Split(fullPath, "/")
	if len(parts) < 2 || parts[0] != "owners" {
		return ""
	}
	if parts[1] != strings.TrimSpace(segment) {
		return ""
	}
	ownerName, ok := ownerNames[strings.TrimSpace(segment)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(ownerName)
}

func ownerPathSegmentLabel(segment string, fullPath string, loc Localizer) string {
	switch segment {
	case "owners":
		return T(loc, "owners.list.heading")
	case "find":
		return T(loc, "owners.find.heading")
	case "new":
		return T(loc, "title.owner_new")
	case "edit":
		return T(loc, "title.owner_edit")
	default:
		return segment
	}
}

func defaultSegmentLabel(segment string, fullPath string, loc Localizer) string {
	_ = fullPath
	_ = loc
	return segment
}
