package templates

import "strings"

func ownerNamesForPath(currentPath, ownerName string) map[string]string {
	normalizedPath := strings.TrimSpace(currentPath)
	normalizedOwnerName := strings.TrimSpace(ownerName)
	if normalizedPath == "" || normalizedOwnerName == "" {
		return nil
	}
	if !strings.HasPrefix(normalizedPath, "/owners/") {
		return nil
	}
	rawOwnerID := strings.TrimPrefix(normalizedPath, "/owners/")
	parts := strings.SplitN(rawOwnerID, "/", 2)
	ownerID := strings.TrimSpace(parts[0])
	if ownerID == "" || ownerID == "new" || ownerID == "find" {
		return nil
	}
	return map[string]string{
		ownerID: normalizedOwnerName,
	}
}
