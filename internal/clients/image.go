package clients

import "strings"

// ImageURL resolves an image reference against the asset base URL.
// An empty reference yields "", absolute http(s) references are returned unchanged.
func ImageURL(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
