package domain

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]+`)
	subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify derives a subdomain from a display name: lowercase, any run
// of non-alphanumeric characters collapses to a single hyphen, leading
// and trailing hyphens trimmed. "My Site!!" becomes "my-site".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidSubdomain reports whether s is a usable subdomain label:
// non-empty, lowercase alphanumerics and hyphens only.
func ValidSubdomain(s string) bool {
	return subdomainPattern.MatchString(s)
}
