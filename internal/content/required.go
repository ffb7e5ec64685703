package content

import (
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
)

// CheckRequiredFields reports every required field of the registry that is
// absent or blank in tree. The result is advisory; pages still render.
func CheckRequiredFields(locale Locale, tree LocalizedContentTree, registry *chapters.Registry) []Issue {
	var issues []Issue
	for _, ch := range registry.All() {
		for _, path := range ch.RequiredFields {
			v, ok := tree.Lookup(path)
			if ok && !isBlank(v) {
				continue
			}
			domain, field := path, ""
			if i := strings.IndexByte(path, '.'); i >= 0 {
				domain, field = path[:i], path[i+1:]
			}
			issues = append(issues, Issue{
				Locale:   locale,
				Domain:   domain,
				Field:    field,
				Severity: SeverityError,
				Message:  "required by chapter " + ch.Slug,
			})
		}
	}
	return issues
}
