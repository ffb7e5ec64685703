package content

import (
	"strings"
)

// LocalizedContentTree maps a domain name ("market", "finance", ...) to the
// decoded document of that domain. No schema is enforced at this level.
type LocalizedContentTree map[string]any

// Domain returns the document of a domain when it is a map.
func (t LocalizedContentTree) Domain(name string) (map[string]any, bool) {
	m, ok := t[name].(map[string]any)
	return m, ok
}

// Lookup resolves a dotted path such as "market.tam".
func (t LocalizedContentTree) Lookup(path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = map[string]any(t)
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// isBlank reports whether a looked up value carries no content.
func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}
