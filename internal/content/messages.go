package content

import (
	"fmt"
	"sort"
)

// Messages is a flat catalog of translated UI strings keyed by dotted keys
// such as "chapters.market.title".
type Messages map[string]string

// T returns the translation for key, or fallback when it is missing.
func (m Messages) T(key, fallback string) string {
	if s, ok := m[key]; ok && s != "" {
		return s
	}
	return fallback
}

// Keys returns the catalog keys in sorted order.
func (m Messages) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flattenMessages turns a nested messages document into dotted keys.
// Lists are ignored; other non-string leaves are formatted with %v.
func flattenMessages(doc any) Messages {
	out := Messages{}
	var walk func(prefix string, v any)
	walk = func(prefix string, v any) {
		switch x := v.(type) {
		case map[string]any:
			for k, child := range x {
				key := k
				if prefix != "" {
					key = prefix + "." + k
				}
				walk(key, child)
			}
		case string:
			out[prefix] = x
		case nil, []any:
		default:
			out[prefix] = fmt.Sprintf("%v", x)
		}
	}
	walk("", doc)
	return out
}
