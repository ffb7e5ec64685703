package normalize

import "strings"

// NormalizeStringList returns input as a list of display strings.
//
// A list of strings is returned unchanged. A list of {type, description}
// records becomes "type: description" per entry. Any other shape, including
// a list mixing both, yields an empty list.
func NormalizeStringList(input any) []string {
	out, _ := NormalizeStringListOK(input)
	return out
}

// NormalizeStringListOK is NormalizeStringList that also reports whether the
// input had a recognized shape. A nil input is reported as not recognized.
func NormalizeStringListOK(input any) ([]string, bool) {
	switch v := input.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		if out, ok := stringsOf(v); ok {
			return out, true
		}
		if out, ok := typedRecordsOf(v); ok {
			return out, true
		}
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		if out, ok := typedRecordsOf(items); ok {
			return out, true
		}
	}
	return []string{}, false
}

func stringsOf(items []any) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func typedRecordsOf(items []any) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		kind, desc, ok := typedRecord(item)
		if !ok {
			return nil, false
		}
		out = append(out, kind+": "+desc)
	}
	return out, true
}

func typedRecord(item any) (string, string, bool) {
	var kind, desc any
	switch m := item.(type) {
	case map[string]any:
		kind, desc = m["type"], m["description"]
	case map[string]string:
		k, okK := m["type"]
		d, okD := m["description"]
		if !okK || !okD {
			return "", "", false
		}
		kind, desc = k, d
	default:
		return "", "", false
	}
	k, okK := kind.(string)
	d, okD := desc.(string)
	if !okK || !okD {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(d), true
}

// StringField returns m[key] when it is a non-blank string.
func StringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Record returns v as a string keyed map when it is one.
func Record(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

// Records returns v as a list of string keyed maps. Entries that are not
// maps make the whole list unrecognized.
func Records(v any) ([]map[string]any, bool) {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]map[string]any); ok {
			return typed, true
		}
		return []map[string]any{}, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := Record(item)
		if !ok {
			return []map[string]any{}, false
		}
		out = append(out, m)
	}
	return out, true
}
