package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SeriesPoint is one chart input. Label is a string or a number as authored.
type SeriesPoint struct {
	Label any     `json:"label"`
	Value float64 `json:"value"`
}

// DeriveChartSeries reduces raw chart data to an ordered list of points.
//
// Accepted entries are [label, value] tuples, {label, value} records and raw
// numbers (labelled by 1-based position), freely mixed. Values that are not
// numeric become 0. Input order is preserved; the series is temporal or
// categorical and is never sorted.
func DeriveChartSeries(raw any) []SeriesPoint {
	out, _ := DeriveChartSeriesOK(raw)
	return out
}

// DeriveChartSeriesOK is DeriveChartSeries that also reports whether every
// entry had a recognized shape and a numeric value.
func DeriveChartSeriesOK(raw any) ([]SeriesPoint, bool) {
	switch v := raw.(type) {
	case []SeriesPoint:
		out := make([]SeriesPoint, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]SeriesPoint, 0, len(v))
		clean := true
		for i, item := range v {
			p, ok := pointOf(i, item)
			clean = clean && ok
			out = append(out, p)
		}
		return out, clean
	case [][]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return DeriveChartSeriesOK(items)
	case []float64:
		out := make([]SeriesPoint, len(v))
		for i, f := range v {
			out[i] = SeriesPoint{Label: i + 1, Value: f}
		}
		return out, true
	}
	return []SeriesPoint{}, false
}

func pointOf(i int, item any) (SeriesPoint, bool) {
	switch e := item.(type) {
	case []any:
		if len(e) < 2 {
			return SeriesPoint{Label: i + 1}, false
		}
		value, ok := ToFloat(e[1])
		return SeriesPoint{Label: labelOf(e[0], i), Value: value}, ok
	case map[string]any:
		value, ok := ToFloat(e["value"])
		_, hasLabel := e["label"]
		return SeriesPoint{Label: labelOf(e["label"], i), Value: value}, ok && hasLabel
	case SeriesPoint:
		return e, true
	default:
		value, ok := ToFloat(e)
		return SeriesPoint{Label: i + 1, Value: value}, ok
	}
}

func labelOf(v any, i int) any {
	switch l := v.(type) {
	case string:
		return l
	case int, int64, int32, float64, float32, uint, uint64, uint32:
		return l
	case nil:
		return i + 1
	default:
		return fmt.Sprint(l)
	}
}

// ToFloat coerces numbers and numeric strings to float64. Anything else is
// (0, false).
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
