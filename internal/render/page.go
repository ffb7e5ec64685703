package render

import (
	"fmt"
	"strconv"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/normalize"
)

// Page is the view model of one chapter page.
type Page struct {
	Locale   content.Locale `json:"locale"`
	Index    int            `json:"index"`
	Total    int            `json:"total"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Partial  bool           `json:"partial"`
	Sections []Section      `json:"sections"`
	Prev     *NavLink       `json:"prev,omitempty"`
	Next     *NavLink       `json:"next,omitempty"`
}

// NavLink points at a neighbouring chapter.
type NavLink struct {
	Index int    `json:"index"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Section is one numbered subchapter of a page. Empty sections carry the
// locale placeholder instead of content.
type Section struct {
	Number      string    `json:"number"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Lead        string    `json:"lead,omitempty"`
	Text        string    `json:"text,omitempty"`
	Items       []string  `json:"items,omitempty"`
	KPIs        []KPICard `json:"kpis,omitempty"`
	Table       *Table    `json:"table,omitempty"`
	Series      *Series   `json:"series,omitempty"`
	Empty       bool      `json:"empty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// KPICard is a figure ready for display. CountTo and Decimals are set only
// when the value can be animated without misreading it.
type KPICard struct {
	Label    string  `json:"label"`
	Display  string  `json:"display"`
	Note     string  `json:"note,omitempty"`
	Animate  bool    `json:"animate"`
	CountTo  float64 `json:"countTo,omitempty"`
	Decimals int     `json:"decimals,omitempty"`
}

// Table is a simple header plus rows grid.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Series is chart input in authored order.
type Series struct {
	Unit   string                  `json:"unit,omitempty"`
	Points []normalize.SeriesPoint `json:"points"`
}

// Labels returns the point labels as display strings.
func (s *Series) Labels() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = labelText(p.Label)
	}
	return out
}

func (s Section) isEmpty() bool {
	return s.Lead == "" && s.Text == "" && len(s.Items) == 0 && len(s.KPIs) == 0 &&
		(s.Table == nil || len(s.Table.Rows) == 0) &&
		(s.Series == nil || len(s.Series.Points) == 0)
}

// BuildPage resolves ref (a 1-based index or a slug) and builds its page.
// Unknown refs return chapters.ErrChapterNotFound.
func BuildPage(b *content.Bundle, registry *chapters.Registry, ref string) (*Page, error) {
	ch, err := registry.Resolve(ref)
	if err != nil {
		return nil, err
	}
	index, err := registry.IndexOf(ch.Slug)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Locale: b.Locale,
		Index:  index,
		Total:  registry.Len(),
		Slug:   ch.Slug,
		Title:  b.ChapterTitle(ch),
	}
	page.Sections = buildSections(b, ch, chapters.NewNumberingCursor(index))
	for _, s := range page.Sections {
		if s.Empty {
			page.Partial = true
		}
	}

	prev, next := registry.Neighbours(index)
	if prev != nil {
		page.Prev = &NavLink{Index: index - 1, Slug: prev.Slug, Title: b.ChapterTitle(*prev)}
	}
	if next != nil {
		page.Next = &NavLink{Index: index + 1, Slug: next.Slug, Title: b.ChapterTitle(*next)}
	}
	return page, nil
}

// buildSections fills one section per subchapter, numbering them with cursor
// in registry order.
func buildSections(b *content.Bundle, ch chapters.Chapter, cursor *chapters.NumberingCursor) []Section {
	out := make([]Section, 0, len(ch.Subchapters))
	for _, sub := range ch.Subchapters {
		sec := Section{
			Number: cursor.Next(),
			ID:     sub.ID,
			Title:  b.SubchapterTitle(sub),
		}
		if fill, ok := sectionBuilders[ch.Slug+"/"+sub.ID]; ok {
			fill(b, &sec)
		}
		if sec.isEmpty() {
			sec.Empty = true
			sec.Placeholder = b.Placeholder()
		}
		out = append(out, sec)
	}
	return out
}

func labelText(v any) string {
	switch l := v.(type) {
	case nil:
		return ""
	case string:
		return l
	case int:
		return strconv.Itoa(l)
	case float64:
		return strconv.FormatFloat(l, 'f', -1, 64)
	default:
		return fmt.Sprint(l)
	}
}
