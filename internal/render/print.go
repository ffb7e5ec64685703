package render

import (
	"strconv"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
)

// TOCEntry is one chapter in the table of contents.
type TOCEntry struct {
	Index    int          `json:"index"`
	Slug     string       `json:"slug"`
	Title    string       `json:"title"`
	Sections []TOCSection `json:"sections"`
}

// TOCSection is a numbered subchapter heading.
type TOCSection struct {
	Number string `json:"number"`
	ID     string `json:"id"`
	Title  string `json:"title"`
}

// BuildTOC lists every chapter with the numbering its page will use.
func BuildTOC(b *content.Bundle, registry *chapters.Registry) []TOCEntry {
	all := registry.All()
	out := make([]TOCEntry, 0, len(all))
	for i, ch := range all {
		cursor := chapters.NewNumberingCursor(i + 1)
		entry := TOCEntry{
			Index:    i + 1,
			Slug:     ch.Slug,
			Title:    b.ChapterTitle(ch),
			Sections: make([]TOCSection, 0, len(ch.Subchapters)),
		}
		for _, sub := range ch.Subchapters {
			entry.Sections = append(entry.Sections, TOCSection{
				Number: cursor.Next(),
				ID:     sub.ID,
				Title:  b.SubchapterTitle(sub),
			})
		}
		out = append(out, entry)
	}
	return out
}

// PrintDocument is every chapter page in registry order, for PDF capture.
type PrintDocument struct {
	Locale content.Locale `json:"locale"`
	Title  string         `json:"title"`
	TOC    []TOCEntry     `json:"toc"`
	Pages  []*Page        `json:"pages"`
}

// BuildPrint renders all pages. Each page gets its own numbering cursor, so
// numbers match the interactive pages exactly.
func BuildPrint(b *content.Bundle, registry *chapters.Registry) (*PrintDocument, error) {
	doc := &PrintDocument{
		Locale: b.Locale,
		Title:  b.T("site.title", "Business Plan"),
		TOC:    BuildTOC(b, registry),
		Pages:  make([]*Page, 0, registry.Len()),
	}
	for i := 1; i <= registry.Len(); i++ {
		page, err := BuildPage(b, registry, strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}
