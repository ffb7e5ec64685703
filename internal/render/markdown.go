package render

import (
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/normalize"
)

// PageMarkdown renders a page as markdown for terminals and MCP clients.
func PageMarkdown(p *Page) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %d. %s\n\n", p.Index, p.Title)
	for _, s := range p.Sections {
		writeSectionMarkdown(&sb, s, p.Locale)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeSectionMarkdown(sb *strings.Builder, s Section, locale content.Locale) {
	fmt.Fprintf(sb, "## %s %s\n\n", s.Number, s.Title)
	if s.Empty {
		fmt.Fprintf(sb, "_%s_\n\n", s.Placeholder)
		return
	}
	if s.Lead != "" {
		fmt.Fprintf(sb, "**%s**\n\n", s.Lead)
	}
	if s.Text != "" {
		sb.WriteString(s.Text + "\n\n")
	}
	for _, item := range s.Items {
		sb.WriteString("- " + item + "\n")
	}
	if len(s.Items) > 0 {
		sb.WriteString("\n")
	}
	for _, k := range s.KPIs {
		fmt.Fprintf(sb, "- **%s**: %s", k.Label, k.Display)
		if k.Note != "" {
			fmt.Fprintf(sb, " (%s)", k.Note)
		}
		sb.WriteString("\n")
	}
	if len(s.KPIs) > 0 {
		sb.WriteString("\n")
	}
	if s.Table != nil && len(s.Table.Rows) > 0 {
		writeTableMarkdown(sb, s.Table.Columns, s.Table.Rows)
	}
	if s.Series != nil && len(s.Series.Points) > 0 {
		writeTableMarkdown(sb, []string{"", s.Series.Unit}, seriesRows(s.Series, locale))
	}
}

func seriesRows(s *Series, locale content.Locale) [][]string {
	rows := make([][]string, 0, len(s.Points))
	labels := s.Labels()
	for i, p := range s.Points {
		rows = append(rows, []string{labels[i], normalize.FormatNumber(p.Value, 0, locale.Tag())})
	}
	return rows
}

func writeTableMarkdown(sb *strings.Builder, columns []string, rows [][]string) {
	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	sb.WriteString("\n")
}

// TOCMarkdown renders the table of contents as a numbered outline.
func TOCMarkdown(title string, toc []TOCEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	for _, e := range toc {
		fmt.Fprintf(&sb, "%d. %s (`%s`)\n", e.Index, e.Title, e.Slug)
		for _, s := range e.Sections {
			fmt.Fprintf(&sb, "   - %s %s\n", s.Number, s.Title)
		}
	}
	return sb.String()
}

// DeckMarkdown renders the deck as one markdown section per slide.
func DeckMarkdown(d *Deck) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.Title)
	for _, s := range d.Slides {
		fmt.Fprintf(&sb, "## %s. %s\n\n", s.Number, s.Title)
		if s.Placeholder != "" {
			fmt.Fprintf(&sb, "_%s_\n\n", s.Placeholder)
			continue
		}
		if s.Headline != "" {
			fmt.Fprintf(&sb, "**%s**\n\n", s.Headline)
		}
		for _, st := range s.Stats {
			fmt.Fprintf(&sb, "- **%s**: %s\n", st.Label, st.Display)
		}
		for _, b := range s.Bullets {
			sb.WriteString("- " + b + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
