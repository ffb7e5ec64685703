package render

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"strconv"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/normalize"
	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"json": func(v any) (template.JS, error) {
		raw, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(raw), nil
	},
	"number": func(v float64, locale content.Locale) string {
		return normalize.FormatNumber(v, 0, locale.Tag())
	},
	"decimals": func(v float64, decimals int) string {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return t, nil
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}

// View is the data handed to every HTML template.
type View struct {
	Bundle    *content.Bundle
	Locale    content.Locale
	Alternate content.Locale
	// Path is the locale-independent part of the current URL, e.g. "/deck".
	Path  string
	Title string
	TOC   []TOCEntry
	Page  *Page
	Deck  *Deck
	Print *PrintDocument
	// Static switches links to relative files for exported documents.
	Static bool
}

// NewView prepares the shared template data for one locale.
func NewView(b *content.Bundle, registry *chapters.Registry, path string) View {
	v := View{
		Bundle: b,
		Locale: b.Locale,
		Path:   path,
		Title:  b.T("site.title", "Business Plan"),
		TOC:    BuildTOC(b, registry),
	}
	for _, l := range content.Supported {
		if l != b.Locale {
			v.Alternate = l
			break
		}
	}
	return v
}

// T translates a UI key, showing the key itself when it is missing.
func (v View) T(key string) string {
	return v.Bundle.T(key, key)
}

// Home is the table of contents URL of the view's locale.
func (v View) Home() string {
	return "/" + string(v.Locale) + "/"
}

// ChapterURL links to a chapter page by index.
func (v View) ChapterURL(index int) string {
	if v.Static {
		return "#chapter-" + strconv.Itoa(index)
	}
	return "/" + string(v.Locale) + "/chapters/" + strconv.Itoa(index)
}

// DeckURL links to the pitch deck.
func (v View) DeckURL() string {
	return "/" + string(v.Locale) + "/deck"
}

// PrintURL links to the print view.
func (v View) PrintURL() string {
	return "/" + string(v.Locale) + "/print"
}

// SwitchURL is the current page in the alternate locale.
func (v View) SwitchURL() string {
	if v.Alternate == "" {
		return v.Home()
	}
	return "/" + string(v.Alternate) + v.Path
}

// Execute renders the named template to w.
func Execute(w io.Writer, t *template.Template, name string, v View) error {
	if err := t.ExecuteTemplate(w, name, v); err != nil {
		return errors.Wrapf(err, "failed to render %s", name)
	}
	return nil
}
