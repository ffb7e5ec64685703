package cli

import (
	"io"
	"os"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exportHTML     = "html"
	exportMarkdown = "markdown"
)

func newExportCmd(o *options) *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the print view of every chapter to a file",
		Long: `Renders all chapters in order with the same numbering as the site.
The HTML output is self-contained apart from fonts and links chapters by anchor,
so it can be opened directly and printed to PDF.`,
		Example: "  pitch export --locale en --out plan-en.html",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := o.selectedLocale()
			if err != nil {
				return err
			}
			store, err := o.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			b := store.Bundle(locale)
			doc, err := render.BuildPrint(b, store.Registry())
			if err != nil {
				return errors.Wrap(err, "failed to build print document")
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "failed to create %s", out)
				}
				defer f.Close()
				w = f
			}

			switch strings.ToLower(format) {
			case exportHTML:
				v := render.NewView(b, store.Registry(), "/print")
				v.Print = doc
				v.Static = true
				tmpl, err := render.Templates()
				if err != nil {
					return err
				}
				err = render.Execute(w, tmpl, "print.tmpl", v)
				if err != nil {
					return err
				}
			case exportMarkdown:
				if err := writePrintMarkdown(w, doc); err != nil {
					return err
				}
			default:
				return errors.Errorf("unsupported format %q (want html or markdown)", format)
			}

			if out != "" && out != "-" {
				logger.Info("Exported print view",
					zap.String("locale", string(locale)),
					zap.String("format", format),
					zap.String("out", out),
					zap.Int("chapters", len(doc.Pages)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty or -)")
	cmd.Flags().StringVar(&format, "format", exportHTML, "output format: html or markdown")
	return cmd
}

func writePrintMarkdown(w io.Writer, doc *render.PrintDocument) error {
	var sb strings.Builder
	sb.WriteString(render.TOCMarkdown(doc.Title, doc.TOC))
	for _, p := range doc.Pages {
		sb.WriteString("\n")
		sb.WriteString(render.PageMarkdown(p))
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write markdown")
}
