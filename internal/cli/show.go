package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShowCmd(o *options) *cobra.Command {
	var (
		plain bool
		width int
		deck  bool
	)

	cmd := &cobra.Command{
		Use:   "show [chapter]",
		Short: "Render a chapter (index or slug) in the terminal",
		Example: `  pitch show 2
  pitch show business-model --locale en
  pitch show --deck`,
		Args: func(cmd *cobra.Command, args []string) error {
			if deck {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
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

			var md string
			if deck {
				md = render.DeckMarkdown(render.BuildDeck(b, store.Registry()))
			} else {
				page, err := render.BuildPage(b, store.Registry(), args[0])
				if err != nil {
					if chapters.IsNotFound(err) {
						return errors.Errorf("chapter %q not found (1-%d or a slug)", args[0], store.Registry().Len())
					}
					return err
				}
				md = render.PageMarkdown(page)
			}

			return writeMarkdown(cmd.OutOrStdout(), md, plain, width)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width")
	cmd.Flags().BoolVar(&deck, "deck", false, "show the pitch deck instead of a chapter")
	return cmd
}

// writeMarkdown renders md with glamour and falls back to the raw text when
// rendering is disabled or fails.
func writeMarkdown(w io.Writer, md string, plain bool, width int) error {
	if !plain {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			out, rerr := renderer.Render(md)
			if rerr == nil {
				_, err = io.WriteString(w, out)
				return err
			}
			err = rerr
		}
		logger.Debug("Markdown rendering failed, printing plain text", zap.Error(err))
	}
	_, err := fmt.Fprint(w, md)
	return err
}
