package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/spf13/cobra"
)

func newChaptersCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "Print the numbered table of contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := o.selectedLocale()
			if err != nil {
				return err
			}
			store, err := o.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			toc := render.BuildTOC(store.Bundle(locale), store.Registry())
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(toc)
			}

			for _, e := range toc {
				fmt.Fprintf(w, "%d. %s [%s]\n", e.Index, e.Title, e.Slug)
				for _, s := range e.Sections {
					fmt.Fprintf(w, "   %s %s\n", s.Number, s.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
