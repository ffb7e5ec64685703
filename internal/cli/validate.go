package cli

import (
	"fmt"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when content has error-level issues.
var ErrValidationFailed = errors.New("content validation failed")

func newValidateCmd(o *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check content of every locale and list issues",
		Long: `Loads every locale, normalizes it and checks the fields each chapter
requires. Exits non-zero when any issue has error severity, or any issue at all
with --strict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			issues := store.Issues()
			w := cmd.OutOrStdout()
			errorCount := 0
			for _, issue := range issues {
				if issue.Severity == content.SeverityError {
					errorCount++
				}
				fmt.Fprintln(w, issue.String())
			}

			if len(issues) == 0 {
				fmt.Fprintln(w, "Content OK")
				return nil
			}
			fmt.Fprintf(w, "%d issue(s), %d error(s)\n", len(issues), errorCount)

			if errorCount > 0 || strict {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings too")
	return cmd
}
