package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	version    string
	stage      string
	contentDir string
	locale     string
}

// NewRootCmd builds the pitch command tree.
func NewRootCmd(version string) *cobra.Command {
	o := &options{version: version}

	root := &cobra.Command{
		Use:   "pitch",
		Short: "Cyphera business plan and pitch deck",
		Long: `pitch serves and exports the localized (de/en) Cyphera business plan.

Content is embedded in the binary. Point --content-dir (or CONTENT_DIR) at a
directory laid out as <dir>/<locale>/*.yaml to override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.stage = server.LoadStage()
			// Only the HTTP server logs to stdout; everything else keeps
			// stdout for its own output.
			if cmd.Name() == "serve" {
				logger.InitLogger(o.stage)
			} else {
				logger.InitStderrLogger(o.stage)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&o.contentDir, "content-dir", os.Getenv("CONTENT_DIR"), "content directory overriding the embedded content")
	root.PersistentFlags().StringVarP(&o.locale, "locale", "l", os.Getenv("DEFAULT_LOCALE"), "locale (de or en)")

	root.AddCommand(
		newServeCmd(o),
		newExportCmd(o),
		newChaptersCmd(o),
		newShowCmd(o),
		newValidateCmd(o),
		newMCPCmd(o),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// defaultLocale is --locale when it names a supported locale, then
// DEFAULT_LOCALE, then the built-in default.
func (o *options) defaultLocale() content.Locale {
	if l, ok := content.ParseLocale(o.locale); ok {
		return l
	}
	if l, ok := content.ParseLocale(os.Getenv("DEFAULT_LOCALE")); ok {
		return l
	}
	return content.DefaultLocale
}

// selectedLocale parses --locale, falling back to the default locale.
func (o *options) selectedLocale() (content.Locale, error) {
	if strings.TrimSpace(o.locale) == "" {
		return o.defaultLocale(), nil
	}
	l, ok := content.ParseLocale(o.locale)
	if !ok {
		return "", errors.Errorf("unsupported locale %q (want one of %s)", o.locale, supportedList())
	}
	return l, nil
}

func (o *options) loadStore(ctx context.Context) (*content.Store, error) {
	store := server.NewStore(server.Config{
		ContentDir:    strings.TrimSpace(o.contentDir),
		DefaultLocale: o.defaultLocale(),
	})
	if err := store.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}
	return store, nil
}

func supportedList() string {
	out := make([]string, len(content.Supported))
	for i, l := range content.Supported {
		out[i] = string(l)
	}
	return strings.Join(out, ", ")
}
