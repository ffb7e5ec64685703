package content

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// EmbeddedFS returns the content shipped with the binary, rooted so that
// each locale is a top-level directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Loader reads per-locale domain documents from a file system laid out as
// <locale>/<domain>.yaml.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadTree decodes every YAML document of locale into one tree keyed by the
// file's base name.
func (l *Loader) LoadTree(ctx context.Context, locale Locale) (LocalizedContentTree, error) {
	entries, err := fs.ReadDir(l.fsys, string(locale))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read content directory for locale %s", locale)
	}

	tree := LocalizedContentTree{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		ext := path.Ext(name)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		raw, err := fs.ReadFile(l.fsys, path.Join(string(locale), name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s/%s", locale, name)
		}
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s/%s", locale, name)
		}
		tree[strings.TrimSuffix(name, ext)] = doc
	}
	return tree, nil
}

// LoadBundles loads and normalizes every supported locale concurrently.
func (l *Loader) LoadBundles(ctx context.Context, registry *chapters.Registry) (map[Locale]*Bundle, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	bundles := make(map[Locale]*Bundle, len(Supported))
	for _, locale := range Supported {
		locale := locale
		g.Go(func() error {
			tree, err := l.LoadTree(ctx, locale)
			if err != nil {
				return err
			}
			b := NewBundle(locale, tree, registry)
			mu.Lock()
			bundles[locale] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}
