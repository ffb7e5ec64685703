package content

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"go.uber.org/zap"
)

// Snapshot is one immutable generation of loaded content.
type Snapshot struct {
	Bundles  map[Locale]*Bundle
	LoadedAt time.Time
}

// Store serves the current content snapshot. Reloads build a complete new
// snapshot and swap it in, so readers never observe a partial load.
type Store struct {
	loader        *Loader
	registry      *chapters.Registry
	defaultLocale Locale

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// NewStore creates a store. Call Load before serving.
func NewStore(loader *Loader, registry *chapters.Registry, defaultLocale Locale) *Store {
	if _, ok := ParseLocale(string(defaultLocale)); !ok {
		defaultLocale = DefaultLocale
	}
	return &Store{
		loader:        loader,
		registry:      registry,
		defaultLocale: defaultLocale,
	}
}

// Load reads all locales and publishes them. On error the previous snapshot
// stays in place.
func (s *Store) Load(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	bundles, err := s.loader.LoadBundles(ctx, s.registry)
	if err != nil {
		return err
	}

	issueCount := 0
	for _, locale := range Supported {
		for _, issue := range bundles[locale].Issues {
			issueCount++
			logger.Warn("Content issue: "+issue.Message, issue.Fields()...)
		}
	}

	s.current.Store(&Snapshot{Bundles: bundles, LoadedAt: time.Now()})
	logger.Info("Content loaded",
		zap.Int("locales", len(bundles)),
		zap.Int("issues", issueCount),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Bundle returns the bundle for locale. An unsupported locale gets the
// default locale's bundle in its entirety; locales are never mixed.
func (s *Store) Bundle(locale Locale) *Bundle {
	snap := s.current.Load()
	if snap == nil {
		return NewBundle(s.defaultLocale, nil, s.registry)
	}
	if b, ok := snap.Bundles[locale]; ok {
		return b
	}
	return snap.Bundles[s.defaultLocale]
}

// Issues returns the issues of every locale in supported order.
func (s *Store) Issues() []Issue {
	snap := s.current.Load()
	if snap == nil {
		return []Issue{}
	}
	out := []Issue{}
	for _, locale := range Supported {
		if b, ok := snap.Bundles[locale]; ok {
			out = append(out, b.Issues...)
		}
	}
	return out
}

// Registry returns the chapter registry the store validates against.
func (s *Store) Registry() *chapters.Registry {
	return s.registry
}

// DefaultLocale returns the locale used for unsupported requests.
func (s *Store) DefaultLocale() Locale {
	return s.defaultLocale
}

// LoadedAt returns when the current snapshot was published.
func (s *Store) LoadedAt() time.Time {
	if snap := s.current.Load(); snap != nil {
		return snap.LoadedAt
	}
	return time.Time{}
}
