package interfaces

import (
	"context"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
)

//go:generate mockgen -source=content.go -destination=../mocks/mock_content_source.go -package=mocks

// ContentSource serves the localized content bundles and the chapter
// registry they are validated against.
type ContentSource interface {
	Load(ctx context.Context) error
	Bundle(locale content.Locale) *content.Bundle
	Issues() []content.Issue
	Registry() *chapters.Registry
	DefaultLocale() content.Locale
	LoadedAt() time.Time
}

var _ ContentSource = (*content.Store)(nil)
