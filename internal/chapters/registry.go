// Package chapters holds the canonical chapter order of the pitch and the
// numbering derived from it.
package chapters

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrChapterNotFound is returned for an unknown slug or an index outside
// [1, Len()]. Callers surface it as a not-found, never as a default chapter.
var ErrChapterNotFound = errors.New("chapter not found")

// Chapter is a top-level addressable section of the pitch.
type Chapter struct {
	ID             int          `json:"id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	TitleKey       string       `json:"titleKey"`
	RequiredFields []string     `json:"requiredFields"`
	Subchapters    []Subchapter `json:"subchapters"`
}

// Subchapter is a numbered section within a chapter.
type Subchapter struct {
	ID       string `json:"id"`
	TitleKey string `json:"titleKey"`
	Title    string `json:"title,omitempty"`
}

// RouteParams identifies one pre-enumerated chapter route.
type RouteParams struct {
	ChapterID string `json:"chapterId"`
}

// Registry is an immutable ordered list of chapters. It is safe for
// concurrent readers.
type Registry struct {
	chapters []Chapter
}

// NewRegistry validates and copies chapters. IDs must be 1..n in order and
// slugs unique and non-numeric.
func NewRegistry(chapters []Chapter) (*Registry, error) {
	seen := make(map[string]bool, len(chapters))
	out := make([]Chapter, len(chapters))
	for i, ch := range chapters {
		if ch.ID != i+1 {
			return nil, errors.Errorf("chapter %q has id %d, want %d", ch.Slug, ch.ID, i+1)
		}
		if ch.Slug == "" || isIndex(ch.Slug) {
			return nil, errors.Errorf("chapter %d has invalid slug %q", ch.ID, ch.Slug)
		}
		if seen[ch.Slug] {
			return nil, errors.Errorf("duplicate chapter slug %q", ch.Slug)
		}
		seen[ch.Slug] = true

		subSeen := make(map[string]bool, len(ch.Subchapters))
		for _, sub := range ch.Subchapters {
			if subSeen[sub.ID] {
				return nil, errors.Errorf("duplicate subchapter %q in chapter %q", sub.ID, ch.Slug)
			}
			subSeen[sub.ID] = true
		}

		ch.RequiredFields = append([]string(nil), ch.RequiredFields...)
		ch.Subchapters = append([]Subchapter(nil), ch.Subchapters...)
		out[i] = ch
	}
	return &Registry{chapters: out}, nil
}

// MustNewRegistry is NewRegistry that panics on invalid input. It is meant
// for package level registries.
func MustNewRegistry(chapters []Chapter) *Registry {
	r, err := NewRegistry(chapters)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of chapters.
func (r *Registry) Len() int {
	return len(r.chapters)
}

// All returns the chapters in canonical order.
func (r *Registry) All() []Chapter {
	out := make([]Chapter, len(r.chapters))
	copy(out, r.chapters)
	return out
}

// ResolveBySlug returns the chapter with the given slug.
func (r *Registry) ResolveBySlug(slug string) (Chapter, error) {
	for _, ch := range r.chapters {
		if ch.Slug == slug {
			return ch, nil
		}
	}
	return Chapter{}, errors.Wrapf(ErrChapterNotFound, "slug %q", slug)
}

// IndexOf returns the 1-based position of slug in canonical order.
func (r *Registry) IndexOf(slug string) (int, error) {
	for i, ch := range r.chapters {
		if ch.Slug == slug {
			return i + 1, nil
		}
	}
	return 0, errors.Wrapf(ErrChapterNotFound, "slug %q", slug)
}

// ByIndex returns the chapter at 1-based position n.
func (r *Registry) ByIndex(n int) (Chapter, error) {
	if n < 1 || n > len(r.chapters) {
		return Chapter{}, errors.Wrapf(ErrChapterNotFound, "index %d outside [1, %d]", n, len(r.chapters))
	}
	return r.chapters[n-1], nil
}

// Resolve accepts either a 1-based index or a slug.
func (r *Registry) Resolve(ref string) (Chapter, error) {
	ref = strings.TrimSpace(ref)
	if isIndex(ref) {
		n, err := strconv.Atoi(ref)
		if err != nil {
			return Chapter{}, errors.Wrapf(ErrChapterNotFound, "index %q", ref)
		}
		return r.ByIndex(n)
	}
	return r.ResolveBySlug(ref)
}

// StaticRouteParams returns one route parameter record per chapter.
func (r *Registry) StaticRouteParams() []RouteParams {
	out := make([]RouteParams, len(r.chapters))
	for i := range r.chapters {
		out[i] = RouteParams{ChapterID: strconv.Itoa(i + 1)}
	}
	return out
}

// Neighbours returns the chapters before and after index n. Missing
// neighbours are nil.
func (r *Registry) Neighbours(n int) (prev, next *Chapter) {
	if n > 1 && n-1 <= len(r.chapters) {
		p := r.chapters[n-2]
		prev = &p
	}
	if n >= 1 && n < len(r.chapters) {
		nx := r.chapters[n]
		next = &nx
	}
	return prev, next
}

// IsNotFound reports whether err is, or wraps, ErrChapterNotFound.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrChapterNotFound
}

func isIndex(ref string) bool {
	if ref == "" {
		return false
	}
	for _, c := range ref {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
