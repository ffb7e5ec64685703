package content

import (
	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/normalize"
)

// Bundle is everything served for one locale: the raw tree, the normalized
// plan, the UI message catalog and the issues found while building them.
type Bundle struct {
	Locale   Locale               `json:"locale"`
	Tree     LocalizedContentTree `json:"-"`
	Plan     *BusinessPlan        `json:"plan"`
	Messages Messages             `json:"-"`
	Issues   []Issue              `json:"issues"`
}

// NewBundle normalizes tree for locale and checks it against the required
// fields of registry.
func NewBundle(locale Locale, tree LocalizedContentTree, registry *chapters.Registry) *Bundle {
	if tree == nil {
		tree = LocalizedContentTree{}
	}
	plan, issues := BuildPlan(locale, tree)
	issues = append(issues, CheckRequiredFields(locale, tree, registry)...)
	return &Bundle{
		Locale:   locale,
		Tree:     tree,
		Plan:     plan,
		Messages: flattenMessages(tree["messages"]),
		Issues:   issues,
	}
}

// ChapterTitle returns the translated chapter title or its fallback.
func (b *Bundle) ChapterTitle(ch chapters.Chapter) string {
	return b.Messages.T(ch.TitleKey, ch.Title)
}

// SubchapterTitle returns the translated subchapter title or its fallback.
func (b *Bundle) SubchapterTitle(sub chapters.Subchapter) string {
	return b.Messages.T(sub.TitleKey, sub.Title)
}

// T translates a UI message key.
func (b *Bundle) T(key, fallback string) string {
	return b.Messages.T(key, fallback)
}

// Placeholder is the text shown for missing content in this locale.
func (b *Bundle) Placeholder() string {
	return normalize.Placeholder(b.Locale.Tag())
}
