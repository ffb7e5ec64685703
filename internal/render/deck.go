package render

import (
	"strconv"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
)

// maxBullets caps the bullet list of a slide.
const maxBullets = 4

// Deck is the condensed, animation-ready pitch view.
type Deck struct {
	Locale content.Locale `json:"locale"`
	Title  string         `json:"title"`
	Slides []Slide        `json:"slides"`
}

// Slide condenses one chapter.
type Slide struct {
	Index       int       `json:"index"`
	Number      string    `json:"number"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Headline    string    `json:"headline,omitempty"`
	Bullets     []string  `json:"bullets"`
	Stats       []KPICard `json:"stats,omitempty"`
	Series      *Series   `json:"series,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

type slideBuilder func(b *content.Bundle, s *Slide)

var slideBuilders = map[string]slideBuilder{
	"executive": func(b *content.Bundle, s *Slide) {
		s.Headline = b.Plan.Executive.Tagline
		s.Bullets = b.Plan.Executive.Highlights
		s.Stats = kpiCards(b.Plan.Executive.KPIs)
	},
	"business-model": func(b *content.Bundle, s *Slide) {
		s.Headline = b.Plan.BusinessModel.ValueProposition
		s.Bullets = b.Plan.BusinessModel.RevenueStreams
		s.Stats = kpiCards(b.Plan.BusinessModel.UnitEconomics)
	},
	"market": func(b *content.Bundle, s *Slide) {
		m := b.Plan.Market
		s.Stats = marketCards(b, m.TAM, m.SAM, m.SOM, m.Growth)
		s.Bullets = m.Segments
	},
	"technology": func(b *content.Bundle, s *Slide) {
		for _, m := range b.Plan.Technology.Roadmap {
			s.Bullets = append(s.Bullets, milestoneLine(m))
		}
	},
	"team": func(b *content.Bundle, s *Slide) {
		for _, m := range b.Plan.Team.Members {
			line := m.Name
			if m.Role != "" {
				line += ", " + m.Role
			}
			s.Bullets = append(s.Bullets, line)
		}
	},
	"finance": func(b *content.Bundle, s *Slide) {
		f := b.Plan.Finance
		s.Series = seriesOf(f.Unit, f.Revenue)
		s.Stats = kpiCards(f.KPIs)
		if f.BreakEven != "" {
			s.Bullets = []string{f.BreakEven}
		}
	},
	"risks": func(b *content.Bundle, s *Slide) {
		s.Bullets = b.Plan.Risks.Items
	},
	"funding": func(b *content.Bundle, s *Slide) {
		f := b.Plan.Funding
		s.Headline = f.Instrument
		s.Stats = kpiCards([]content.KPI{f.Amount})
		s.Series = seriesOf("%", f.UseOfFunds)
		for _, m := range f.Milestones {
			s.Bullets = append(s.Bullets, milestoneLine(m))
		}
	},
}

// BuildDeck builds one slide per chapter in registry order.
func BuildDeck(b *content.Bundle, registry *chapters.Registry) *Deck {
	deck := &Deck{
		Locale: b.Locale,
		Title:  b.T("site.title", "Pitch Deck"),
		Slides: make([]Slide, 0, registry.Len()),
	}
	for i, ch := range registry.All() {
		s := Slide{
			Index:  i + 1,
			Number: strconv.Itoa(i + 1),
			Slug:   ch.Slug,
			Title:  b.ChapterTitle(ch),
		}
		if fill, ok := slideBuilders[ch.Slug]; ok {
			fill(b, &s)
		}
		if len(s.Bullets) > maxBullets {
			s.Bullets = s.Bullets[:maxBullets]
		}
		if s.Bullets == nil {
			s.Bullets = []string{}
		}
		if s.Headline == "" && len(s.Bullets) == 0 && len(s.Stats) == 0 && s.Series == nil {
			s.Placeholder = b.Placeholder()
		}
		deck.Slides = append(deck.Slides, s)
	}
	return deck
}

func milestoneLine(m content.Milestone) string {
	if m.When == "" {
		return m.Title
	}
	return m.When + ": " + m.Title
}

// CountUpTargets lists every animated figure of the deck, in slide order.
func (d *Deck) CountUpTargets() []KPICard {
	var out []KPICard
	for _, s := range d.Slides {
		for _, st := range s.Stats {
			if st.Animate {
				out = append(out, st)
			}
		}
	}
	return out
}
