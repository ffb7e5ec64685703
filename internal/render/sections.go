package render

import (
	"regexp"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/normalize"
)

type sectionBuilder func(b *content.Bundle, s *Section)

// sectionBuilders maps "<chapter slug>/<subchapter id>" to the function that
// fills that section from the normalized plan.
var sectionBuilders = map[string]sectionBuilder{
	"executive/overview": func(b *content.Bundle, s *Section) {
		s.Lead = b.Plan.Executive.Tagline
		s.Text = b.Plan.Executive.Summary
	},
	"executive/highlights": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Executive.Highlights
	},
	"executive/kpis": func(b *content.Bundle, s *Section) {
		s.KPIs = kpiCards(b.Plan.Executive.KPIs)
	},

	"business-model/value-proposition": func(b *content.Bundle, s *Section) {
		s.Text = b.Plan.BusinessModel.ValueProposition
	},
	"business-model/revenue-streams": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.BusinessModel.RevenueStreams
	},
	"business-model/pricing": func(b *content.Bundle, s *Section) {
		s.Table = pricingTable(b)
	},
	"business-model/unit-economics": func(b *content.Bundle, s *Section) {
		s.KPIs = kpiCards(b.Plan.BusinessModel.UnitEconomics)
	},

	"market/market-size": func(b *content.Bundle, s *Section) {
		m := b.Plan.Market
		s.KPIs = marketCards(b, m.TAM, m.SAM, m.SOM, m.Growth)
	},
	"market/segments": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Market.Segments
	},
	"market/competition": func(b *content.Bundle, s *Section) {
		s.Table = competitionTable(b)
	},
	"market/trends": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Market.Trends
	},

	"technology/platform": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Technology.Stack
	},
	"technology/roadmap": func(b *content.Bundle, s *Section) {
		s.Table = milestoneTable(b, b.Plan.Technology.Roadmap)
	},
	"technology/ip": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Technology.IP
	},

	"team/founders": func(b *content.Bundle, s *Section) {
		s.Table = teamTable(b)
	},
	"team/advisors": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Team.Advisors
	},
	"team/hiring": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Team.Hiring
	},

	"finance/revenue": func(b *content.Bundle, s *Section) {
		s.Series = seriesOf(b.Plan.Finance.Unit, b.Plan.Finance.Revenue)
	},
	"finance/profitability": func(b *content.Bundle, s *Section) {
		s.Series = seriesOf(b.Plan.Finance.Unit, b.Plan.Finance.EBITDA)
	},
	"finance/kpis": func(b *content.Bundle, s *Section) {
		s.KPIs = kpiCards(b.Plan.Finance.KPIs)
	},
	"finance/break-even": func(b *content.Bundle, s *Section) {
		s.Text = b.Plan.Finance.BreakEven
	},

	"risks/register": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Risks.Items
	},
	"risks/mitigation": func(b *content.Bundle, s *Section) {
		s.Items = b.Plan.Risks.Mitigations
	},

	"funding/ask": func(b *content.Bundle, s *Section) {
		s.KPIs = kpiCards([]content.KPI{b.Plan.Funding.Amount})
		s.Text = b.Plan.Funding.Instrument
	},
	"funding/use-of-funds": func(b *content.Bundle, s *Section) {
		s.Series = seriesOf("%", b.Plan.Funding.UseOfFunds)
	},
	"funding/milestones": func(b *content.Bundle, s *Section) {
		s.Table = milestoneTable(b, b.Plan.Funding.Milestones)
	},
}

// groupedThousands matches numbers written with a thousands separator such
// as "1.800" or "14,500". The range parser reads those as decimals, so such
// values are shown as authored and not animated.
var groupedThousands = regexp.MustCompile(`\d[.,]\d{3}(?:\D|$)`)

func kpiCard(k content.KPI) KPICard {
	card := KPICard{Label: k.Label, Note: k.Note, Display: k.Value}
	if k.Range == nil {
		card.Display = normalize.NoValue
		return card
	}
	if !groupedThousands.MatchString(k.Value) {
		card.Animate = true
		card.CountTo = k.Range.Mean
		card.Decimals = k.Range.Decimals
	}
	return card
}

func kpiCards(kpis []content.KPI) []KPICard {
	out := make([]KPICard, 0, len(kpis))
	for _, k := range kpis {
		if k.Value == "" {
			continue
		}
		out = append(out, kpiCard(k))
	}
	return out
}

// marketCards re-renders market figures from their parsed range so the
// implied unit is spelled out in the locale's style.
func marketCards(b *content.Bundle, kpis ...content.KPI) []KPICard {
	out := make([]KPICard, 0, len(kpis))
	for _, k := range kpis {
		if k.Value == "" {
			continue
		}
		card := kpiCard(k)
		if k.Range != nil {
			card.Display = normalize.FormatRange(*k.Range, b.Locale.Tag())
			card.Animate = true
			card.CountTo = k.Range.Mean
			card.Decimals = k.Range.Decimals
		}
		out = append(out, card)
	}
	return out
}

func seriesOf(unit string, points []normalize.SeriesPoint) *Series {
	if len(points) == 0 {
		return nil
	}
	return &Series{Unit: unit, Points: points}
}

func pricingTable(b *content.Bundle) *Table {
	tiers := b.Plan.BusinessModel.Pricing
	if len(tiers) == 0 {
		return nil
	}
	t := &Table{Columns: []string{b.T("ui.tier", "Plan"), b.T("ui.price", "Price"), b.T("ui.features", "Features")}}
	for _, tier := range tiers {
		t.Rows = append(t.Rows, []string{tier.Name, orNoValue(tier.Price), strings.Join(tier.Features, ", ")})
	}
	return t
}

func competitionTable(b *content.Bundle) *Table {
	comps := b.Plan.Market.Competitors
	if len(comps) == 0 {
		return nil
	}
	t := &Table{Columns: []string{b.T("ui.competitor", "Competitor"), b.T("ui.positioning", "Positioning")}}
	for _, c := range comps {
		t.Rows = append(t.Rows, []string{c.Name, c.Positioning})
	}
	return t
}

func milestoneTable(b *content.Bundle, ms []content.Milestone) *Table {
	if len(ms) == 0 {
		return nil
	}
	t := &Table{Columns: []string{b.T("ui.when", "When"), b.T("ui.milestone", "Milestone")}}
	for _, m := range ms {
		title := m.Title
		if m.Description != "" {
			title += ": " + m.Description
		}
		t.Rows = append(t.Rows, []string{orNoValue(m.When), title})
	}
	return t
}

func teamTable(b *content.Bundle) *Table {
	members := b.Plan.Team.Members
	if len(members) == 0 {
		return nil
	}
	t := &Table{Columns: []string{b.T("ui.name", "Name"), b.T("ui.role", "Role"), b.T("ui.bio", "Background")}}
	for _, m := range members {
		t.Rows = append(t.Rows, []string{m.Name, orNoValue(m.Role), m.Bio})
	}
	return t
}

func orNoValue(s string) string {
	if s == "" {
		return normalize.NoValue
	}
	return s
}
