package content

import (
	"math"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/normalize"
)

// BuildPlan runs the single normalization pass over a locale's content
// tree. Every shape problem is recovered locally and reported as an Issue.
func BuildPlan(locale Locale, tree LocalizedContentTree) (*BusinessPlan, []Issue) {
	b := &planBuilder{locale: locale, tree: tree}
	plan := &BusinessPlan{Locale: locale}

	b.executive(&plan.Executive)
	b.businessModel(&plan.BusinessModel)
	b.market(&plan.Market)
	b.technology(&plan.Technology)
	b.team(&plan.Team)
	b.finance(&plan.Finance)
	b.risks(&plan.Risks)
	b.funding(&plan.Funding)

	return plan, b.issues
}

type planBuilder struct {
	locale Locale
	tree   LocalizedContentTree
	issues []Issue

	// per-domain cursor used by the field helpers
	domain string
	doc    map[string]any
	sec    *Section
}

func (b *planBuilder) open(domain string, sec *Section) {
	b.domain, b.sec = domain, sec
	doc, ok := b.tree.Domain(domain)
	if !ok {
		b.warn("", "domain document missing or not a map")
		doc = map[string]any{}
		sec.Partial = true
	}
	b.doc = doc
}

func (b *planBuilder) warn(field, msg string) {
	b.issues = append(b.issues, Issue{
		Locale:   b.locale,
		Domain:   b.domain,
		Field:    field,
		Severity: SeverityWarning,
		Message:  msg,
	})
}

func (b *planBuilder) text(field string) string {
	s, ok := normalize.StringField(b.doc, field)
	if !ok {
		if _, present := b.doc[field]; present {
			b.warn(field, "expected non-empty text")
		}
		b.sec.missing(field)
		return ""
	}
	return strings.TrimSpace(s)
}

func (b *planBuilder) list(field string) []string {
	v, present := b.doc[field]
	out, ok := normalize.NormalizeStringListOK(v)
	switch {
	case !present:
		b.sec.missing(field)
	case !ok:
		b.warn(field, "unrecognized list shape, expected strings or {type, description} records")
		b.sec.missing(field)
	case len(out) == 0:
		b.sec.missing(field)
	}
	return out
}

func (b *planBuilder) records(field string) []map[string]any {
	v, present := b.doc[field]
	recs, ok := normalize.Records(v)
	switch {
	case !present:
		b.sec.missing(field)
	case !ok:
		b.warn(field, "expected a list of records")
		b.sec.missing(field)
	case len(recs) == 0:
		b.sec.missing(field)
	}
	return recs
}

func (b *planBuilder) series(field string) []normalize.SeriesPoint {
	v, present := b.doc[field]
	out, ok := normalize.DeriveChartSeriesOK(v)
	switch {
	case !present:
		b.sec.missing(field)
	case !ok && len(out) == 0:
		b.warn(field, "expected a list of [label, value] pairs or {label, value} records")
		b.sec.missing(field)
	case !ok:
		b.warn(field, "series contains non-numeric values, coerced to 0")
	}
	return out
}

// kpi reads a figure authored either as plain text or as a
// {label, value, note} record. assume is applied when the value has no unit.
func (b *planBuilder) kpi(field, defaultLabel string, assume normalize.Unit) KPI {
	v, present := b.doc[field]
	if !present || v == nil {
		b.sec.missing(field)
		return KPI{Label: defaultLabel}
	}
	k, ok := kpiOf(v, defaultLabel, assume, b.locale)
	if !ok {
		b.warn(field, "expected text or a {label, value} record")
		b.sec.missing(field)
	}
	return k
}

func (b *planBuilder) kpis(field string) []KPI {
	recs := b.records(field)
	out := make([]KPI, 0, len(recs))
	for _, rec := range recs {
		k, ok := kpiOf(rec, "", normalize.UnitNone, b.locale)
		if !ok || k.Label == "" {
			b.warn(field, "kpi entry without label or value skipped")
			continue
		}
		out = append(out, k)
	}
	return out
}

func (b *planBuilder) milestones(field string) []Milestone {
	recs := b.records(field)
	out := make([]Milestone, 0, len(recs))
	for _, rec := range recs {
		m := Milestone{
			When:        str(rec, "when"),
			Title:       str(rec, "title"),
			Description: str(rec, "description"),
		}
		if m.Title == "" {
			b.warn(field, "milestone without title skipped")
			continue
		}
		out = append(out, m)
	}
	return out
}

func kpiOf(v any, defaultLabel string, assume normalize.Unit, locale Locale) (KPI, bool) {
	k := KPI{Label: defaultLabel}
	switch x := v.(type) {
	case string:
		k.Value = strings.TrimSpace(x)
	case int, int64, float64:
		numericKPI(&k, x, assume, locale)
		return k, true
	default:
		rec, ok := normalize.Record(v)
		if !ok {
			return k, false
		}
		if l := str(rec, "label"); l != "" {
			k.Label = l
		}
		k.Note = str(rec, "note")
		switch val := rec["value"].(type) {
		case string:
			k.Value = strings.TrimSpace(val)
		case int, int64, float64:
			numericKPI(&k, val, assume, locale)
			return k, true
		}
	}
	if k.Value == "" {
		return k, false
	}
	if r, ok := normalize.ParseNumericRangeAssuming(k.Value, assume); ok {
		k.Range = &r
	}
	return k, true
}

// numericKPI fills a KPI authored as a bare number. The range comes from the
// number itself; the display text is grouped for locale.
func numericKPI(k *KPI, v any, assume normalize.Unit, locale Locale) {
	f, _ := normalize.ToFloat(v)
	decimals := 0
	if f != math.Trunc(f) {
		decimals = 1
	}
	unit := assume
	if unit == "" {
		unit = normalize.UnitNone
	}
	k.Value = normalize.FormatNumber(f, decimals, locale.Tag())
	k.Range = &normalize.ParsedRange{Low: f, High: f, Mean: f, Unit: unit, Decimals: decimals}
}

func str(rec map[string]any, key string) string {
	s, _ := normalize.StringField(rec, key)
	return strings.TrimSpace(s)
}

func (b *planBuilder) executive(c *ExecutiveContent) {
	b.open("executive", &c.Section)
	c.Tagline = b.text("tagline")
	c.Summary = b.text("summary")
	c.Highlights = b.list("highlights")
	c.KPIs = b.kpis("kpis")
}

func (b *planBuilder) businessModel(c *BusinessModelContent) {
	b.open("business_model", &c.Section)
	c.ValueProposition = b.text("value_proposition")
	c.RevenueStreams = b.list("revenue_streams")
	for _, rec := range b.records("pricing") {
		tier := PricingTier{
			Name:     str(rec, "name"),
			Price:    str(rec, "price"),
			Features: normalize.NormalizeStringList(rec["features"]),
		}
		if tier.Name == "" {
			b.warn("pricing", "pricing tier without name skipped")
			continue
		}
		c.Pricing = append(c.Pricing, tier)
	}
	c.UnitEconomics = b.kpis("unit_economics")
}

func (b *planBuilder) market(c *MarketContent) {
	b.open("market", &c.Section)
	// Market sizes are authored in billions without a unit token.
	c.TAM = b.kpi("tam", "TAM", normalize.UnitBillion)
	c.SAM = b.kpi("sam", "SAM", normalize.UnitBillion)
	c.SOM = b.kpi("som", "SOM", normalize.UnitBillion)
	c.Growth = b.kpi("growth", "CAGR", normalize.UnitNone)
	c.Segments = b.list("segments")
	for _, rec := range b.records("competitors") {
		comp := Competitor{Name: str(rec, "name"), Positioning: str(rec, "positioning")}
		if comp.Name == "" {
			b.warn("competitors", "competitor without name skipped")
			continue
		}
		c.Competitors = append(c.Competitors, comp)
	}
	c.Trends = b.list("trends")
}

func (b *planBuilder) technology(c *TechnologyContent) {
	b.open("technology", &c.Section)
	c.Stack = b.list("stack")
	c.Roadmap = b.milestones("roadmap")
	c.IP = b.list("ip")
}

func (b *planBuilder) team(c *TeamContent) {
	b.open("team", &c.Section)
	for _, rec := range b.records("members") {
		m := Member{Name: str(rec, "name"), Role: str(rec, "role"), Bio: str(rec, "bio")}
		if m.Name == "" {
			b.warn("members", "member without name skipped")
			continue
		}
		c.Members = append(c.Members, m)
	}
	c.Advisors = b.list("advisors")
	c.Hiring = b.list("hiring")
}

func (b *planBuilder) finance(c *FinanceContent) {
	b.open("finance", &c.Section)
	c.Unit = b.text("unit")
	c.Revenue = b.series("revenue")
	c.EBITDA = b.series("ebitda")
	c.KPIs = b.kpis("kpis")
	c.BreakEven = b.text("break_even")
}

func (b *planBuilder) risks(c *RisksContent) {
	b.open("risks", &c.Section)
	c.Items = b.list("items")
	c.Mitigations = b.list("mitigations")
}

func (b *planBuilder) funding(c *FundingContent) {
	b.open("funding", &c.Section)
	c.Amount = b.kpi("amount", "Funding", normalize.UnitNone)
	c.Instrument = b.text("instrument")
	c.UseOfFunds = b.series("use_of_funds")
	c.Milestones = b.milestones("milestones")
}
