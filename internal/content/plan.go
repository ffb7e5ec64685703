package content

import "github.com/cyphera/cyphera-pitch/internal/normalize"

// Section carries the partial-content marker shared by every domain. A
// partial domain still renders; missing fields show the placeholder.
type Section struct {
	Partial bool     `json:"partial"`
	Missing []string `json:"missing,omitempty"`
}

func (s *Section) missing(field string) {
	s.Partial = true
	s.Missing = append(s.Missing, field)
}

// KPI is a labelled figure. Range is nil when Value holds no number.
type KPI struct {
	Label string                 `json:"label"`
	Value string                 `json:"value"`
	Note  string                 `json:"note,omitempty"`
	Range *normalize.ParsedRange `json:"range,omitempty"`
}

type ExecutiveContent struct {
	Section
	Tagline    string   `json:"tagline"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	KPIs       []KPI    `json:"kpis"`
}

type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

type BusinessModelContent struct {
	Section
	ValueProposition string        `json:"valueProposition"`
	RevenueStreams   []string      `json:"revenueStreams"`
	Pricing          []PricingTier `json:"pricing"`
	UnitEconomics    []KPI         `json:"unitEconomics"`
}

type Competitor struct {
	Name        string `json:"name"`
	Positioning string `json:"positioning"`
}

type MarketContent struct {
	Section
	TAM         KPI          `json:"tam"`
	SAM         KPI          `json:"sam"`
	SOM         KPI          `json:"som"`
	Growth      KPI          `json:"growth"`
	Segments    []string     `json:"segments"`
	Competitors []Competitor `json:"competitors"`
	Trends      []string     `json:"trends"`
}

// Milestone is a dated roadmap or funding milestone.
type Milestone struct {
	When        string `json:"when"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type TechnologyContent struct {
	Section
	Stack   []string    `json:"stack"`
	Roadmap []Milestone `json:"roadmap"`
	IP      []string    `json:"ip"`
}

type Member struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio,omitempty"`
}

type TeamContent struct {
	Section
	Members  []Member `json:"members"`
	Advisors []string `json:"advisors"`
	Hiring   []string `json:"hiring"`
}

type FinanceContent struct {
	Section
	Unit      string                  `json:"unit"`
	Revenue   []normalize.SeriesPoint `json:"revenue"`
	EBITDA    []normalize.SeriesPoint `json:"ebitda"`
	KPIs      []KPI                   `json:"kpis"`
	BreakEven string                  `json:"breakEven"`
}

type RisksContent struct {
	Section
	Items       []string `json:"items"`
	Mitigations []string `json:"mitigations"`
}

type FundingContent struct {
	Section
	Amount     KPI                     `json:"amount"`
	Instrument string                  `json:"instrument"`
	UseOfFunds []normalize.SeriesPoint `json:"useOfFunds"`
	Milestones []Milestone             `json:"milestones"`
}

// BusinessPlan is the typed, normalized view of one locale's content tree.
type BusinessPlan struct {
	Locale        Locale               `json:"locale"`
	Executive     ExecutiveContent     `json:"executive"`
	BusinessModel BusinessModelContent `json:"businessModel"`
	Market        MarketContent        `json:"market"`
	Technology    TechnologyContent    `json:"technology"`
	Team          TeamContent          `json:"team"`
	Finance       FinanceContent       `json:"finance"`
	Risks         RisksContent         `json:"risks"`
	Funding       FundingContent       `json:"funding"`
}
