package chapters

// Default is the chapter registry of the pitch. Its order is the document
// order used by the site, the deck and the print export.
var Default = MustNewRegistry([]Chapter{
	{
		ID: 1, Slug: "executive", Title: "Executive Summary", TitleKey: "chapters.executive.title",
		RequiredFields: []string{"executive.summary", "executive.highlights"},
		Subchapters: []Subchapter{
			{ID: "overview", TitleKey: "chapters.executive.overview", Title: "Overview"},
			{ID: "highlights", TitleKey: "chapters.executive.highlights", Title: "Highlights"},
			{ID: "kpis", TitleKey: "chapters.executive.kpis", Title: "Key Figures"},
		},
	},
	{
		ID: 2, Slug: "business-model", Title: "Business Model", TitleKey: "chapters.business_model.title",
		RequiredFields: []string{"business_model.value_proposition", "business_model.revenue_streams"},
		Subchapters: []Subchapter{
			{ID: "value-proposition", TitleKey: "chapters.business_model.value_proposition", Title: "Value Proposition"},
			{ID: "revenue-streams", TitleKey: "chapters.business_model.revenue_streams", Title: "Revenue Streams"},
			{ID: "pricing", TitleKey: "chapters.business_model.pricing", Title: "Pricing"},
			{ID: "unit-economics", TitleKey: "chapters.business_model.unit_economics", Title: "Unit Economics"},
		},
	},
	{
		ID: 3, Slug: "market", Title: "Market & Competition", TitleKey: "chapters.market.title",
		RequiredFields: []string{"market.tam", "market.sam", "market.som"},
		Subchapters: []Subchapter{
			{ID: "market-size", TitleKey: "chapters.market.size", Title: "Market Size"},
			{ID: "segments", TitleKey: "chapters.market.segments", Title: "Target Segments"},
			{ID: "competition", TitleKey: "chapters.market.competition", Title: "Competition"},
			{ID: "trends", TitleKey: "chapters.market.trends", Title: "Trends"},
		},
	},
	{
		ID: 4, Slug: "technology", Title: "Technology & Roadmap", TitleKey: "chapters.technology.title",
		RequiredFields: []string{"technology.stack", "technology.roadmap"},
		Subchapters: []Subchapter{
			{ID: "platform", TitleKey: "chapters.technology.platform", Title: "Platform"},
			{ID: "roadmap", TitleKey: "chapters.technology.roadmap", Title: "Roadmap"},
			{ID: "ip", TitleKey: "chapters.technology.ip", Title: "Intellectual Property"},
		},
	},
	{
		ID: 5, Slug: "team", Title: "Team & Organisation", TitleKey: "chapters.team.title",
		RequiredFields: []string{"team.members"},
		Subchapters: []Subchapter{
			{ID: "founders", TitleKey: "chapters.team.founders", Title: "Founders"},
			{ID: "advisors", TitleKey: "chapters.team.advisors", Title: "Advisors"},
			{ID: "hiring", TitleKey: "chapters.team.hiring", Title: "Hiring Plan"},
		},
	},
	{
		ID: 6, Slug: "finance", Title: "Financial Plan", TitleKey: "chapters.finance.title",
		RequiredFields: []string{"finance.revenue", "finance.ebitda"},
		Subchapters: []Subchapter{
			{ID: "revenue", TitleKey: "chapters.finance.revenue", Title: "Revenue"},
			{ID: "profitability", TitleKey: "chapters.finance.profitability", Title: "Profitability"},
			{ID: "kpis", TitleKey: "chapters.finance.kpis", Title: "Financial KPIs"},
			{ID: "break-even", TitleKey: "chapters.finance.break_even", Title: "Break-even"},
		},
	},
	{
		ID: 7, Slug: "risks", Title: "Risks", TitleKey: "chapters.risks.title",
		RequiredFields: []string{"risks.items"},
		Subchapters: []Subchapter{
			{ID: "register", TitleKey: "chapters.risks.register", Title: "Risk Register"},
			{ID: "mitigation", TitleKey: "chapters.risks.mitigation", Title: "Mitigation"},
		},
	},
	{
		ID: 8, Slug: "funding", Title: "Funding", TitleKey: "chapters.funding.title",
		RequiredFields: []string{"funding.amount", "funding.use_of_funds"},
		Subchapters: []Subchapter{
			{ID: "ask", TitleKey: "chapters.funding.ask", Title: "Investment Ask"},
			{ID: "use-of-funds", TitleKey: "chapters.funding.use_of_funds", Title: "Use of Funds"},
			{ID: "milestones", TitleKey: "chapters.funding.milestones", Title: "Milestones"},
		},
	},
})
