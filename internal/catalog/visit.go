package catalog

var visitPages = []ContentPage{
	{
		Slug:  "visitor-visa",
		Title: "Visitor Visas",
		SEO: SEO{
			Title:       "Visitor Visas | Northview Law",
			Description: "Temporary resident visa applications: ties to home, purpose of visit, and how to answer a prior refusal.",
			Keywords:    "visitor visa, temporary resident visa, TRV",
		},
		Hero: "A visitor visa is decided on ties and purpose. A short application done carefully beats a thick one done generically.",
		Overview: []string{
			"Citizens of visa-required countries need a temporary resident visa to enter Canada. The officer's question is simple: will this person leave at the end of the authorized stay? Every document in the application should answer it.",
			"Employment letters, property records, family ties, and travel history all speak to the likelihood of return. Where there has been a prior refusal, the new application must engage with the stated refusal grounds directly rather than resubmitting the same package.",
		},
		Eligibility: []string{
			"Valid passport",
			"Proof of funds for the visit",
			"Ties to the home country demonstrating intent to return",
			"Admissibility to Canada",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Purpose and ties review", Description: "Map the visit's purpose and the evidence of return before any form is filled."},
			{Number: 2, Title: "Application", Description: "File online with an invitation letter where a host is involved."},
			{Number: 3, Title: "Biometrics and decision", Description: "Complete biometrics; passports are requested only on approval."},
		},
		ProcessingTime: "Country-dependent; commonly 2 to 8 weeks excluding biometrics.",
		Fees:           "Visa fee of $100 plus $85 biometrics.",
		FAQs: []FAQ{
			{Question: "How long can I stay?", Answer: "Normally up to six months per entry; the officer at the port of entry sets the authorized stay."},
		},
	},
	{
		Slug:  "super-visa",
		Title: "Parent and Grandparent Super Visas",
		SEO: SEO{
			Title:       "Super Visa | Northview Law",
			Description: "Multi-year visits for parents and grandparents: income thresholds, insurance requirements, and application strategy.",
			Keywords:    "super visa, parents, grandparents, medical insurance",
		},
		Hero: "The super visa allows stays of up to five years per entry, far beyond the standard visitor limit.",
		Overview: []string{
			"Parents and grandparents of Canadian citizens and permanent residents can apply for a multi-entry visa valid up to ten years, with extended stays per entry. The host child or grandchild must meet a minimum income threshold and commit to supporting the visitor.",
			"Private medical insurance from an approved provider is mandatory at the time of entry, and the insurance requirement is re-checked on each entry, not just at approval.",
		},
		Eligibility: []string{
			"Parent or grandparent relationship to a citizen or permanent resident",
			"Host income at or above the low-income cut-off for the family size",
			"Signed letter of financial support from the host",
			"Qualifying medical insurance coverage",
			"Immigration medical examination",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Host qualification", Description: "Verify the host's income with notices of assessment and compute the family-size threshold."},
			{Number: 2, Title: "Insurance placement", Description: "Arrange qualifying coverage from an approved provider."},
			{Number: 3, Title: "Application", Description: "File with the support letter, relationship proof, and insurance certificate."},
		},
		ProcessingTime: "Commonly 2 to 4 months, plus the medical examination.",
		Fees:           "Visa fee of $100 plus $85 biometrics; insurance premiums vary with age and coverage.",
		FAQs: []FAQ{
			{Question: "Is the super visa better than sponsorship?", Answer: "They serve different goals. Sponsorship grants permanent residence but is lottery-limited; the super visa is available year-round for extended visits."},
		},
	},
	{
		Slug:  "visitor-record-extension",
		Title: "Extending Your Stay as a Visitor",
		SEO: SEO{
			Title:       "Visitor Record Extensions | Northview Law",
			Description: "Extend a visit from inside Canada with a visitor record, and recover status within 90 days if a deadline was missed.",
			Keywords:    "visitor record, extend stay, restoration of status",
		},
		Hero: "Your authorized stay ends on a date, not with your flight home. A visitor record filed before that date keeps you in status.",
		Overview: []string{
			"Visitors who need more time apply for a visitor record from inside Canada before their current stay expires. Filing on time places you on maintained status until the decision.",
			"A visitor record is not a visa; it does not permit re-entry. If you leave while it is pending, the application is effectively abandoned and re-entry falls back on your original visa.",
		},
		Eligibility: []string{
			"Application filed before the authorized stay expires",
			"A purpose for the extended stay and funds to support it",
			"Intent to leave at the end of the extension",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Deadline check", Description: "Identify the exact expiry of the authorized stay, including any stamp or document that shortened it."},
			{Number: 2, Title: "Application", Description: "File online with the reason for the extension and financial evidence."},
			{Number: 3, Title: "Decision", Description: "Remain in Canada while pending; a visitor record issues with a new expiry date."},
		},
		ProcessingTime: "Frequently 2 to 5 months; maintained status covers the gap when filed on time.",
		Fees:           "Visitor record fee of $100; restoration adds $229 when filed after expiry.",
		FAQs: []FAQ{
			{Question: "What if my stay already expired?", Answer: "Within 90 days you may apply for restoration of status together with the extension; beyond 90 days you must leave Canada."},
		},
	},
}
