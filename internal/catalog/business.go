package catalog

var businessPages = []ContentPage{
	{
		Slug:  "start-up-visa",
		Title: "Start-Up Visa Program",
		SEO: SEO{
			Title:       "Start-Up Visa | Northview Law",
			Description: "Permanent residence for founders backed by a designated organization: commitment certificates, ownership rules, and timing.",
			Keywords:    "start-up visa, founders, designated organization, permanent residence",
		},
		Hero: "The start-up visa ties permanent residence to a designated investor's commitment, not to your own net worth.",
		Overview: []string{
			"Founders who secure support from a designated venture capital fund, angel group, or business incubator can apply for permanent residence on the strength of that commitment certificate. Up to five founders can apply on one business.",
			"The voting-rights structure matters: essential applicants must jointly hold more than half the voting rights with the designated organization, and the refusal of one essential applicant refuses the group.",
		},
		Eligibility: []string{
			"Commitment certificate and letter of support from a designated organization",
			"Qualifying ownership: each applicant holds at least 10% of voting rights",
			"Language ability at CLB 5 or higher",
			"Settlement funds for the family size",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Designated organization engagement", Description: "Pitch and secure the commitment; incubator, angel, and fund routes carry different investment minimums."},
			{Number: 2, Title: "Commitment certificate", Description: "The organization files the certificate; applicants align their ownership and roles with it."},
			{Number: 3, Title: "Permanent residence application", Description: "File with language results and settlement funds; an optional work permit lets founders build in Canada while waiting."},
		},
		ProcessingTime: "Permanent residence processing commonly runs 2 to 3 years; the optional founder work permit is much faster.",
		Fees:           "Processing fee of $1,625 plus the $515 right of permanent residence fee, per adult.",
		FAQs: []FAQ{
			{Question: "Must the business succeed for PR to be granted?", Answer: "No. The applicants must actively pursue the business, but commercial failure alone does not revoke permanent residence."},
		},
	},
	{
		Slug:  "intra-company-transfer",
		Title: "Intra-Company Transfers",
		SEO: SEO{
			Title:       "Intra-Company Transfers | Northview Law",
			Description: "Move executives, managers, and specialized-knowledge staff into a Canadian affiliate without an LMIA.",
			Keywords:    "intra-company transfer, ICT, specialized knowledge, executives",
		},
		Hero: "An ICT permit moves key people between related companies without a labour market test.",
		Overview: []string{
			"Multinational employers can transfer executives, senior managers, and specialized-knowledge employees to a Canadian parent, subsidiary, branch, or affiliate under an LMIA-exempt work permit.",
			"The two pressure points are the corporate relationship and the role. The Canadian and foreign entities must be genuinely related, and the position must truly be executive, managerial, or dependent on knowledge that is proprietary and advanced.",
		},
		Eligibility: []string{
			"One year of full-time employment with the foreign entity in the past three years",
			"Qualifying corporate relationship between the entities",
			"Executive, senior managerial, or specialized-knowledge role on both ends",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Corporate documentation", Description: "Evidence the relationship: share registers, organizational charts, financial statements."},
			{Number: 2, Title: "Role justification", Description: "Draft the duties comparison that establishes the qualifying capacity."},
			{Number: 3, Title: "Permit application", Description: "Apply at a visa office or the port of entry for visa-exempt nationals."},
		},
		ProcessingTime: "Visa-office processing varies by country; port-of-entry applications are decided the same day.",
		Fees:           "Work permit fee of $155 plus the $230 employer compliance fee.",
		FAQs: []FAQ{
			{Question: "Does ICT time count toward permanent residence?", Answer: "Yes. Senior ICT roles often score well under Express Entry, and the Canadian experience earned on the permit counts."},
		},
	},
	{
		Slug:  "business-visitor",
		Title: "Business Visitors",
		SEO: SEO{
			Title:       "Business Visitors | Northview Law",
			Description: "Attend meetings, conferences, and after-sales engagements in Canada without a work permit, and know where the line is.",
			Keywords:    "business visitor, meetings, after-sales service, no work permit",
		},
		Hero: "Business visitors enter without a work permit, as long as they stay on the right side of the 'entering the labour market' line.",
		Overview: []string{
			"Attending meetings, negotiating contracts, visiting clients, and certain after-sales services are visitor activities, not work. The decisive question is whether the activity enters the Canadian labour market, meaning hands-on productive work that a Canadian would otherwise do.",
			"The primary source of remuneration and the principal place of business must remain outside Canada. A support letter that frames the visit's activities precisely is usually the difference between a smooth entry and a secondary examination.",
		},
		Eligibility: []string{
			"International business activity without direct entry into the labour market",
			"Primary employer and remuneration outside Canada",
			"Ties supporting departure at the end of the visit",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Activity assessment", Description: "Confirm each planned activity falls within business-visitor scope."},
			{Number: 2, Title: "Support letter", Description: "Prepare employer and host letters describing the visit's purpose and duration."},
			{Number: 3, Title: "Entry", Description: "Visa-required nationals apply for a visitor visa first; visa-exempt nationals present the package at the border."},
		},
		ProcessingTime: "No permit processing; entry is decided at the border. Visa-required nationals add visitor-visa timelines.",
		Fees:           "None beyond any visitor visa fee.",
		FAQs: []FAQ{
			{Question: "Can a business visitor install equipment?", Answer: "Only when installation is after-sales service under a contract of sale and performed by specialized personnel. General labour requires a work permit."},
		},
	},
}
