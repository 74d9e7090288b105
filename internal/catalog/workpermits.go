package catalog

var workPermitPages = []ContentPage{
	{
		Slug:  "lmia",
		Title: "LMIA-Based Work Permits",
		SEO: SEO{
			Title:       "LMIA Work Permits | Northview Law",
			Description: "Guidance for employers and workers through the Labour Market Impact Assessment process and the work permit application that follows it.",
			Keywords:    "LMIA, labour market impact assessment, work permit, foreign worker",
		},
		Hero: "A positive LMIA is the foundation of most employer-specific work permits. We manage the assessment and the permit as one file.",
		Overview: []string{
			"A Labour Market Impact Assessment confirms that hiring a foreign national will have a neutral or positive effect on the Canadian labour market. Employers obtain the assessment; workers apply for the permit it supports.",
			"The high-wage and low-wage streams carry different advertising requirements, caps, and transition-plan obligations. Choosing the wrong stream is the most common cause of returned applications.",
		},
		Eligibility: []string{
			"A genuine job offer from a Canadian employer",
			"Employer compliance with the stream's advertising and recruitment requirements",
			"Wages at or above the prevailing rate for the occupation and region",
			"Worker admissibility to Canada",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Stream assessment", Description: "Confirm the correct LMIA stream and the recruitment obligations that apply to the position."},
			{Number: 2, Title: "Recruitment and advertising", Description: "Run the mandatory advertising period and document every recruitment effort."},
			{Number: 3, Title: "LMIA application", Description: "File the employer application with wage, business-legitimacy, and transition-plan evidence."},
			{Number: 4, Title: "Work permit application", Description: "Once a positive assessment issues, the worker applies with the LMIA number and the offer of employment."},
		},
		ProcessingTime: "LMIA processing varies by stream, commonly 2 to 4 months; the subsequent work permit follows country-specific timelines.",
		Fees:           "Government LMIA fee of $1,000 per position, payable by the employer; work permit fee of $155.",
		FAQs: []FAQ{
			{Question: "Can the worker start before the permit issues?", Answer: "No. Work cannot begin until the permit is issued, unless the worker already holds separate authorization."},
			{Question: "Does a positive LMIA guarantee a permit?", Answer: "No. The permit application is assessed separately, including the worker's admissibility and ability to perform the job."},
		},
	},
	{
		Slug:  "open-work-permit",
		Title: "Open Work Permits",
		SEO: SEO{
			Title:       "Open Work Permits | Northview Law",
			Description: "Open work permits let you work for almost any employer in Canada. Learn which categories qualify and how to apply.",
			Keywords:    "open work permit, spousal work permit, bridging permit",
		},
		Hero: "An open permit is not tied to one employer. Eligibility depends on your category, not a job offer.",
		Overview: []string{
			"Unlike employer-specific permits, an open work permit does not require an LMIA or a confirmed offer. It is available only to defined categories, including spouses of certain workers and students, recent graduates, and applicants awaiting permanent residence decisions.",
			"Because eligibility is category-driven, the core of the application is proving you belong to the category, with the right status documents for the person you derive eligibility from where applicable.",
		},
		Eligibility: []string{
			"Membership in an eligible category (spousal, bridging, graduate, vulnerable worker, among others)",
			"Valid temporary status in Canada, or eligibility to apply from abroad",
			"Admissibility to Canada",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Category confirmation", Description: "Identify the category you qualify under and the evidence it requires."},
			{Number: 2, Title: "Document preparation", Description: "Gather status documents, relationship evidence, or graduation records as the category demands."},
			{Number: 3, Title: "Application and biometrics", Description: "Submit the application and complete biometrics when instructed."},
		},
		ProcessingTime: "Most categories process in 1 to 4 months; in-Canada applicants generally keep working rights while a renewal is pending.",
		Fees:           "Work permit fee of $155 plus the $100 open work permit holder fee.",
		FAQs: []FAQ{
			{Question: "Can I change employers on an open permit?", Answer: "Yes, subject to any occupation or location conditions printed on the permit."},
		},
	},
	{
		Slug:  "post-graduation-work-permit",
		Title: "Post-Graduation Work Permits",
		SEO: SEO{
			Title:       "Post-Graduation Work Permits | Northview Law",
			Description: "Turn a Canadian credential into Canadian work experience. PGWP eligibility, timing rules, and common refusal causes.",
			Keywords:    "PGWP, post-graduation work permit, international students",
		},
		Hero: "The PGWP is a one-time opportunity with strict timing rules. Filing errors cannot be fixed with a second application.",
		Overview: []string{
			"Graduates of eligible designated learning institutions can receive an open work permit lasting up to three years, depending on program length. The permit can be issued only once.",
			"The application window runs from the date your final marks or completion letter issues. Letting status lapse in that window, or relying on an ineligible program, accounts for most refusals we are retained to fix.",
		},
		Eligibility: []string{
			"Graduation from an eligible program at a designated learning institution",
			"Full-time enrollment during the program, limited exceptions aside",
			"Application within the window after program completion",
			"Valid temporary status, or restoration eligibility",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Eligibility review", Description: "Confirm the program and institution qualify and compute the permit length you can expect."},
			{Number: 2, Title: "Completion evidence", Description: "Obtain the completion letter and final transcript that anchor the application window."},
			{Number: 3, Title: "Application", Description: "File before the window closes; work full-time while a decision is pending if you applied with valid status."},
		},
		ProcessingTime: "Typically 2 to 5 months; interim work authorization usually applies while the application is in process.",
		Fees:           "Work permit fee of $155 plus the $100 open work permit holder fee.",
		FAQs: []FAQ{
			{Question: "Can a PGWP be extended?", Answer: "Only in narrow passport-driven cases. Plan the transition to permanent residence well before the permit expires."},
		},
	},
}
