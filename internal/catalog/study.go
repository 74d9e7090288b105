package catalog

var studyPages = []ContentPage{
	{
		Slug:  "study-permit",
		Title: "Study Permits",
		SEO: SEO{
			Title:       "Study Permits | Northview Law",
			Description: "Study permit applications for international students: acceptance, financial proof, and the dual-intent balance.",
			Keywords:    "study permit, international students, designated learning institution",
		},
		Hero: "A study permit application is a financial and intent narrative. We make sure yours is coherent before a visa officer reads it.",
		Overview: []string{
			"A study permit authorizes full-time study at a designated learning institution. The application turns on three pillars: a genuine letter of acceptance, proof of funds for tuition and living costs, and a credible explanation of your study plan.",
			"Officers may refuse on 'purpose of visit' even when funds are sufficient. A study plan that connects your background to the program, and the program to your plans afterward, addresses the refusal ground before it is raised.",
		},
		Eligibility: []string{
			"Letter of acceptance from a designated learning institution",
			"Proof of funds for first-year tuition plus living expenses",
			"Provincial attestation letter where required",
			"Admissibility, including medical exams where applicable",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Admission", Description: "Secure the letter of acceptance and any provincial attestation your stream requires."},
			{Number: 2, Title: "Financial package", Description: "Assemble funds evidence that is liquid, sourced, and sufficient."},
			{Number: 3, Title: "Study plan", Description: "Draft the personal statement that ties the program to your goals."},
			{Number: 4, Title: "Submission", Description: "File online, complete biometrics, and respond to any procedural fairness letter promptly."},
		},
		ProcessingTime: "Varies sharply by country of application; commonly 4 to 12 weeks.",
		Fees:           "Study permit fee of $150.",
		FAQs: []FAQ{
			{Question: "Can my spouse work while I study?", Answer: "Spouses of students in eligible graduate and professional programs can apply for an open work permit."},
			{Question: "Can I work while studying?", Answer: "Most permit holders may work limited off-campus hours during sessions and full-time during scheduled breaks."},
		},
	},
	{
		Slug:  "study-permit-extension",
		Title: "Study Permit Extensions",
		SEO: SEO{
			Title:       "Study Permit Extensions | Northview Law",
			Description: "Extend your study permit before it expires and protect maintained status while the extension is decided.",
			Keywords:    "study permit extension, maintained status, restoration",
		},
		Hero: "File before expiry and your status continues automatically. Miss the date and restoration becomes the only path back.",
		Overview: []string{
			"Programs run long for many reasons: course changes, co-op terms, a deferred semester. An extension filed before the current permit expires places you on maintained status, letting you keep studying under the same conditions while the application is processed.",
			"If the permit has already expired, a restoration application within 90 days can recover status, but studies must stop until it is approved.",
		},
		Eligibility: []string{
			"Continued enrollment at a designated learning institution",
			"Application filed before the current permit expires",
			"Updated proof of funds",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Enrollment letter", Description: "Obtain a current letter confirming your program and expected completion date."},
			{Number: 2, Title: "Extension application", Description: "File online before expiry with updated financial evidence."},
			{Number: 3, Title: "Status tracking", Description: "Keep proof of the filing date; it is what maintained status rests on."},
		},
		ProcessingTime: "In-Canada extensions commonly take 1 to 3 months.",
		Fees:           "Study permit fee of $150; restoration adds $229 when applicable.",
		FAQs: []FAQ{
			{Question: "Can I keep studying while the extension is pending?", Answer: "Yes, if you applied before expiry. Maintained status continues your existing conditions until a decision."},
		},
	},
	{
		Slug:  "work-while-studying",
		Title: "Working While Studying",
		SEO: SEO{
			Title:       "Working While Studying | Northview Law",
			Description: "Off-campus and on-campus work rules for study permit holders, and the consequences of exceeding them.",
			Keywords:    "work while studying, off-campus work, student work hours",
		},
		Hero: "Student work rights are generous but conditional. Exceeding them is a compliance breach that follows you into every future application.",
		Overview: []string{
			"Most full-time students at designated learning institutions may work off campus without a separate work permit, up to the weekly cap during academic sessions and full-time during scheduled breaks. On-campus work is uncapped for eligible students.",
			"The conditions are printed on the study permit and enforced at every later application. Unauthorized work is one of the few student-side breaches that can produce a removal-order hearing, and it must be disclosed on future applications.",
		},
		Eligibility: []string{
			"Valid study permit with the work condition printed on it",
			"Full-time enrollment in an eligible program of sufficient length",
			"A Social Insurance Number before the first shift",
		},
		ProcessSteps: []ProcessStep{
			{Number: 1, Title: "Condition check", Description: "Read the remarks on your permit; not every program carries work rights."},
			{Number: 2, Title: "SIN application", Description: "Obtain a Social Insurance Number from Service Canada."},
			{Number: 3, Title: "Hour tracking", Description: "Track weekly hours during sessions; the cap is assessed per week, not on average."},
		},
		ProcessingTime: "No application is required when the permit already carries work conditions.",
		Fees:           "None.",
		FAQs: []FAQ{
			{Question: "Do scheduled breaks allow full-time work?", Answer: "Yes, provided you were a full-time student before the break and will be after it."},
		},
	},
}
