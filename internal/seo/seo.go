package seo

const defaultOGImage = "/static/images/og-default.png"

// Meta is the tag set consumed by the renderer's head injection.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Canonical   string `json:"canonical,omitempty"`
	OGImage     string `json:"ogImage"`
}

// routeMeta covers the static pages. Catalog pages carry their own SEO
// fields and are converted with FromPage.
var routeMeta = map[string]Meta{
	"home": {
		Title:       "Northview Law | Immigration, Real Estate, Wills & Criminal Defence",
		Description: "Northview Law serves clients across Ontario in immigration, real estate, wills and powers of attorney, and criminal defence. Book a consultation today.",
		Keywords:    "law firm, immigration lawyer, real estate lawyer, wills, criminal defence",
	},
	"about": {
		Title:       "About Our Firm | Northview Law",
		Description: "Meet the team behind Northview Law and the principles that guide how we take on every file.",
		Keywords:    "about Northview Law, legal team, law firm Ontario",
	},
	"contact": {
		Title:       "Contact Us | Northview Law",
		Description: "Reach Northview Law by phone, email, or our contact form. We respond to every inquiry within one business day.",
		Keywords:    "contact lawyer, legal consultation, law firm contact",
	},
	"book-appointment": {
		Title:       "Book an Appointment | Northview Law",
		Description: "Request a consultation with a Northview Law lawyer in the practice area that fits your matter.",
		Keywords:    "book lawyer appointment, legal consultation booking",
	},
	"blog": {
		Title:       "Legal Insights Blog | Northview Law",
		Description: "Plain-language articles on immigration, real estate, estate planning, and criminal law from the lawyers at Northview Law.",
		Keywords:    "legal blog, immigration news, estate planning articles",
	},
	"practice-areas": {
		Title:       "Practice Areas | Northview Law",
		Description: "Four focused practice areas: immigration, real estate, wills and powers of attorney, and criminal defence.",
		Keywords:    "practice areas, legal services",
	},
	"immigration-law": {
		Title:       "Immigration Law | Northview Law",
		Description: "Work permits, study permits, visitor visas, and business immigration, handled end to end by our immigration group.",
		Keywords:    "immigration law, work permits, study permits, visitor visas",
	},
	"real-estate-law": {
		Title:       "Real Estate Law | Northview Law",
		Description: "Purchases, sales, and refinances with clear fixed fees and no closing-day surprises.",
		Keywords:    "real estate lawyer, closing, title, refinance",
	},
	"wills-power-of-attorney": {
		Title:       "Wills & Power of Attorney | Northview Law",
		Description: "Wills, continuing powers of attorney for property, and powers of attorney for personal care, drafted to hold up when they matter.",
		Keywords:    "wills, power of attorney, estate planning",
	},
	"criminal-law": {
		Title:       "Criminal Law | Northview Law",
		Description: "Criminal defence from first appearance to trial. Early advice protects options that disappear quickly.",
		Keywords:    "criminal lawyer, criminal defence, bail",
	},
	"not-found": {
		Title:       "Page Not Found | Northview Law",
		Description: "The page you are looking for does not exist.",
		Keywords:    "",
	},
}

// ForRoute returns the static-page metadata for a route name.
func ForRoute(name string) (Meta, bool) {
	m, ok := routeMeta[name]
	if !ok {
		return Meta{}, false
	}
	if m.OGImage == "" {
		m.OGImage = defaultOGImage
	}
	return m, true
}

// FromPage adapts a catalog page's SEO fields into renderer metadata.
func FromPage(title, description, keywords string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		OGImage:     defaultOGImage,
	}
}
