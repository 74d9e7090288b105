package catalog

// Family names one of the four slug-addressed page collections.
type Family string

const (
	FamilyWorkPermits Family = "work-permits"
	FamilyStudy       Family = "study"
	FamilyVisit       Family = "visit"
	FamilyBusiness    Family = "business"
)

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

type ProcessStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContentPage is an immutable content record. Pages are defined in the
// literal slices in this package and never mutated after Load.
type ContentPage struct {
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	SEO            SEO           `json:"seo"`
	Hero           string        `json:"hero"`
	Overview       []string      `json:"overview"`
	Eligibility    []string      `json:"eligibility"`
	ProcessSteps   []ProcessStep `json:"processSteps"`
	ProcessingTime string        `json:"processingTime"`
	Fees           string        `json:"fees"`
	FAQs           []FAQ         `json:"faqs"`
}

type Catalog struct {
	families map[Family][]ContentPage
	index    map[Family]map[string]ContentPage
}

func Families() []Family {
	return []Family{FamilyWorkPermits, FamilyStudy, FamilyVisit, FamilyBusiness}
}

// Load builds the catalog from the package literals and indexes each family
// by slug. Slug uniqueness within a family is a data-definition invariant;
// if it were ever violated the first entry wins.
func Load() *Catalog {
	c := &Catalog{
		families: map[Family][]ContentPage{
			FamilyWorkPermits: workPermitPages,
			FamilyStudy:       studyPages,
			FamilyVisit:       visitPages,
			FamilyBusiness:    businessPages,
		},
		index: make(map[Family]map[string]ContentPage),
	}

	for family, pages := range c.families {
		idx := make(map[string]ContentPage, len(pages))
		for _, page := range pages {
			if _, exists := idx[page.Slug]; exists {
				continue
			}
			idx[page.Slug] = page
		}
		c.index[family] = idx
	}
	return c
}

// Pages returns the ordered collection for a family; ok is false for an
// unknown family.
func (c *Catalog) Pages(family Family) ([]ContentPage, bool) {
	pages, ok := c.families[family]
	return pages, ok
}

func (c *Catalog) Lookup(family Family, slug string) (ContentPage, bool) {
	idx, ok := c.index[family]
	if !ok {
		return ContentPage{}, false
	}
	page, ok := idx[slug]
	return page, ok
}
