package menu

import "nvlaw-backend/internal/catalog"

// DefaultConfigs builds the five site menus. The four immigration menus take
// their items from the content catalog so navigation and content can never
// drift apart; the practice-areas menu is a fixed table.
func DefaultConfigs(cat *catalog.Catalog) []Config {
	configs := []Config{
		familyConfig(cat, "work-permits", "Work Permits", catalog.FamilyWorkPermits),
		familyConfig(cat, "study", "Study", catalog.FamilyStudy),
		familyConfig(cat, "visit", "Visit", catalog.FamilyVisit),
		familyConfig(cat, "business", "Business", catalog.FamilyBusiness),
		{
			ID:    "practice-areas",
			Label: "Practice Areas",
			Items: []Item{
				{Label: "Immigration Law", Href: "/immigration-law"},
				{Label: "Real Estate Law", Href: "/real-estate-law"},
				{Label: "Wills & Power of Attorney", Href: "/wills-power-of-attorney"},
				{Label: "Criminal Law", Href: "/criminal-law"},
			},
		},
	}
	return configs
}

func familyConfig(cat *catalog.Catalog, id, label string, family catalog.Family) Config {
	pages, _ := cat.Pages(family)
	items := make([]Item, 0, len(pages))
	for _, page := range pages {
		items = append(items, Item{
			Label: page.Title,
			Href:  "/" + string(family) + "/" + page.Slug,
		})
	}
	return Config{ID: id, Label: label, Items: items}
}

// Bar is the set of independent menu instances for one rendered navigation
// (one Bar for desktop, one for mobile).
type Bar struct {
	menus map[string]*Menu
	order []string
}

// NewBar instantiates one Menu per config. The opts apply to every instance;
// per-menu state stays fully independent.
func NewBar(configs []Config, mode Mode, opts ...Option) *Bar {
	b := &Bar{menus: make(map[string]*Menu, len(configs))}
	for _, cfg := range configs {
		b.menus[cfg.ID] = New(cfg, mode, opts...)
		b.order = append(b.order, cfg.ID)
	}
	return b
}

func (b *Bar) Menu(id string) (*Menu, bool) {
	m, ok := b.menus[id]
	return m, ok
}

// Teardown retires every menu, canceling any pending close timers.
func (b *Bar) Teardown() {
	for _, id := range b.order {
		b.menus[id].Teardown()
	}
}
