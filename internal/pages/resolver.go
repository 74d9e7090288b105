package pages

import (
	"strings"

	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/seo"
)

// HubPath is where catalog families redirect and where the not-found view
// points visitors back to.
const HubPath = "/immigration-law"

type Kind string

const (
	KindStatic   Kind = "static"
	KindContent  Kind = "content"
	KindRedirect Kind = "redirect"
	KindNotFound Kind = "not-found"
)

// Resolution is the renderer's contract: which view to mount and the data
// it needs. NotFound resolutions always carry the hub link.
type Resolution struct {
	Kind       Kind                 `json:"kind"`
	Path       string               `json:"path"`
	Route      string               `json:"route,omitempty"`
	RedirectTo string               `json:"redirectTo,omitempty"`
	Family     catalog.Family       `json:"family,omitempty"`
	Page       *catalog.ContentPage `json:"page,omitempty"`
	Meta       seo.Meta             `json:"meta"`
	HubLink    string               `json:"hubLink,omitempty"`
}

var staticRoutes = map[string]string{
	"/":                        "home",
	"/about":                   "about",
	"/contact":                 "contact",
	"/book-appointment":        "book-appointment",
	"/blog":                    "blog",
	"/practice-areas":          "practice-areas",
	"/immigration-law":         "immigration-law",
	"/real-estate-law":         "real-estate-law",
	"/wills-power-of-attorney": "wills-power-of-attorney",
	"/criminal-law":            "criminal-law",
}

// legacy bare family paths redirect to the immigration hub.
var familyPrefixes = map[string]catalog.Family{
	"/work-permits": catalog.FamilyWorkPermits,
	"/study":        catalog.FamilyStudy,
	"/visit":        catalog.FamilyVisit,
	"/business":     catalog.FamilyBusiness,
}

type Resolver struct {
	cat     *catalog.Catalog
	baseURL string
}

func NewResolver(cat *catalog.Catalog, baseURL string) *Resolver {
	return &Resolver{
		cat:     cat,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *Resolver) Resolve(path string) Resolution {
	path = normalize(path)

	if route, ok := staticRoutes[path]; ok {
		meta, _ := seo.ForRoute(route)
		meta.Canonical = r.canonical(path)
		return Resolution{Kind: KindStatic, Path: path, Route: route, Meta: meta}
	}

	for prefix, family := range familyPrefixes {
		if path == prefix {
			return Resolution{Kind: KindRedirect, Path: path, RedirectTo: HubPath}
		}
		if slug, ok := strings.CutPrefix(path, prefix+"/"); ok {
			if strings.Contains(slug, "/") {
				break
			}
			page, found := r.cat.Lookup(family, slug)
			if !found {
				return r.notFound(path)
			}
			meta := seo.FromPage(page.SEO.Title, page.SEO.Description, page.SEO.Keywords)
			meta.Canonical = r.canonical(path)
			return Resolution{
				Kind:   KindContent,
				Path:   path,
				Family: family,
				Page:   &page,
				Meta:   meta,
			}
		}
	}

	return r.notFound(path)
}

func (r *Resolver) notFound(path string) Resolution {
	meta, _ := seo.ForRoute("not-found")
	return Resolution{Kind: KindNotFound, Path: path, Meta: meta, HubLink: HubPath}
}

func (r *Resolver) canonical(path string) string {
	if r.baseURL == "" {
		return ""
	}
	if path == "/" {
		return r.baseURL + "/"
	}
	return r.baseURL + path
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
