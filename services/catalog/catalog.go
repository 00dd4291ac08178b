package catalog

import (
	"barbershop/models"

	"github.com/shopspring/decimal"
)

// Catalog is the read-only set of bookable services and shop locations.
type Catalog interface {
	Services() []models.Service
	Service(id string) (models.Service, bool)
	Locations() []models.Location
	About(lang models.Language) models.AboutCopy
}

// StaticCatalog serves the compiled-in catalog in display order.
type StaticCatalog struct {
	services  []models.Service
	byID      map[string]int
	locations []models.Location
}

// NewStaticCatalog builds the catalog shipped with the shop.
func NewStaticCatalog() *StaticCatalog {
	return NewCatalog(defaultServices, defaultLocations)
}

// NewCatalog builds a catalog from explicit data. Later duplicates of an id are ignored.
func NewCatalog(services []models.Service, locations []models.Location) *StaticCatalog {
	c := &StaticCatalog{
		byID:      make(map[string]int, len(services)),
		locations: locations,
	}
	for _, s := range services {
		if _, dup := c.byID[s.ID]; dup {
			continue
		}
		c.byID[s.ID] = len(c.services)
		c.services = append(c.services, s)
	}
	return c
}

// Services returns a copy of the catalog in display order.
func (c *StaticCatalog) Services() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *StaticCatalog) Service(id string) (models.Service, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Service{}, false
	}
	return c.services[i], true
}

func (c *StaticCatalog) Locations() []models.Location {
	out := make([]models.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

func (c *StaticCatalog) About(lang models.Language) models.AboutCopy {
	if lang == models.LanguageEN {
		return aboutEN
	}
	return aboutES
}

// LocalizedServices renders every service in lang.
func LocalizedServices(c Catalog, lang models.Language) []models.ServiceView {
	services := c.Services()
	out := make([]models.ServiceView, 0, len(services))
	for _, s := range services {
		out = append(out, s.Localize(lang))
	}
	return out
}

// LocationsPage renders the locations and the about copy in lang.
func LocationsPage(c Catalog, lang models.Language) models.LocationsPage {
	locations := c.Locations()
	page := models.LocationsPage{
		Locations: make([]models.LocationView, 0, len(locations)),
		About:     c.About(lang),
	}
	for _, l := range locations {
		page.Locations = append(page.Locations, l.Localize(lang))
	}
	return page
}

func euros(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
