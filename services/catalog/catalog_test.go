package catalog

import (
	"testing"

	"barbershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog_LookupAndOrder(t *testing.T) {
	c := NewStaticCatalog()

	services := c.Services()
	require.NotEmpty(t, services)
	assert.Equal(t, "haircut", services[0].ID)

	dye, ok := c.Service("dye")
	require.True(t, ok)
	assert.Equal(t, "45", dye.Price.String())

	_, ok = c.Service("nope")
	assert.False(t, ok)
}

func TestStaticCatalog_IDsUniqueAndPricesNonNegative(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range NewStaticCatalog().Services() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.False(t, s.Price.IsNegative(), "negative price on %s", s.ID)
		assert.NotEmpty(t, s.Name.ES)
		assert.NotEmpty(t, s.Name.EN)
	}
}

func TestNewCatalog_IgnoresDuplicates(t *testing.T) {
	c := NewCatalog([]models.Service{
		{ID: "a", Price: euros(1)},
		{ID: "a", Price: euros(2)},
	}, nil)
	require.Len(t, c.Services(), 1)
	s, _ := c.Service("a")
	assert.Equal(t, "1", s.Price.String())
}

func TestLocalizedServices(t *testing.T) {
	c := NewStaticCatalog()

	es := LocalizedServices(c, models.LanguageES)
	en := LocalizedServices(c, models.LanguageEN)
	require.Equal(t, len(es), len(en))
	assert.Equal(t, "Corte y peinado", es[0].Name)
	assert.Equal(t, "Haircut and styling", en[0].Name)
	assert.Equal(t, "25 €", en[0].PriceLabel)

	for _, v := range en {
		if v.QuoteOnly {
			assert.Equal(t, "Quote", v.PriceLabel)
		}
	}
}

func TestLocationsPage(t *testing.T) {
	page := LocationsPage(NewStaticCatalog(), models.LanguageEN)
	require.Len(t, page.Locations, 3)
	assert.Equal(t, "Triana Location", page.Locations[0].Name)
	assert.Equal(t, "About me", page.About.Title)

	page = LocationsPage(NewStaticCatalog(), models.LanguageES)
	assert.Equal(t, "Sede Triana", page.Locations[0].Name)
	assert.Equal(t, "Sobre mí", page.About.Title)
}
