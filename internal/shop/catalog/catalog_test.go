package catalog

import (
	"testing"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestLookup(t *testing.T) {
	c := Default()

	p, err := c.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "Wildflower Mix", p.Name)
	assert.Equal(t, "6.99", p.Price.StringFixed(2))

	_, err = c.Lookup(99)
	assert.ErrorIs(t, err, errx.ErrProductNotFound)

	_, err = c.Lookup(0)
	assert.ErrorIs(t, err, errx.ErrInvalidProductID)
	_, err = c.Lookup(-1)
	assert.ErrorIs(t, err, errx.ErrInvalidProductID)
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		query    string
		category model.Category
		want     []string
	}{
		{"everything", "", model.CategoryAll, names(SeedProducts)},
		{"empty category means all", "", "", names(SeedProducts)},
		{"name substring ignores case", "PEPPER", model.CategoryAll, []string{"Sweet Bell Pepper", "Peppermint"}},
		{"category filter", "", model.CategoryHerbs, []string{"Organic Basil", "Peppermint"}},
		{"query and category", "pepper", model.CategoryVegetables, []string{"Sweet Bell Pepper"}},
		{"description is not searched", "bees", model.CategoryAll, []string{}},
		{"no match", "cactus", model.CategoryAll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.Search(tt.query, tt.category)))
		})
	}
}

func TestNewSkipsDuplicateIDs(t *testing.T) {
	c := New([]model.Product{{ID: 1, Name: "first"}, {ID: 1, Name: "second"}})

	require.Len(t, c.All(), 1)
	p, err := c.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"

	p, err := c.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Heirloom Tomato", p.Name)
}

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]model.Category{model.CategoryAll, model.CategoryVegetables, model.CategoryHerbs, model.CategoryFlowers},
		Default().Categories())
}
