package catalog

import (
	"strings"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
)

// Catalog is a read-only product list. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	products []model.Product
	byID     map[int]int
}

// New indexes products by id. Later duplicates of an id are ignored.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Default returns the seed shop catalog.
func Default() *Catalog {
	return New(SeedProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given id.
func (c *Catalog) Lookup(id int) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, errx.InvalidProductID(id)
	}
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, errx.ProductNotFound(id)
	}
	return c.products[i], nil
}

// Search matches query as a case-insensitive substring of the product name
// and keeps only products in category. An empty query matches every name;
// an empty category or CategoryAll matches every category.
func (c *Catalog) Search(query string, category model.Category) []model.Product {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	matched := []model.Product{}
	for _, p := range c.products {
		if !strings.Contains(strings.ToLower(p.Name), queryLower) {
			continue
		}
		if category != "" && category != model.CategoryAll && !strings.EqualFold(string(p.Category), string(category)) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Categories lists the filter choices shown on the shop page, "All" first.
func (c *Catalog) Categories() []model.Category {
	return []model.Category{model.CategoryAll, model.CategoryVegetables, model.CategoryHerbs, model.CategoryFlowers}
}
