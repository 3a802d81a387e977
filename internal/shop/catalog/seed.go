package catalog

import (
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/shopspring/decimal"
)

var SeedProducts = []model.Product{
	{
		ID:          1,
		Name:        "Heirloom Tomato",
		Price:       decimal.RequireFromString("4.99"),
		Category:    model.CategoryVegetables,
		Image:       "https://picsum.photos/seed/tomato/400/400",
		Description: "Rich, sweet flavor and high yield.",
	},
	{
		ID:          2,
		Name:        "Organic Basil",
		Price:       decimal.RequireFromString("3.50"),
		Category:    model.CategoryHerbs,
		Image:       "https://picsum.photos/seed/basil/400/400",
		Description: "Aromatic leaves perfect for pesto.",
	},
	{
		ID:          3,
		Name:        "Wildflower Mix",
		Price:       decimal.RequireFromString("6.99"),
		Category:    model.CategoryFlowers,
		Image:       "https://picsum.photos/seed/wildflower/400/400",
		Description: "Attracts bees and butterflies.",
	},
	{
		ID:          4,
		Name:        "Sweet Bell Pepper",
		Price:       decimal.RequireFromString("4.50"),
		Category:    model.CategoryVegetables,
		Image:       "https://picsum.photos/seed/pepper/400/400",
		Description: "Crunchy and colorful garden staple.",
	},
	{
		ID:          5,
		Name:        "Lavender",
		Price:       decimal.RequireFromString("5.99"),
		Category:    model.CategoryFlowers,
		Image:       "https://picsum.photos/seed/lavender/400/400",
		Description: "Calming scent and beautiful purple blooms.",
	},
	{
		ID:          6,
		Name:        "Peppermint",
		Price:       decimal.RequireFromString("3.99"),
		Category:    model.CategoryHerbs,
		Image:       "https://picsum.photos/seed/mint/400/400",
		Description: "Refreshing herb for teas and cooking.",
	},
	{
		ID:          7,
		Name:        "Sunflowers",
		Price:       decimal.RequireFromString("4.25"),
		Category:    model.CategoryFlowers,
		Image:       "https://picsum.photos/seed/sunflower/400/400",
		Description: "Towering giants that follow the sun.",
	},
	{
		ID:          8,
		Name:        "Baby Spinach",
		Price:       decimal.RequireFromString("3.75"),
		Category:    model.CategoryVegetables,
		Image:       "https://picsum.photos/seed/spinach/400/400",
		Description: "Nutrient-dense greens for salads.",
	},
}
