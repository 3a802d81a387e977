package model

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryAll        Category = "All"
	CategoryVegetables Category = "Vegetables"
	CategoryHerbs      Category = "Herbs"
	CategoryFlowers    Category = "Flowers"
)

// Product is a read-only catalog entry.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
