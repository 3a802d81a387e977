package tools

import (
	"context"

	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// ===================================
// Search Product Tool
// ===================================

const (
	defaultMaxResults = 10
	maxMaxResults     = 20
)

type SearchProductInput struct {
	Query      string `json:"query,omitempty"`
	Category   string `json:"category,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchProductOutput struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

func createSearchProductTool(cat *catalog.Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "search_product",
			Desc: "Search the seed catalog by name. Returns product id, name, price, category and description. Use this whenever the shopper mentions a plant, seed or category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type: schema.String,
					Desc: "Case-insensitive part of the product name, e.g. tomato, basil, mint. Empty lists everything.",
				},
				"category": {
					Type: schema.String,
					Desc: "Optional category filter",
					Enum: []string{"All", "Vegetables", "Herbs", "Flowers"},
				},
				"max_results": {
					Type: schema.Integer,
					Desc: "Maximum number of products to return (default: 10, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			limit := in.MaxResults
			if limit <= 0 {
				limit = defaultMaxResults
			}
			if limit > maxMaxResults {
				limit = maxMaxResults
			}

			matched := cat.Search(in.Query, model.Category(in.Category))
			if len(matched) > limit {
				matched = matched[:limit]
			}
			return &SearchProductOutput{Products: matched, Total: len(matched)}, nil
		},
	)
}
