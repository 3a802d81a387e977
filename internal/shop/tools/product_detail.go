package tools

import (
	"context"

	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type GetProductDetailsInput struct {
	ProductID int `json:"product_id"`
}

func createGetProductDetailsTool(cat *catalog.Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "get_product_details",
			Desc: "Get the full catalog entry for one product, including description and image. Use the id returned by search_product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     schema.Integer,
					Desc:     "Product id from search_product results (e.g. 1, 2).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*model.Product, error) {
			p, err := cat.Lookup(in.ProductID)
			if err != nil {
				return nil, err
			}
			return &p, nil
		},
	)
}
