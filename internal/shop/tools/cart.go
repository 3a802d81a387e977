package tools

import (
	"context"

	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/checkout"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/GreenNest-storefront/server/internal/shop/session"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type AddToCartInput struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

type ViewCartInput struct {
	SessionID string `json:"session_id"`
}

// CartView is the cart as an assistant reports it: the drawer totals plus
// the checkout summary.
type CartView struct {
	Cart    model.CartSnapshot `json:"cart"`
	Summary checkout.Summary   `json:"summary"`
}

func newCartView(s *session.Session) *CartView {
	snap := s.Cart.Snapshot()
	return &CartView{Cart: snap, Summary: checkout.Summarize(snap)}
}

var sessionParam = &schema.ParameterInfo{
	Type:     schema.String,
	Desc:     "The shopper's session id.",
	Required: true,
}

func createAddToCartTool(cat *catalog.Catalog, sessions *session.Manager) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "add_to_cart",
			Desc: "Add one unit of a product to the shopper's cart. Adding a product already in the cart increases its quantity by one.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"session_id": sessionParam,
				"product_id": {
					Type:     schema.Integer,
					Desc:     "Product id from search_product results.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *AddToCartInput) (*CartView, error) {
			s, err := sessions.Get(in.SessionID)
			if err != nil {
				return nil, err
			}
			p, err := cat.Lookup(in.ProductID)
			if err != nil {
				return nil, err
			}
			if err := s.Cart.AddToCart(p); err != nil {
				return nil, err
			}
			return newCartView(s), nil
		},
	)
}

func createViewCartTool(sessions *session.Manager) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "view_cart",
			Desc: "Show the shopper's cart with item count, subtotal, shipping and total.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"session_id": sessionParam,
			}),
		},
		func(ctx context.Context, in *ViewCartInput) (*CartView, error) {
			s, err := sessions.Get(in.SessionID)
			if err != nil {
				return nil, err
			}
			return newCartView(s), nil
		},
	)
}
