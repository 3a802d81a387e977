package checkout

import (
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/shopspring/decimal"
)

var (
	// ShippingFee is the flat shipping charge for a non-empty order.
	ShippingFee = decimal.RequireFromString("5.99")
	// Tax is always zero but is still reported as its own line.
	Tax = decimal.Zero
)

type SummaryLine struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Summary is the order-summary panel for one cart snapshot.
type Summary struct {
	Lines    []SummaryLine   `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	// PayAmount is what the payment action charges: Subtotal + ShippingFee
	// whether or not the cart is empty.
	PayAmount decimal.Decimal `json:"pay_amount"`
}

// Summarize prices a cart snapshot. Shipping applies only when there is
// at least one line.
func Summarize(cart model.CartSnapshot) Summary {
	lines := make([]SummaryLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, SummaryLine{
			ID:        l.ID,
			Name:      l.Name,
			Image:     l.Image,
			Price:     l.Price,
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
		})
	}

	subtotal := cart.TotalPrice
	shipping := decimal.Zero
	if len(cart.Lines) > 0 {
		shipping = ShippingFee
	}
	return Summary{
		Lines:     lines,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       Tax,
		Total:     subtotal.Add(shipping).Add(Tax),
		PayAmount: ChargeAmount(subtotal),
	}
}

// ChargeAmount is the amount settled by the payment action.
func ChargeAmount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(ShippingFee)
}
