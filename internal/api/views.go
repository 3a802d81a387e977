package api

import (
	"time"

	"github.com/GreenNest-storefront/server/internal/shop/checkout"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/shopspring/decimal"
)

// Money is always rendered with two decimals, the way the storefront shows it.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type productView struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Price       string         `json:"price"`
	Category    model.Category `json:"category"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
}

func newProductView(p model.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       money(p.Price),
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
	}
}

type lineView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartView struct {
	Lines      []lineView `json:"lines"`
	IsOpen     bool       `json:"is_open"`
	LineCount  int        `json:"line_count"`
	TotalItems int        `json:"total_items"`
	TotalPrice string     `json:"total_price"`
}

func newLineViews(lines []model.CartLine) []lineView {
	out := make([]lineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineView{
			ID:        l.ID,
			Name:      l.Name,
			Price:     money(l.Price),
			Image:     l.Image,
			Quantity:  l.Quantity,
			LineTotal: money(l.Total()),
		})
	}
	return out
}

func newCartView(s model.CartSnapshot) cartView {
	return cartView{
		Lines:      newLineViews(s.Lines),
		IsOpen:     s.IsOpen,
		LineCount:  s.LineCount,
		TotalItems: s.TotalItems,
		TotalPrice: money(s.TotalPrice),
	}
}

type summaryView struct {
	Lines     []lineView `json:"lines"`
	Subtotal  string     `json:"subtotal"`
	Shipping  string     `json:"shipping"`
	Tax       string     `json:"tax"`
	Total     string     `json:"total"`
	PayAmount string     `json:"pay_amount"`
}

type receiptView struct {
	OrderID     string                   `json:"order_id"`
	Charged     string                   `json:"charged"`
	Lines       []lineView               `json:"lines"`
	Shipping    checkout.ShippingDetails `json:"shipping"`
	ConfirmedAt string                   `json:"confirmed_at"`
}

type checkoutView struct {
	checkout.State
	Summary summaryView  `json:"summary"`
	Receipt *receiptView `json:"receipt,omitempty"`
}

func newCheckoutView(f *checkout.Flow) checkoutView {
	sum := f.Summary()
	lines := make([]lineView, 0, len(sum.Lines))
	for _, l := range sum.Lines {
		lines = append(lines, lineView{
			ID:        l.ID,
			Name:      l.Name,
			Price:     money(l.Price),
			Image:     l.Image,
			Quantity:  l.Quantity,
			LineTotal: money(l.LineTotal),
		})
	}

	v := checkoutView{
		State: f.State(),
		Summary: summaryView{
			Lines:     lines,
			Subtotal:  money(sum.Subtotal),
			Shipping:  money(sum.Shipping),
			Tax:       money(sum.Tax),
			Total:     money(sum.Total),
			PayAmount: money(sum.PayAmount),
		},
	}
	if r, ok := f.Receipt(); ok {
		v.Receipt = &receiptView{
			OrderID:     r.OrderID,
			Charged:     money(r.Charged),
			Lines:       newLineViews(r.Lines),
			Shipping:    r.Shipping,
			ConfirmedAt: r.ConfirmedAt.UTC().Format(time.RFC3339),
		}
	}
	return v
}
