package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one entry in a cart. Name, Price and Image are copied from
// the product when the line is first added.
type CartLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Total is price × quantity for the line.
func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is an immutable copy of a cart at one point in time.
type CartSnapshot struct {
	Lines      []CartLine      `json:"lines"`
	IsOpen     bool            `json:"is_open"`
	LineCount  int             `json:"line_count"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartEventKind string

const (
	EventItemAdded         CartEventKind = "item_added"
	EventItemRemoved       CartEventKind = "item_removed"
	EventQuantityUpdated   CartEventKind = "quantity_updated"
	EventCartCleared       CartEventKind = "cart_cleared"
	EventDrawerToggled     CartEventKind = "drawer_toggled"
	EventCheckoutConfirmed CartEventKind = "checkout_confirmed"
)

// CartChange is what a cart store reports to its subscribers after a mutation.
type CartChange struct {
	Kind      CartEventKind `json:"kind"`
	ProductID int           `json:"product_id,omitempty"`
	Cart      CartSnapshot  `json:"cart"`
}

// CartEvent is a CartChange tagged with the session that produced it.
type CartEvent struct {
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
	OrderID   string    `json:"order_id,omitempty"`
	CartChange
}
