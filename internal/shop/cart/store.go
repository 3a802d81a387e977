package cart

import (
	"sync"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/shopspring/decimal"
)

// Store is the shared cart for one shopper. Every view holds the same
// *Store and goes through its methods; lines are never handed out by
// reference.
//
// Mutations are serialised: each one applies its change and delivers the
// resulting CartChange to every subscriber before the next mutation starts.
// Subscribers may read the store but must not mutate it.
type Store struct {
	// order is held across apply + notify so subscribers see changes in
	// the order they were made.
	order sync.Mutex
	mu    sync.RWMutex
	lines []model.CartLine
	open  bool

	nextSub     int
	subscribers map[int]func(model.CartChange)
	subOrder    []int
}

func New() *Store {
	return &Store{subscribers: map[int]func(model.CartChange){}}
}

// AddToCart increments the line for p.ID or appends a new line with
// quantity 1, copying name, price and image from p.
func (s *Store) AddToCart(p model.Product) error {
	if p.ID <= 0 {
		return errx.InvalidProductID(p.ID)
	}
	s.mutate(model.EventItemAdded, p.ID, func() bool {
		if i := s.indexOf(p.ID); i >= 0 {
			s.lines[i].Quantity++
			return true
		}
		s.lines = append(s.lines, model.CartLine{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: 1,
		})
		return true
	})
	return nil
}

// RemoveFromCart deletes the line for id. Removing an absent line is a no-op.
func (s *Store) RemoveFromCart(id int) error {
	if id <= 0 {
		return errx.InvalidProductID(id)
	}
	s.mutate(model.EventItemRemoved, id, func() bool {
		return s.removeAt(s.indexOf(id))
	})
	return nil
}

// UpdateQuantity adds delta to the line for id. A result of zero or less
// removes the line; an absent line is left alone.
func (s *Store) UpdateQuantity(id, delta int) error {
	if id <= 0 {
		return errx.InvalidProductID(id)
	}
	s.mutate(model.EventQuantityUpdated, id, func() bool {
		i := s.indexOf(id)
		if i < 0 || delta == 0 {
			return false
		}
		if s.lines[i].Quantity+delta <= 0 {
			return s.removeAt(i)
		}
		s.lines[i].Quantity += delta
		return true
	})
	return nil
}

// ClearCart removes every line. The drawer flag is untouched.
func (s *Store) ClearCart() {
	s.mutate(model.EventCartCleared, 0, func() bool {
		s.lines = nil
		return true
	})
}

// SetCartOpen sets the drawer visibility flag. It never touches lines.
func (s *Store) SetCartOpen(open bool) {
	s.mutate(model.EventDrawerToggled, 0, func() bool {
		if s.open == open {
			return false
		}
		s.open = open
		return true
	})
}

func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []model.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLines()
}

// Line returns the line for id, if present.
func (s *Store) Line(id int) (model.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.lines[i], true
	}
	return model.CartLine{}, false
}

// TotalItems is the sum of quantities, computed on every call.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalItems(s.lines)
}

// TotalPrice is the sum of price × quantity, computed on every call.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPrice(s.lines)
}

func (s *Store) Snapshot() model.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive every change after it is applied.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(model.CartChange)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.subOrder = append(s.subOrder, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			for i, sub := range s.subOrder {
				if sub == id {
					s.subOrder = append(s.subOrder[:i], s.subOrder[i+1:]...)
					break
				}
			}
		})
	}
}

// mutate runs apply under the write lock and, if it reports a change,
// notifies subscribers with the resulting snapshot.
func (s *Store) mutate(kind model.CartEventKind, productID int, apply func() bool) {
	s.order.Lock()
	defer s.order.Unlock()

	s.mu.Lock()
	if !apply() {
		s.mu.Unlock()
		return
	}
	change := model.CartChange{Kind: kind, ProductID: productID, Cart: s.snapshotLocked()}
	subs := make([]func(model.CartChange), 0, len(s.subOrder))
	for _, id := range s.subOrder {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(change)
	}
}

func (s *Store) indexOf(id int) int {
	for i := range s.lines {
		if s.lines[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) bool {
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

func (s *Store) copyLines() []model.CartLine {
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) snapshotLocked() model.CartSnapshot {
	return model.CartSnapshot{
		Lines:      s.copyLines(),
		IsOpen:     s.open,
		LineCount:  len(s.lines),
		TotalItems: totalItems(s.lines),
		TotalPrice: totalPrice(s.lines),
	}
}

func totalItems(lines []model.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func totalPrice(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
