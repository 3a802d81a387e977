package cart

import (
	"math/rand"
	"sync"
	"testing"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price string) model.Product {
	return model.Product{
		ID:    id,
		Name:  "seed",
		Price: decimal.RequireFromString(price),
		Image: "img",
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCartScenario(t *testing.T) {
	s := New()

	require.NoError(t, s.AddToCart(product(1, "4.99")))
	require.NoError(t, s.AddToCart(product(3, "6.99")))
	assert.Equal(t, 2, s.TotalItems())
	assertMoney(t, "11.98", s.TotalPrice())

	require.NoError(t, s.UpdateQuantity(1, 1))
	line, ok := s.Line(1)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 3, s.TotalItems())
	assertMoney(t, "16.97", s.TotalPrice())

	require.NoError(t, s.RemoveFromCart(3))
	assert.Equal(t, 2, s.TotalItems())
	assertMoney(t, "9.98", s.TotalPrice())

	s.ClearCart()
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
	assert.Empty(t, s.Lines())
	assert.True(t, s.IsEmpty())
}

func TestAddSameProductRepeatedly(t *testing.T) {
	s := New()
	for i := 0; i < 7; i++ {
		require.NoError(t, s.AddToCart(product(5, "5.99")))
	}

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 7, s.TotalItems())
	assertMoney(t, "41.93", s.TotalPrice())
}

func TestAddSnapshotsProductAndKeepsOrder(t *testing.T) {
	s := New()
	tomato := model.Product{ID: 1, Name: "Heirloom Tomato", Price: decimal.RequireFromString("4.99"), Image: "tomato.png"}
	require.NoError(t, s.AddToCart(product(8, "3.75")))
	require.NoError(t, s.AddToCart(tomato))
	require.NoError(t, s.AddToCart(product(8, "3.75")))

	tomato.Name = "renamed"
	tomato.Price = decimal.RequireFromString("100")

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 8, lines[0].ID)
	assert.Equal(t, 1, lines[1].ID)
	assert.Equal(t, "Heirloom Tomato", lines[1].Name)
	assert.Equal(t, "tomato.png", lines[1].Image)
	assertMoney(t, "4.99", lines[1].Price)
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("decrement to zero removes line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(2, "3.50")))
		require.NoError(t, s.UpdateQuantity(2, -1))

		_, ok := s.Line(2)
		assert.False(t, ok)
		assert.Equal(t, 0, s.TotalItems())
	})

	t.Run("decrement past zero removes line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(2, "3.50")))
		require.NoError(t, s.AddToCart(product(2, "3.50")))
		require.NoError(t, s.UpdateQuantity(2, -5))

		assert.Empty(t, s.Lines())
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(2, "3.50")))
		require.NoError(t, s.UpdateQuantity(9, 3))

		assert.Equal(t, 1, s.TotalItems())
		_, ok := s.Line(9)
		assert.False(t, ok)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		s := New()
		assert.ErrorIs(t, s.UpdateQuantity(0, 1), errx.ErrInvalidProductID)
		assert.ErrorIs(t, s.RemoveFromCart(-2), errx.ErrInvalidProductID)
		assert.ErrorIs(t, s.AddToCart(product(-1, "1")), errx.ErrInvalidProductID)
		assert.Empty(t, s.Lines())
	})
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(1, "4.99")))
	require.NoError(t, s.RemoveFromCart(4))
	assert.Equal(t, 1, s.TotalItems())
}

func TestSetCartOpenLeavesLines(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(1, "4.99")))

	s.SetCartOpen(true)
	assert.True(t, s.IsOpen())
	assert.Equal(t, 1, s.TotalItems())

	s.ClearCart()
	assert.True(t, s.IsOpen(), "clearing lines keeps the drawer state")

	s.SetCartOpen(false)
	assert.False(t, s.IsOpen())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(1, "4.99")))
	snap := s.Snapshot()
	snap.Lines[0].Quantity = 50

	line, _ := s.Line(1)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1, snap.LineCount)
	assert.Equal(t, 1, snap.TotalItems)
}

// Random mutation sequences are checked against a plain map model after
// every step, with totals re-read from the store each time.
func TestRandomSequencesMatchModel(t *testing.T) {
	prices := map[int]string{1: "4.99", 2: "3.50", 3: "6.99", 4: "4.50", 5: "5.99"}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		s := New()
		want := map[int]int{}

		for step := 0; step < 200; step++ {
			id := rng.Intn(5) + 1
			switch rng.Intn(4) {
			case 0, 1:
				require.NoError(t, s.AddToCart(product(id, prices[id])))
				want[id]++
			case 2:
				delta := rng.Intn(5) - 3
				require.NoError(t, s.UpdateQuantity(id, delta))
				if q, ok := want[id]; ok {
					if q+delta <= 0 {
						delete(want, id)
					} else {
						want[id] = q + delta
					}
				}
			case 3:
				require.NoError(t, s.RemoveFromCart(id))
				delete(want, id)
			}

			items := 0
			total := decimal.Zero
			for id, q := range want {
				items += q
				total = total.Add(decimal.RequireFromString(prices[id]).Mul(decimal.NewFromInt(int64(q))))
			}
			require.Equal(t, items, s.TotalItems())
			require.True(t, total.Equal(s.TotalPrice()), "total %s != %s", total, s.TotalPrice())
			require.Len(t, s.Lines(), len(want))
			for _, l := range s.Lines() {
				require.GreaterOrEqual(t, l.Quantity, 1)
				require.Equal(t, want[l.ID], l.Quantity)
			}
		}
	}
}

func TestSubscribe(t *testing.T) {
	s := New()
	var got []model.CartChange
	cancel := s.Subscribe(func(c model.CartChange) { got = append(got, c) })

	require.NoError(t, s.AddToCart(product(1, "4.99")))
	require.NoError(t, s.UpdateQuantity(1, 2))
	require.NoError(t, s.RemoveFromCart(7))
	s.SetCartOpen(true)
	s.SetCartOpen(true)
	s.ClearCart()

	kinds := make([]model.CartEventKind, 0, len(got))
	for _, c := range got {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []model.CartEventKind{
		model.EventItemAdded,
		model.EventQuantityUpdated,
		model.EventDrawerToggled,
		model.EventCartCleared,
	}, kinds)
	assert.Equal(t, 3, got[1].Cart.TotalItems)
	assertMoney(t, "14.97", got[1].Cart.TotalPrice)

	cancel()
	cancel()
	require.NoError(t, s.AddToCart(product(1, "4.99")))
	assert.Len(t, got, 4)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := New()
	var seen int
	s.Subscribe(func(model.CartChange) { seen = s.TotalItems() })

	require.NoError(t, s.AddToCart(product(1, "4.99")))
	assert.Equal(t, 1, seen)
}

func TestConcurrentAdds(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.AddToCart(product(1+j%3, "1.00"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, s.TotalItems())
	assertMoney(t, "1000", s.TotalPrice())
	assert.Len(t, s.Lines(), 3)
}
