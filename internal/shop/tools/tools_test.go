package tools

import (
	"context"
	"encoding/json"
	"testing"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/GreenNest-storefront/server/internal/shop/repo"
	"github.com/GreenNest-storefront/server/internal/shop/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) (*Registry, *session.Manager) {
	t.Helper()
	sessions := session.NewManager(repo.NopEventPublisher{}, session.Config{})
	t.Cleanup(sessions.Close)
	r, err := NewRegistry(context.Background(), GetStorefrontTools(catalog.Default(), sessions)...)
	require.NoError(t, err)
	return r, sessions
}

func TestRegistryInfos(t *testing.T) {
	r, _ := newRegistry(t)

	var names []string
	for _, info := range r.Infos() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"search_product", "get_product_details", "add_to_cart", "view_cart"}, names)

	_, ok := r.Lookup("view_cart")
	assert.True(t, ok)

	_, err := r.Invoke(context.Background(), "checkout_now", "{}")
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Equal(t, 404, errx.StatusOf(err))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	cat := catalog.Default()
	_, err := NewRegistry(context.Background(), createSearchProductTool(cat), createSearchProductTool(cat))
	assert.Error(t, err)
}

func TestSearchProductTool(t *testing.T) {
	r, _ := newRegistry(t)
	ctx := context.Background()

	out, err := r.Invoke(ctx, "search_product", `{"query":"pepper","category":"Vegetables"}`)
	require.NoError(t, err)

	var res SearchProductOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Sweet Bell Pepper", res.Products[0].Name)
	assert.Equal(t, "4.50", res.Products[0].Price.StringFixed(2))

	out, err = r.Invoke(ctx, "search_product", `{"max_results":3}`)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Total)
}

func TestGetProductDetailsTool(t *testing.T) {
	r, _ := newRegistry(t)
	ctx := context.Background()

	out, err := r.Invoke(ctx, "get_product_details", `{"product_id":5}`)
	require.NoError(t, err)
	var p model.Product
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Lavender", p.Name)
	assert.Equal(t, model.CategoryFlowers, p.Category)

	_, err = r.Invoke(ctx, "get_product_details", `{"product_id":42}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 42 does not exist")
}

func TestCartTools(t *testing.T) {
	r, sessions := newRegistry(t)
	ctx := context.Background()
	s := sessions.Open()

	for _, id := range []string{"1", "3", "1"} {
		_, err := r.Invoke(ctx, "add_to_cart", `{"session_id":"`+s.ID+`","product_id":`+id+`}`)
		require.NoError(t, err)
	}

	out, err := r.Invoke(ctx, "view_cart", `{"session_id":"`+s.ID+`"}`)
	require.NoError(t, err)
	var view CartView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 3, view.Cart.TotalItems)
	assert.Equal(t, 2, view.Cart.LineCount)
	assert.Equal(t, "16.97", view.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "22.96", view.Summary.Total.StringFixed(2))

	assert.Equal(t, 3, s.Cart.TotalItems(), "tools mutate the shared session cart")

	_, err = r.Invoke(ctx, "view_cart", `{"session_id":"nope"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = r.Invoke(ctx, "add_to_cart", `{"session_id":"`+s.ID+`","product_id":0}`)
	require.Error(t, err)
	assert.Equal(t, 3, s.Cart.TotalItems())
}
