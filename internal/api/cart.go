package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

type updateQuantityInput struct {
	Delta *int `json:"delta" binding:"required"`
}

type drawerInput struct {
	Open *bool `json:"open" binding:"required"`
}

// GET /sessions/:sid/cart
func (h *Handler) GetCart(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(s.Cart.Snapshot()))
}

// POST /sessions/:sid/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err, "Invalid input: "+err.Error())
		return
	}

	p, err := h.catalog.Lookup(input.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.Cart.AddToCart(p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(s.Cart.Snapshot()))
}

// PATCH /sessions/:sid/cart/items/:product_id
func (h *Handler) UpdateQuantity(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err, "Invalid input: "+err.Error())
		return
	}
	if err := s.Cart.UpdateQuantity(id, *input.Delta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(s.Cart.Snapshot()))
}

// DELETE /sessions/:sid/cart/items/:product_id
func (h *Handler) RemoveItem(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	if err := s.Cart.RemoveFromCart(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(s.Cart.Snapshot()))
}

// PUT /sessions/:sid/cart/drawer
func (h *Handler) SetDrawer(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input drawerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err, "Invalid input: "+err.Error())
		return
	}
	s.Cart.SetCartOpen(*input.Open)
	c.JSON(http.StatusOK, newCartView(s.Cart.Snapshot()))
}
