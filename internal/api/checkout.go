package api

import (
	"errors"
	"net/http"

	"github.com/GreenNest-storefront/server/internal/shop/checkout"
	"github.com/gin-gonic/gin"
)

// POST /sessions/:sid/checkout
func (h *Handler) StartCheckout(c *gin.Context) {
	flow, err := h.sessions.StartCheckout(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCheckoutView(flow))
}

// GET /sessions/:sid/checkout
func (h *Handler) GetCheckout(c *gin.Context) {
	flow, err := h.sessions.Checkout(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(flow))
}

// POST /sessions/:sid/checkout/shipping
func (h *Handler) SubmitShipping(c *gin.Context) {
	flow, err := h.sessions.Checkout(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	var details checkout.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		badRequest(c, err, "Invalid input: "+err.Error())
		return
	}
	if err := flow.ProceedToPayment(details); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(flow))
}

// POST /sessions/:sid/checkout/back
func (h *Handler) Back(c *gin.Context) {
	flow, err := h.sessions.Checkout(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !flow.Back() {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "back is not available in this step",
			"checkout": newCheckoutView(flow),
		})
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(flow))
}

// POST /sessions/:sid/checkout/payment
//
// Settlement is asynchronous: 202 means processing has started and the
// caller polls GET /checkout for the confirmation.
func (h *Handler) SubmitPayment(c *gin.Context) {
	flow, err := h.sessions.Checkout(c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !flow.SubmitPayment() {
		c.JSON(http.StatusConflict, gin.H{
			"error":    errPaymentDisabled.Error(),
			"checkout": newCheckoutView(flow),
		})
		return
	}
	c.JSON(http.StatusAccepted, newCheckoutView(flow))
}

// DELETE /sessions/:sid/checkout
func (h *Handler) LeaveCheckout(c *gin.Context) {
	if err := h.sessions.EndCheckout(c.Param("sid")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var errPaymentDisabled = errors.New("payment submission is disabled")
