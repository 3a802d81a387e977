package api

import (
	"time"

	logx "github.com/GreenNest-storefront/server/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request through logx.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logx.Debug().
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// NewRouter wires every storefront route onto a fresh gin engine.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  allowOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/products", h.ListProducts)
	r.GET("/products/:product_id", h.GetProduct)
	r.POST("/sessions", h.OpenSession)

	s := r.Group("/sessions/:sid")
	{
		s.GET("/cart", h.GetCart)
		s.POST("/cart/items", h.AddItem)
		s.PATCH("/cart/items/:product_id", h.UpdateQuantity)
		s.DELETE("/cart/items/:product_id", h.RemoveItem)
		s.PUT("/cart/drawer", h.SetDrawer)

		s.POST("/checkout", h.StartCheckout)
		s.GET("/checkout", h.GetCheckout)
		s.DELETE("/checkout", h.LeaveCheckout)
		s.POST("/checkout/shipping", h.SubmitShipping)
		s.POST("/checkout/back", h.Back)
		s.POST("/checkout/payment", h.SubmitPayment)
	}

	a := r.Group("/assistant")
	{
		a.GET("/tools", h.ListTools)
		a.POST("/tools/:name", h.InvokeTool)
	}
	return r
}
