package api

import (
	"errors"
	"net/http"
	"strconv"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/catalog"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/GreenNest-storefront/server/internal/shop/session"
	"github.com/GreenNest-storefront/server/internal/shop/tools"
	logx "github.com/GreenNest-storefront/server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handler serves the storefront views. It never computes totals itself;
// every number comes from the cart store or the checkout flow.
type Handler struct {
	catalog  *catalog.Catalog
	sessions *session.Manager
	tools    *tools.Registry
}

func NewHandler(cat *catalog.Catalog, sessions *session.Manager, registry *tools.Registry) *Handler {
	return &Handler{catalog: cat, sessions: sessions, tools: registry}
}

func respondError(c *gin.Context, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errx.MessageOf(err)})
}

func badRequest(c *gin.Context, err error, message string) {
	respondError(c, errx.New(err, http.StatusBadRequest, message))
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		badRequest(c, err, "product_id must be an integer")
		return 0, false
	}
	return id, true
}

// GET /products?search=&category=
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.catalog.Search(c.Query("search"), model.Category(c.Query("category")))
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"products":   views,
		"total":      len(views),
		"categories": h.catalog.Categories(),
	})
}

// GET /products/:product_id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	p, err := h.catalog.Lookup(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductView(p))
}

// POST /sessions
func (h *Handler) OpenSession(c *gin.Context) {
	s := h.sessions.Open()
	c.JSON(http.StatusCreated, gin.H{"session_id": s.ID})
}

// GET /assistant/tools
func (h *Handler) ListTools(c *gin.Context) {
	infos := h.tools.Infos()
	out := make([]gin.H, 0, len(infos))
	for _, info := range infos {
		out = append(out, gin.H{"name": info.Name, "description": info.Desc})
	}
	c.JSON(http.StatusOK, gin.H{"tools": out})
}

// POST /assistant/tools/:name
func (h *Handler) InvokeTool(c *gin.Context) {
	args, err := c.GetRawData()
	if err != nil {
		badRequest(c, err, "cannot read tool arguments")
		return
	}
	if len(args) == 0 {
		args = []byte("{}")
	}

	out, err := h.tools.Invoke(c.Request.Context(), c.Param("name"), string(args))
	if err != nil {
		var appErr *errx.AppError
		if errors.As(err, &appErr) {
			respondError(c, err)
			return
		}
		// Malformed arguments never reach a tool body.
		respondError(c, errx.New(err, http.StatusUnprocessableEntity, err.Error()))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(out))
}
