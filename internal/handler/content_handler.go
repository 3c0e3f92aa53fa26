package handler

import (
	"net/http"

	"github.com/blues/adagency/internal/logic"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the seeded public feeds.
type ContentHandler struct {
	contentLogic *logic.ContentLogic
}

func NewContentHandler(contentLogic *logic.ContentLogic) *ContentHandler {
	return &ContentHandler{contentLogic: contentLogic}
}

func (h *ContentHandler) GetServices(c *gin.Context) {
	services, err := h.contentLogic.Services(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetPortfolio accepts an optional category filter.
func (h *ContentHandler) GetPortfolio(c *gin.Context) {
	items, err := h.contentLogic.Portfolio(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) GetFAQ(c *gin.Context) {
	items, err := h.contentLogic.FAQ(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentLogic.Settings(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
