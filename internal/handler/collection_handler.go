package handler

import (
	"net/http"

	"github.com/blues/adagency/internal/logic"
	"github.com/gin-gonic/gin"
)

// CollectionHandler serves one admin content collection and its public feed.
type CollectionHandler[T any, PT logic.Entity[T]] struct {
	collection *logic.CollectionLogic[T, PT]
}

func NewCollectionHandler[T any, PT logic.Entity[T]](l *logic.CollectionLogic[T, PT]) *CollectionHandler[T, PT] {
	return &CollectionHandler[T, PT]{collection: l}
}

// List returns every record, including inactive ones.
func (h *CollectionHandler[T, PT]) List(c *gin.Context) {
	items, err := h.collection.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PublicList returns active records only.
func (h *CollectionHandler[T, PT]) PublicList(c *gin.Context) {
	items, err := h.collection.PublicList(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CollectionHandler[T, PT]) Create(c *gin.Context) {
	item := PT(new(T))
	if err := c.ShouldBindJSON(item); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.collection.Create(c.Request.Context(), item); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update replaces the record whose id is given in the body.
func (h *CollectionHandler[T, PT]) Update(c *gin.Context) {
	item := PT(new(T))
	if err := c.ShouldBindJSON(item); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.collection.Update(c.Request.Context(), item)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the record named by the id query parameter.
func (h *CollectionHandler[T, PT]) Delete(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		handleError(c, logic.ErrMissingID)
		return
	}
	id, ok := parseID(c, raw)
	if !ok {
		return
	}

	deleted, err := h.collection.Delete(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Reorder persists a new display sequence from the full ordered id list.
func (h *CollectionHandler[T, PT]) Reorder(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.collection.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
