package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/adagency/internal/logic"
	"github.com/blues/adagency/internal/model"
	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadLogic *logic.LeadLogic
}

func NewLeadHandler(leadLogic *logic.LeadLogic) *LeadHandler {
	return &LeadHandler{leadLogic: leadLogic}
}

// CreateLead accepts a public form submission.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	typ, _ := model.ParseLeadType(req.Type)
	lead, err := h.leadLogic.CreateLead(c.Request.Context(), logic.CreateLeadInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Type:        typ,
		Source:      req.Source,
		ServiceType: req.ServiceType,
		Budget:      req.Budget,
		Details:     req.Details,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "lead created",
		"lead":    lead,
	})
}

// GetLeads lists leads with filters and offset pagination.
func (h *LeadHandler) GetLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(logic.DefaultPageSize)))
	page, limit = logic.NormalizePage(page, limit)

	status, _ := model.ParseLeadStatus(c.Query("status"))
	typ, _ := model.ParseLeadType(c.Query("type"))
	priority, _ := model.ParseLeadPriority(c.Query("priority"))

	leads, total, err := h.leadLogic.ListLeads(c.Request.Context(), logic.LeadFilter{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Status:   status,
		Type:     typ,
		Priority: priority,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":      leads,
		"pagination": NewPagination(page, limit, total),
	})
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	lead, err := h.leadLogic.GetLead(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

func (h *LeadHandler) GetLeadStats(c *gin.Context) {
	stats, err := h.leadLogic.GetLeadStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// UpdateLead applies an admin patch.
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := logic.LeadPatch{Notes: req.Notes, Assignee: req.Assignee}
	if req.Status != nil {
		status, _ := model.ParseLeadStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority, _ := model.ParseLeadPriority(*req.Priority)
		patch.Priority = &priority
	}

	lead, err := h.leadLogic.UpdateLead(c.Request.Context(), id, patch)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// DeleteLead succeeds for unknown ids with deleted=false.
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	deleted, err := h.leadLogic.DeleteLead(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// BulkDeleteLeads removes all listed leads in one transaction.
func (h *LeadHandler) BulkDeleteLeads(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.leadLogic.BulkDeleteLeads(c.Request.Context(), req.IDs)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
