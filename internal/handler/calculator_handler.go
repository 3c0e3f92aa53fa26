package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/adagency/internal/calculator"
	"github.com/blues/adagency/internal/logic"
	"github.com/blues/adagency/internal/model"
	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	catalog   *calculator.Catalog
	leadLogic *logic.LeadLogic
}

func NewCalculatorHandler(catalog *calculator.Catalog, leadLogic *logic.LeadLogic) *CalculatorHandler {
	return &CalculatorHandler{catalog: catalog, leadLogic: leadLogic}
}

func (h *CalculatorHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

func (h *CalculatorHandler) Estimate(c *gin.Context) {
	var req calculator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	est, err := h.catalog.Calculate(req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, EstimateResponse{Total: est.Total, Breakdown: est})
}

// Submit prices the request and stores it as a CALCULATOR lead.
func (h *CalculatorHandler) Submit(c *gin.Context) {
	var req CalculatorSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	est, err := h.catalog.Calculate(req.Request)
	if err != nil {
		handleError(c, err)
		return
	}

	source := req.Source
	if source == "" {
		source = "calculator"
	}
	lead, err := h.leadLogic.CreateLead(c.Request.Context(), logic.CreateLeadInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Type:        model.LeadTypeCalculator,
		Source:      source,
		ServiceType: est.ServiceName,
		Budget:      strconv.FormatInt(est.Total, 10),
		Details:     est.Details(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "lead created",
		"lead":     lead,
		"estimate": EstimateResponse{Total: est.Total, Breakdown: est},
	})
}
