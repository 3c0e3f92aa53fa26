package handler

import (
	"github.com/blues/adagency/internal/calculator"
	"github.com/blues/adagency/internal/model"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// CreateLeadRequest is the body of POST /api/leads.
type CreateLeadRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Email       string                 `json:"email" binding:"omitempty,email"`
	Phone       string                 `json:"phone"`
	Message     string                 `json:"message"`
	Type        string                 `json:"type"`
	ServiceType string                 `json:"serviceType"`
	Budget      string                 `json:"budget"`
	Source      string                 `json:"source"`
	Details     map[string]interface{} `json:"details"`
}

// UpdateLeadRequest is the body of PATCH /api/leads/:id. Absent fields are left unchanged.
type UpdateLeadRequest struct {
	Status   *string         `json:"status"`
	Priority *string         `json:"priority"`
	Notes    *string         `json:"notes"`
	Assignee *model.Assignee `json:"assignee"`
}

// IDsRequest carries the id list of bulk-delete and reorder.
type IDsRequest struct {
	IDs []uint `json:"ids"`
}

// CalculatorSubmitRequest is an estimate request plus the contact fields of the lead.
type CalculatorSubmitRequest struct {
	calculator.Request
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

type EstimateResponse struct {
	Total     int64                `json:"total"`
	Breakdown *calculator.Estimate `json:"breakdown"`
}
