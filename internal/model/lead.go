package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Lead is a customer inquiry captured from one of the public forms.
type Lead struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email,omitempty" gorm:"index"`
	Phone   string `json:"phone,omitempty" gorm:"index"`
	Message string `json:"message,omitempty" gorm:"type:text"`

	Type     LeadType     `json:"type" gorm:"type:varchar(16);not null;index"`
	Status   LeadStatus   `json:"status" gorm:"type:varchar(16);not null;index"`
	Priority LeadPriority `json:"priority" gorm:"type:varchar(16);not null;index"`

	Source      string            `json:"source,omitempty"`
	ServiceType string            `json:"serviceType,omitempty"`
	Budget      string            `json:"budget,omitempty"`
	Notes       string            `json:"notes,omitempty" gorm:"type:text"`
	Details     datatypes.JSONMap `json:"details,omitempty"`

	Assignee *Assignee `json:"assignee,omitempty" gorm:"embedded;embeddedPrefix:assignee_"`
}

// Assignee is informational only; it is not a foreign key.
type Assignee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (Lead) TableName() string {
	return "lead"
}

// LeadType identifies which public form produced the lead.
type LeadType string

const (
	LeadTypeContact    LeadType = "CONTACT"
	LeadTypeQuote      LeadType = "QUOTE"
	LeadTypeCalculator LeadType = "CALCULATOR"
	LeadTypeCallback   LeadType = "CALLBACK"
)

// LeadStatus is changed only by admin staff.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "NEW"
	LeadStatusContacted  LeadStatus = "CONTACTED"
	LeadStatusInProgress LeadStatus = "IN_PROGRESS"
	LeadStatusConverted  LeadStatus = "CONVERTED"
	LeadStatusClosed     LeadStatus = "CLOSED"
	LeadStatusSpam       LeadStatus = "SPAM"
)

// LeadStatuses lists every status in display order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusInProgress,
	LeadStatusConverted,
	LeadStatusClosed,
	LeadStatusSpam,
}

type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "LOW"
	LeadPriorityMedium LeadPriority = "MEDIUM"
	LeadPriorityHigh   LeadPriority = "HIGH"
	LeadPriorityUrgent LeadPriority = "URGENT"
)

func (t LeadType) Valid() bool {
	switch t {
	case LeadTypeContact, LeadTypeQuote, LeadTypeCalculator, LeadTypeCallback:
		return true
	}
	return false
}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (p LeadPriority) Valid() bool {
	switch p {
	case LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh, LeadPriorityUrgent:
		return true
	}
	return false
}

// ParseLeadType normalizes case and reports whether the value is known.
func ParseLeadType(s string) (LeadType, bool) {
	t := LeadType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

func ParseLeadStatus(s string) (LeadStatus, bool) {
	v := LeadStatus(strings.ToUpper(strings.TrimSpace(s)))
	return v, v.Valid()
}

func ParseLeadPriority(s string) (LeadPriority, bool) {
	p := LeadPriority(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}
