package model

import (
	"strings"
	"time"
)

// Service is an agency offering listed on the services page.
type Service struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Slug        string      `json:"slug" yaml:"slug" gorm:"uniqueIndex;not null"`
	Title       string      `json:"title" yaml:"title" gorm:"not null"`
	Description string      `json:"description" yaml:"description" gorm:"type:text"`
	Icon        ServiceIcon `json:"icon" yaml:"icon" gorm:"type:varchar(32)"`
	PriceFrom   int64       `json:"priceFrom" yaml:"priceFrom"`
	Active      bool        `json:"active" yaml:"active" gorm:"not null;index"`
	Order       int         `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (Service) TableName() string {
	return "service"
}

// ServiceIcon names one of the icons the frontend knows how to draw.
type ServiceIcon string

const (
	IconMegaphone ServiceIcon = "megaphone"
	IconBillboard ServiceIcon = "billboard"
	IconPrinter   ServiceIcon = "printer"
	IconGift      ServiceIcon = "gift"
	IconPalette   ServiceIcon = "palette"
	IconLightbulb ServiceIcon = "lightbulb"
	IconTruck     ServiceIcon = "truck"

	DefaultServiceIcon = IconMegaphone
)

var knownIcons = map[ServiceIcon]struct{}{
	IconMegaphone: {},
	IconBillboard: {},
	IconPrinter:   {},
	IconGift:      {},
	IconPalette:   {},
	IconLightbulb: {},
	IconTruck:     {},
}

// NormalizeIcon lowercases the name and falls back to DefaultServiceIcon for unknown values.
func NormalizeIcon(name string) ServiceIcon {
	icon := ServiceIcon(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return DefaultServiceIcon
}

type PortfolioItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string `json:"title" yaml:"title" gorm:"not null"`
	Category    string `json:"category" yaml:"category" gorm:"index"`
	Client      string `json:"client" yaml:"client"`
	Description string `json:"description" yaml:"description" gorm:"type:text"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	ServiceSlug string `json:"serviceSlug" yaml:"serviceSlug"`
	Active      bool   `json:"active" yaml:"active" gorm:"not null;index"`
	Order       int    `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_item"
}

type FAQItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Question string `json:"question" yaml:"question" gorm:"not null"`
	Answer   string `json:"answer" yaml:"answer" gorm:"type:text"`
	Active   bool   `json:"active" yaml:"active" gorm:"not null;index"`
	Order    int    `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (FAQItem) TableName() string {
	return "faq_item"
}

// Setting is a site-wide key/value pair such as phone or address.
type Setting struct {
	Key       string    `json:"key" yaml:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" yaml:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "setting"
}
