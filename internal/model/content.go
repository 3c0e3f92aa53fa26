package model

import (
	"time"
)

// TeamMember is shown on the about page.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string `json:"name" yaml:"name" gorm:"not null" binding:"required"`
	Position string `json:"position" yaml:"position"`
	Bio      string `json:"bio" yaml:"bio" gorm:"type:text"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Active   bool   `json:"active" yaml:"active" gorm:"not null;index"`
	Order    int    `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (TeamMember) TableName() string {
	return "team_member"
}

func (m *TeamMember) GetID() uint {
	return m.ID
}

// Partner is a client logo in the partners strip.
type Partner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" yaml:"name" gorm:"not null" binding:"required"`
	Description string `json:"description" yaml:"description" gorm:"type:text"`
	LogoURL     string `json:"logoUrl" yaml:"logoUrl"`
	Website     string `json:"website" yaml:"website"`
	Active      bool   `json:"active" yaml:"active" gorm:"not null;index"`
	Order       int    `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (Partner) TableName() string {
	return "partner"
}

func (p *Partner) GetID() uint {
	return p.ID
}

// DefaultRating is stored when a testimonial arrives without a rating.
const DefaultRating = 5

// Testimonial is a client quote for the testimonials carousel.
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AuthorName string `json:"authorName" yaml:"authorName" gorm:"not null" binding:"required"`
	Company    string `json:"company" yaml:"company"`
	Position   string `json:"position" yaml:"position"`
	Text       string `json:"text" yaml:"text" gorm:"type:text;not null" binding:"required"`
	Rating     int    `json:"rating" yaml:"rating" gorm:"default:5" binding:"omitempty,min=1,max=5"`
	ImageURL   string `json:"imageUrl" yaml:"imageUrl"`
	Active     bool   `json:"active" yaml:"active" gorm:"not null;index"`
	Order      int    `json:"order" yaml:"order" gorm:"column:sort_order;default:0;index"`
}

func (Testimonial) TableName() string {
	return "testimonial"
}

func (t *Testimonial) GetID() uint {
	return t.ID
}

// Normalize fills in the rating when the client left it out.
func (t *Testimonial) Normalize() {
	if t.Rating == 0 {
		t.Rating = DefaultRating
	}
}
