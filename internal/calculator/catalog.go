package calculator

// Option is one priced variant of a service.
type Option struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	Unit      string  `json:"unit"`
}

type Service struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Extra is an additional option. Exactly one of Multiplier and Price is set.
type Extra struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Price      float64 `json:"price,omitempty"`
}

// Catalog is the static price list behind the calculator page.
type Catalog struct {
	Services []Service `json:"services"`
	Extras   []Extra   `json:"extras"`
}

// DefaultCatalog returns the agency price list (roubles).
func DefaultCatalog() *Catalog {
	return &Catalog{
		Services: []Service{
			{
				ID:   "outdoor",
				Name: "Наружная реклама",
				Options: []Option{
					{ID: "banners", Name: "Баннеры", BasePrice: 350, Unit: "м²"},
					{ID: "signboards", Name: "Вывески", BasePrice: 2500, Unit: "м²"},
					{ID: "lightboxes", Name: "Световые короба", BasePrice: 4500, Unit: "м²"},
					{ID: "pillars", Name: "Штендеры", BasePrice: 3200, Unit: "шт"},
				},
			},
			{
				ID:   "printing",
				Name: "Полиграфия",
				Options: []Option{
					{ID: "flyers", Name: "Листовки", BasePrice: 5, Unit: "шт"},
					{ID: "business-cards", Name: "Визитки", BasePrice: 3, Unit: "шт"},
					{ID: "booklets", Name: "Буклеты", BasePrice: 25, Unit: "шт"},
					{ID: "catalogs", Name: "Каталоги", BasePrice: 180, Unit: "шт"},
				},
			},
			{
				ID:   "interior",
				Name: "Интерьерная реклама",
				Options: []Option{
					{ID: "stickers", Name: "Наклейки", BasePrice: 800, Unit: "м²"},
					{ID: "posters", Name: "Постеры", BasePrice: 250, Unit: "шт"},
					{ID: "plates", Name: "Таблички", BasePrice: 1200, Unit: "шт"},
				},
			},
			{
				ID:   "souvenirs",
				Name: "Сувенирная продукция",
				Options: []Option{
					{ID: "mugs", Name: "Кружки", BasePrice: 450, Unit: "шт"},
					{ID: "t-shirts", Name: "Футболки", BasePrice: 650, Unit: "шт"},
					{ID: "pens", Name: "Ручки", BasePrice: 60, Unit: "шт"},
				},
			},
		},
		Extras: []Extra{
			{ID: "urgent", Name: "Срочное изготовление", Multiplier: 1.5},
			{ID: "design", Name: "Разработка дизайна", Price: 3000},
			{ID: "installation", Name: "Монтаж", Price: 5000},
			{ID: "delivery", Name: "Доставка", Price: 1000},
		},
	}
}

func (c *Catalog) service(id string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

func (s *Service) option(id string) (*Option, bool) {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i], true
		}
	}
	return nil, false
}

func (c *Catalog) extra(id string) (*Extra, bool) {
	for i := range c.Extras {
		if c.Extras[i].ID == id {
			return &c.Extras[i], true
		}
	}
	return nil, false
}
