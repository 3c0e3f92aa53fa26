package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrUnknownOption  = errors.New("unknown service option")
	ErrUnknownExtra   = errors.New("unknown additional option")
	ErrBadQuantity    = errors.New("quantity must be greater than zero")
)

// maxTotal is the first price that no longer fits Estimate.Total.
const maxTotal = float64(math.MaxInt64)

func checkTotal(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || math.Abs(price) >= maxTotal {
		return fmt.Errorf("%w: estimated total is out of range", ErrBadQuantity)
	}
	return nil
}

// Request selects one option of one service, a quantity and any extras.
type Request struct {
	Service  string   `json:"service" binding:"required"`
	Option   string   `json:"option" binding:"required"`
	Quantity float64  `json:"quantity"`
	Extras   []string `json:"extras"`
}

// Step records one extra applied to the running price.
type Step struct {
	Extra      string  `json:"extra"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Subtotal   float64 `json:"subtotal"`
}

type Estimate struct {
	Service     string  `json:"service"`
	ServiceName string  `json:"serviceName"`
	Option      string  `json:"option"`
	OptionName  string  `json:"optionName"`
	Unit        string  `json:"unit"`
	BasePrice   float64 `json:"basePrice"`
	Quantity    float64 `json:"quantity"`
	Base        float64 `json:"base"`
	Steps       []Step  `json:"steps"`
	Total       int64   `json:"total"`
}

// Calculate prices the request: basePrice × quantity, then each extra in the
// order given either multiplies the running price or adds its flat price.
func (c *Catalog) Calculate(req Request) (*Estimate, error) {
	svc, ok := c.service(req.Service)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}
	opt, ok := svc.option(req.Option)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, req.Option)
	}
	if req.Quantity <= 0 || math.IsNaN(req.Quantity) || math.IsInf(req.Quantity, 0) {
		return nil, ErrBadQuantity
	}

	price := opt.BasePrice * req.Quantity
	if err := checkTotal(price); err != nil {
		return nil, err
	}
	est := &Estimate{
		Service:     svc.ID,
		ServiceName: svc.Name,
		Option:      opt.ID,
		OptionName:  opt.Name,
		Unit:        opt.Unit,
		BasePrice:   opt.BasePrice,
		Quantity:    req.Quantity,
		Base:        price,
		Steps:       []Step{},
	}

	for _, id := range req.Extras {
		extra, ok := c.extra(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtra, id)
		}

		if extra.Multiplier != 0 {
			price *= extra.Multiplier
		} else {
			price += extra.Price
		}
		if err := checkTotal(price); err != nil {
			return nil, err
		}

		est.Steps = append(est.Steps, Step{
			Extra:      extra.ID,
			Name:       extra.Name,
			Multiplier: extra.Multiplier,
			Price:      extra.Price,
			Subtotal:   price,
		})
	}

	est.Total = int64(math.Round(price))
	return est, nil
}

// Details flattens the estimate for storage in a lead.
func (e *Estimate) Details() map[string]interface{} {
	extras := make([]string, 0, len(e.Steps))
	for _, s := range e.Steps {
		extras = append(extras, s.Extra)
	}
	return map[string]interface{}{
		"service":    e.Service,
		"option":     e.Option,
		"optionName": e.OptionName,
		"unit":       e.Unit,
		"basePrice":  e.BasePrice,
		"quantity":   e.Quantity,
		"extras":     extras,
		"total":      e.Total,
	}
}
