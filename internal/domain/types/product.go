package types

// Product is a sellable template the builder can instantiate.
type Product struct {
	Type       ProductType `json:"type"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	Components []string    `json:"components"`
	Delivery   string      `json:"delivery"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Components = append([]string(nil), p.Components...)
	return p
}
