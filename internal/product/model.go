package product

// Product is the catalog entry as the backend serves it. Rating and Reviews
// are aggregates the backend computes; the client never recalculates them.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         Price   `json:"price"`
	OriginalPrice *Price  `json:"originalPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	Stock         int     `json:"stock,omitempty"`
}

// Discounted reports whether the original price is both present and higher
// than the current one.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.Float64() > p.Price.Float64()
}

type ListOptions struct {
	Search   string
	Category string
	Page     int
	PerPage  int
}

// ListResult carries one page of catalog results plus the backend's
// pagination counters.
type ListResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}
