package cart

import "clickmart/internal/product"

// Item is one purchasable entry in the cart. Identity is ID alone; every
// other field is a display snapshot captured when the item was first added
// and never refreshed from the catalog afterwards.
type Item struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         product.Price  `json:"price"`
	OriginalPrice *product.Price `json:"originalPrice,omitempty"`
	Image         string         `json:"image,omitempty"`
	Category      string         `json:"category,omitempty"`
	Rating        float64        `json:"rating,omitempty"`
	Reviews       int            `json:"reviews,omitempty"`
	Quantity      int            `json:"quantity"`
}

// State is the snapshot handed to subscribers. Items keep insertion order
// and hold at most one entry per ID.
type State struct {
	Items []Item `json:"items"`
}
