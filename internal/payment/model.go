package payment

// CheckoutItem is one cart line handed to the payment endpoint.
type CheckoutItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type checkoutRequest struct {
	ExternalID string         `json:"external_id"`
	Amount     float64        `json:"amount"`
	Items      []CheckoutItem `json:"items"`
}

// Redirect is what the host UI needs to hand the user over to the gateway's
// hosted payment page.
type Redirect struct {
	URL        string `json:"redirect_url"`
	ExternalID string `json:"external_id"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}
