package address

// Address is a saved delivery address in the user's book.
type Address struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`

	City     string `json:"city"`
	Province string `json:"province"`
	Postal   string `json:"postal"`
	Country  string `json:"country"`

	Lat float64 `json:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty"`

	IsDefault bool `json:"is_default"`
}

type CreateAddressInput struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address1"`
	AddressLine2 *string `json:"address2,omitempty"`
	City         string  `json:"city"`
	Province     string  `json:"province"`
	PostalCode   string  `json:"postal"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat,omitempty"`
	Lng          float64 `json:"lng,omitempty"`
	SetAsDefault bool    `json:"set_as_default"`
}
