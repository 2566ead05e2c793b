package dto

// AddressDTO is the request/response shape of an address.
type AddressDTO struct {
	ID         int    `json:"id"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}
