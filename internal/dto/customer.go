package dto

// CustomerDTO is the request shape of a customer. POST echoes it back as-is.
type CustomerDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,mailaddr"`
	Phone     string `json:"phone" validate:"required,phone"`
	AddressID int    `json:"addressId"`
}
