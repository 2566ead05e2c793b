// Package mapper converts between transfer shapes and persistence entities.
//
// Merges are full overwrites: every field of the stored entity, the
// identifier included, takes the value carried by the DTO.
package mapper

import (
	"github.com/unclebandit/customer-service/internal/dto"
	"github.com/unclebandit/customer-service/internal/model"
)

func ToAddress(in dto.AddressDTO) *model.Address {
	return &model.Address{
		ID:         in.ID,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

// MergeAddress overwrites dst with in, including dst.ID.
func MergeAddress(dst *model.Address, in dto.AddressDTO) {
	mapped := ToAddress(in)
	dst.ID = mapped.ID
	dst.City = mapped.City
	dst.PostalCode = mapped.PostalCode
	dst.Country = mapped.Country
}

func FromAddress(a *model.Address) dto.AddressDTO {
	return dto.AddressDTO{
		ID:         a.ID,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func ToCustomer(in dto.CustomerDTO) *model.Customer {
	return &model.Customer{
		ID:        in.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		AddressID: in.AddressID,
	}
}

// MergeCustomer overwrites dst with in. The mapped entity carries no
// Address, so the loaded association is dropped as well.
func MergeCustomer(dst *model.Customer, in dto.CustomerDTO) {
	mapped := ToCustomer(in)
	dst.ID = mapped.ID
	dst.Name = mapped.Name
	dst.Email = mapped.Email
	dst.Phone = mapped.Phone
	dst.AddressID = mapped.AddressID
	dst.Address = mapped.Address
}

func FromCustomer(c *model.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		AddressID: c.AddressID,
	}
}
