package controller

import (
	"net/http"

	"github.com/unclebandit/customer-service/internal/dto"
	"github.com/unclebandit/customer-service/internal/service"
)

type AddressController struct {
	AddressService *service.AddressService
}

// List handles GET /address
func (c *AddressController) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := c.AddressService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

// Get handles GET /address/{id}
func (c *AddressController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid address id", http.StatusBadRequest)
		return
	}

	address, err := c.AddressService.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

// Create handles POST /address. The Location header is a fixed placeholder.
func (c *AddressController) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.AddressDTO
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	address, err := c.AddressService.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/address.Id")
	writeJSON(w, http.StatusCreated, address)
}

// Update handles PUT /address
func (c *AddressController) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.AddressDTO
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	addresses, err := c.AddressService.Update(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

// Delete handles DELETE /address/{id}
func (c *AddressController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid address id", http.StatusBadRequest)
		return
	}

	addresses, err := c.AddressService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}
