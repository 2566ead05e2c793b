package controller

import (
	"net/http"

	"github.com/unclebandit/customer-service/internal/dto"
	"github.com/unclebandit/customer-service/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

// List handles GET /customer
func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Get handles GET /customer/{id}
func (c *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Create handles POST /customer and echoes the submitted payload. The
// Location header is a fixed placeholder.
func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CustomerDTO
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/customer.Id")
	writeJSON(w, http.StatusCreated, customer)
}

// Update handles PUT /customer
func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.CustomerDTO
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	customers, err := c.CustomerService.Update(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Delete handles DELETE /customer/{id}
func (c *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customers, err := c.CustomerService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}
