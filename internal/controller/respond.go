package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/customer-service/internal/errors"
)

type validationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("⚠️ failed to encode response:", err)
	}
}

// writeError maps application errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound  *appErrors.ErrNotFound
		invalid   *appErrors.ErrValidation
		badFormat *appErrors.ErrFormatRejected
	)
	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, validationProblem{
			Title:  "One or more validation errors occurred.",
			Status: http.StatusBadRequest,
			Errors: invalid.Fields,
		})
	case errors.As(err, &notFound), errors.As(err, &badFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
