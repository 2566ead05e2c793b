// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/unclebandit/customer-service/internal/controller"
)

// Options holds the dependencies of the HTTP surface
type Options struct {
	Addresses      *controller.AddressController
	Customers      *controller.CustomerController
	AllowedOrigins []string
}

// New builds the route table.
func New(opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Address routes
	r.Route("/address", func(r chi.Router) {
		r.Get("/", opts.Addresses.List)
		r.Post("/", opts.Addresses.Create)
		r.Put("/", opts.Addresses.Update)
		r.Get("/{id}", opts.Addresses.Get)
		r.Delete("/{id}", opts.Addresses.Delete)
	})

	// Customer routes
	r.Route("/customer", func(r chi.Router) {
		r.Get("/", opts.Customers.List)
		r.Post("/", opts.Customers.Create)
		r.Put("/", opts.Customers.Update)
		r.Get("/{id}", opts.Customers.Get)
		r.Delete("/{id}", opts.Customers.Delete)
	})

	return r
}
