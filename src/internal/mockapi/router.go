package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the HTTP router serving both mock backends.
func NewRouter(store *Store, auth *Authenticator) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(ContentType)

	h := NewHandler(store)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSONData(w, map[string]string{"status": "ok"})
	})

	r.Route("/smedan", func(r chi.Router) {
		r.Use(BearerAuth(auth))
		r.Get("/dashboard-stats", statsHandler(store.Smedan))
	})

	r.Route("/casava", func(r chi.Router) {
		r.Use(BearerAuth(auth))

		r.Get("/dashboard-stats/customers", statsHandler(store.D2C))
		r.Get("/dashboard-stats/business", statsHandler(store.B2B))
		r.Get("/dashboard-stats/financials", statsHandler(store.Finance))

		r.Get("/customer-data", h.ListCustomers)
		r.Get("/customer-data/{id}", h.GetCustomer)
		r.Post("/customers", h.CreateCustomer)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route")
	})

	return r
}
