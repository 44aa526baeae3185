package mockapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/casava/admin-console/src/internal/contracts"
	"github.com/casava/admin-console/src/internal/stats"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
	maxFormMemory  = 8 << 20
)

// Handler serves the mock endpoints from a Store.
type Handler struct {
	store *Store
}

// NewHandler creates a new handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type dateRange struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// statsHandler validates the date range and writes the value returned by get.
func statsHandler[T any](get func() T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if errs := fieldErrors(dateRange{StartDate: q.Get("start_date"), EndDate: q.Get("end_date")}); errs != nil {
			WriteValidationError(w, errs)
			return
		}
		writeJSONData(w, get())
	}
}

// ListCustomers handles GET /customer-data.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil || page < 1 {
		WriteValidationError(w, map[string][]string{"page": {"The page must be a positive integer."}})
		return
	}
	perPage, err := intParam(q.Get("per_page"), defaultPerPage)
	if err != nil || perPage < 1 || perPage > maxPerPage {
		WriteValidationError(w, map[string][]string{"per_page": {"The per page must be between 1 and 100."}})
		return
	}

	customers := h.store.Customers(q.Get("search"))
	meta := contracts.NewPageMeta(r.URL.Path, page, perPage, len(customers))

	writeJSONData(w, contracts.Page[stats.Customer]{
		Data:  contracts.Slice(customers, meta),
		Links: contracts.NewPageLinks(meta),
		Meta:  meta,
	})
}

// GetCustomer handles GET /customer-data/{id}.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.store.Customer(chi.URLParam(r, "id"))
	if !ok {
		WriteNotFound(w, "Customer")
		return
	}
	writeJSONData(w, customer)
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// CreateCustomer handles POST /customers. The body may be JSON or multipart,
// flat or nested under "customer".
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCustomer(r)
	if err != nil {
		WriteInvalidRequest(w, "Invalid request body: "+err.Error())
		return
	}

	if errs := fieldErrors(req); errs != nil {
		WriteValidationError(w, errs)
		return
	}

	customer, err := h.store.AddCustomer(stats.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if errors.Is(err, ErrEmailTaken) {
		WriteValidationError(w, map[string][]string{"email": {"The email has already been taken."}})
		return
	}
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	writeCreated(w, "Customer created", customer)
}

func decodeCustomer(r *http.Request) (*CreateCustomerRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
		value := func(name string) string {
			if v := r.FormValue("customer[" + name + "]"); v != "" {
				return v
			}
			return r.FormValue(name)
		}
		return &CreateCustomerRequest{
			FirstName: value("first_name"),
			LastName:  value("last_name"),
			Email:     value("email"),
			Phone:     value("phone"),
		}, nil
	}

	var body struct {
		CreateCustomerRequest
		Customer *CreateCustomerRequest `json:"customer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Customer != nil {
		return body.Customer, nil
	}
	return &body.CreateCustomerRequest, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
