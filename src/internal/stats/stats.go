// Package stats provides adapters for the dashboard statistics and customer
// endpoints.
package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/casava/admin-console/src/internal/contracts"
	"github.com/casava/admin-console/src/internal/form"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/services"
)

const dateLayout = "2006-01-02"

// SmedanStats is the SMEDAN programme summary card.
type SmedanStats struct {
	ChurnRate                   float64 `json:"churn_rate"`
	Difference                  float64 `json:"difference"`
	TotalBusinessGroSubscribers int     `json:"total_business_gro_subscribers"`
	TotalSignup                 int     `json:"total_signup"`
}

// D2CStats summarises direct-to-customer signups, policies and premiums.
type D2CStats struct {
	TotalSignups          int     `json:"total_signups"`
	TotalVerifiedUsers    int     `json:"total_verified_users"`
	TotalPoliciesCreated  int     `json:"total_policies_created"`
	TotalPremiumPayments  float64 `json:"total_premium_payments"`
	TotalActivePolicies   int     `json:"total_active_policies"`
	TotalInactivePolicies int     `json:"total_inactive_policies"`
}

// B2BStats summarises partner businesses and their policies.
type B2BStats struct {
	TotalPartners                int     `json:"total_partners"`
	TotalPoliciesCreated         int     `json:"total_policies_created"`
	TotalPartnerPremiumPayments  float64 `json:"total_partner_premium_payments"`
	TotalActivePartnerPolicies   int     `json:"total_active_partner_policies"`
	TotalInactivePartnerPolicies int     `json:"total_inactive_partner_policies"`
	TotalPartnerCustomers        int     `json:"total_partner_customers"`
}

// FinanceStats is the financials card.
type FinanceStats struct {
	TotalPolicies        int     `json:"total_policies"`
	TotalPremiumPayments float64 `json:"total_premium_payments"`
	TotalTransactions    int     `json:"total_transactions"`
}

// Customer is a row of the customer-data list.
type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Kind names a statistics endpoint.
type Kind string

const (
	KindSmedan  Kind = "smedan"
	KindD2C     Kind = "d2c"
	KindB2B     Kind = "b2b"
	KindFinance Kind = "finance"
)

// Kinds lists every statistics endpoint.
func Kinds() []Kind {
	return []Kind{KindSmedan, KindD2C, KindB2B, KindFinance}
}

// Path returns the endpoint path and service for kind.
func (k Kind) Path() (string, services.Name, bool) {
	switch k {
	case KindSmedan:
		return "/dashboard-stats", services.Smedan, true
	case KindD2C:
		return "/dashboard-stats/customers", services.Casava, true
	case KindB2B:
		return "/dashboard-stats/business", services.Casava, true
	case KindFinance:
		return "/dashboard-stats/financials", services.Casava, true
	}
	return "", "", false
}

// DateParams returns the start_date/end_date query for the day of baseDate
// in UTC. A zero baseDate means today.
func DateParams(baseDate time.Time) map[string]any {
	if baseDate.IsZero() {
		baseDate = time.Now()
	}
	day := baseDate.UTC().Format(dateLayout)
	return map[string]any{"start_date": day, "end_date": day}
}

func statsConfig(kind Kind, baseDate time.Time) request.Config {
	path, service, _ := kind.Path()
	return request.Config{
		Method:  http.MethodGet,
		URL:     path,
		Service: service,
		Params:  DateParams(baseDate),
		// The dashboard-stats endpoints sit behind the bearer guard, so a 401
		// here signs the session out like any other authorized call.
		Authorize: true,
		AutoLoad:  true,
	}
}

// Smedan loads the SMEDAN programme statistics for the day of baseDate.
func Smedan(ctx context.Context, deps request.Deps, baseDate time.Time) *request.Adapter[SmedanStats] {
	return request.New[SmedanStats](ctx, statsConfig(KindSmedan, baseDate), deps, request.Handlers[SmedanStats]{})
}

// D2C loads direct-to-customer statistics.
func D2C(ctx context.Context, deps request.Deps, baseDate time.Time) *request.Adapter[D2CStats] {
	return request.New[D2CStats](ctx, statsConfig(KindD2C, baseDate), deps, request.Handlers[D2CStats]{})
}

// B2B loads partner statistics.
func B2B(ctx context.Context, deps request.Deps, baseDate time.Time) *request.Adapter[B2BStats] {
	return request.New[B2BStats](ctx, statsConfig(KindB2B, baseDate), deps, request.Handlers[B2BStats]{})
}

// Finance loads financial statistics.
func Finance(ctx context.Context, deps request.Deps, baseDate time.Time) *request.Adapter[FinanceStats] {
	return request.New[FinanceStats](ctx, statsConfig(KindFinance, baseDate), deps, request.Handlers[FinanceStats]{})
}

// Customers loads the customer list with the initial query params (page,
// per_page, search). Page changes go through Update with AutoReload set, so
// each one reloads the list.
func Customers(ctx context.Context, deps request.Deps, params map[string]any) *request.Adapter[contracts.Page[Customer]] {
	return request.New[contracts.Page[Customer]](ctx, request.Config{
		Method:     http.MethodGet,
		URL:        "/customer-data",
		Params:     params,
		Authorize:  true,
		AutoLoad:   true,
		AutoReload: true,
	}, deps, request.Handlers[contracts.Page[Customer]]{})
}

// CustomerByID loads a single customer.
func CustomerByID(ctx context.Context, deps request.Deps, id string) *request.Adapter[Customer] {
	return request.New[Customer](ctx, request.Config{
		Method:     http.MethodGet,
		URL:        "/customer-data/{{id}}",
		PathParams: map[string]string{"id": id},
		Authorize:  true,
		AutoLoad:   true,
	}, deps, request.Handlers[Customer]{})
}

// CreateCustomer returns the adapter behind the create customer form. It
// never loads on its own; a form.Binder drives it.
func CreateCustomer(ctx context.Context, deps request.Deps) *request.Adapter[Customer] {
	return request.New[Customer](ctx, request.Config{
		Method:    http.MethodPost,
		URL:       "/customers",
		Authorize: true,
	}, deps, request.Handlers[Customer]{})
}

// NewCustomerForm returns the create customer form with its rules.
func NewCustomerForm() *form.Form {
	return form.NewForm(
		&form.Field{Name: "first_name", Rules: "required,max=100"},
		&form.Field{Name: "last_name", Rules: "required,max=100"},
		&form.Field{Name: "email", Rules: "required,email"},
		&form.Field{Name: "phone", Rules: "omitempty,phone"},
	)
}
