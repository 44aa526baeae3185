package stats

import (
	"context"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/casava/admin-console/src/internal/contracts"
	"github.com/casava/admin-console/src/internal/form"
	"github.com/casava/admin-console/src/internal/mocks"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/services"
	"github.com/casava/admin-console/src/internal/transport"
)

var baseDate = time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("WAT", 3600))

func testDeps(tr *mocks.MockTransport) request.Deps {
	return request.Deps{
		Transport: tr,
		Session:   &mocks.MockSession{Value: "token"},
		Services: services.NewResolver(map[services.Name]string{
			services.Casava: "https://api.casava.test",
			services.Smedan: "https://smedan.casava.test",
		}),
	}
}

func TestDateParams_UsesUTCDay(t *testing.T) {
	want := map[string]any{"start_date": "2024-03-09", "end_date": "2024-03-09"}
	if got := DateParams(baseDate); !reflect.DeepEqual(got, want) {
		t.Errorf("DateParams() = %v, want %v", got, want)
	}
}

func TestSmedan(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return mocks.JSONResponse(http.StatusOK, map[string]any{
				"data": map[string]any{"churn_rate": 5, "total_signup": 40},
			}), nil
		},
	}

	a := Smedan(context.Background(), testDeps(tr), baseDate)
	a.Wait()

	data := a.Data()
	if data == nil || data.Data.ChurnRate != 5 || data.Data.TotalSignup != 40 {
		t.Fatalf("Unexpected data %+v", data)
	}

	req := tr.LastRequest()
	if req.BaseURL != "https://smedan.casava.test" || req.URL != "/dashboard-stats" {
		t.Errorf("Unexpected target %s%s", req.BaseURL, req.URL)
	}
	if req.Params["start_date"] != "2024-03-09" {
		t.Errorf("Unexpected params %v", req.Params)
	}
	if req.Headers["Authorization"] != "Bearer token" {
		t.Errorf("Expected bearer token, got %q", req.Headers["Authorization"])
	}
}

func TestCasavaStatsEndpoints(t *testing.T) {
	tests := []struct {
		kind Kind
		load func(tr *mocks.MockTransport)
	}{
		{KindD2C, func(tr *mocks.MockTransport) { D2C(context.Background(), testDeps(tr), baseDate).Wait() }},
		{KindB2B, func(tr *mocks.MockTransport) { B2B(context.Background(), testDeps(tr), baseDate).Wait() }},
		{KindFinance, func(tr *mocks.MockTransport) { Finance(context.Background(), testDeps(tr), baseDate).Wait() }},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			tr := &mocks.MockTransport{}
			tt.load(tr)

			path, service, ok := tt.kind.Path()
			if !ok || service != services.Casava {
				t.Fatalf("Unexpected path lookup %q %q %v", path, service, ok)
			}
			req := tr.LastRequest()
			if req == nil {
				t.Fatal("Expected one request")
			}
			if req.URL != path || req.BaseURL != "https://api.casava.test" {
				t.Errorf("Unexpected target %s%s", req.BaseURL, req.URL)
			}
		})
	}
}

func TestKind_Path_Unknown(t *testing.T) {
	if _, _, ok := Kind("weekly").Path(); ok {
		t.Error("Expected unknown kind to be rejected")
	}
}

func TestCustomers_PageChangeReloads(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			page := 1
			if p, ok := req.Params["page"].(int); ok {
				page = p
			}
			return mocks.JSONResponse(http.StatusOK, contracts.Paginated[Customer]{
				Success: true,
				Data: &contracts.Page[Customer]{
					Data: []Customer{{ID: "c-1", Email: "ada@casava.test"}},
					Meta: contracts.NewPageMeta("/customer-data", page, 1, 3),
				},
			}), nil
		},
	}

	a := Customers(context.Background(), testDeps(tr), nil)
	a.Wait()
	if got := a.Data().Data.Meta.CurrentPage; got != 1 {
		t.Fatalf("Expected page 1, got %d", got)
	}

	call := a.Update(request.Patch{Params: map[string]any{"page": 2}})
	if call == nil {
		t.Fatal("Expected the page change to reload")
	}
	resp, err := call.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if resp.Data.Meta.CurrentPage != 2 || len(resp.Data.Data) != 1 {
		t.Errorf("Unexpected page %+v", resp.Data)
	}
	if tr.Calls() != 2 {
		t.Errorf("Expected two calls, got %d", tr.Calls())
	}
}

func TestCustomers_InitialParamsLoadOnce(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return mocks.JSONResponse(http.StatusOK, contracts.Paginated[Customer]{
				Success: true,
				Data: &contracts.Page[Customer]{
					Meta: contracts.NewPageMeta("/customer-data", req.Params["page"].(int), 10, 30),
				},
			}), nil
		},
	}

	a := Customers(context.Background(), testDeps(tr), map[string]any{"page": 3, "search": "ada"})
	a.Wait()

	if tr.Calls() != 1 {
		t.Fatalf("Expected a single call, got %d", tr.Calls())
	}
	want := map[string]any{"page": 3, "search": "ada"}
	if got := tr.LastRequest().Params; !reflect.DeepEqual(got, want) {
		t.Errorf("Params = %v, want %v", got, want)
	}
	if got := a.Data().Data.Meta.CurrentPage; got != 3 {
		t.Errorf("Expected page 3, got %d", got)
	}
}

func TestCustomerByID(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return mocks.JSONResponse(http.StatusOK, map[string]any{
				"data": Customer{ID: req.PathParams["id"], FirstName: "Ada"},
			}), nil
		},
	}

	a := CustomerByID(context.Background(), testDeps(tr), "c-42")
	a.Wait()

	if got := a.Data().Data; got.ID != "c-42" || got.FirstName != "Ada" {
		t.Errorf("Unexpected customer %+v", got)
	}
	if tr.LastRequest().URL != "/customer-data/{{id}}" {
		t.Errorf("Expected templated path, got %q", tr.LastRequest().URL)
	}
}

func TestNewCustomerForm_Rules(t *testing.T) {
	f := NewCustomerForm()
	f.Set("first_name", "Ada")
	f.Set("email", "not-an-email")
	f.Set("phone", "12")

	if form.Validate(f) {
		t.Fatal("Expected form to be invalid")
	}

	want := map[string][]string{
		"last_name": {"field is required"},
		"email":     {"must be a valid email address"},
		"phone":     {"must be a valid phone number"},
	}
	if got := f.FieldErrors(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldErrors() = %v, want %v", got, want)
	}
}

func TestCreateCustomer_SubmittedThroughBinder(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return mocks.JSONResponse(http.StatusCreated, map[string]any{
				"message": "Customer created",
				"data":    Customer{ID: "c-1", FirstName: "Ada"},
			}), nil
		},
	}

	a := CreateCustomer(context.Background(), testDeps(tr))
	if tr.Calls() != 0 {
		t.Fatalf("Expected no request before submit, got %d", tr.Calls())
	}

	f := NewCustomerForm()
	f.Set("first_name", "Ada")
	f.Set("last_name", "Okafor")
	f.Set("email", "ada@example.com")

	b := form.NewBinder(f, a, form.BinderOptions[Customer]{WrapperKey: "customer"})
	if err := b.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	req := tr.LastRequest()
	if req.Method != http.MethodPost || req.URL != "/customers" {
		t.Errorf("Unexpected request %s %s", req.Method, req.URL)
	}
	if f.Success == nil || *f.Success != "Customer created" {
		t.Errorf("Unexpected success message %v", f.Success)
	}
	if a.Data().Data.ID != "c-1" {
		t.Errorf("Unexpected stored customer %+v", a.Data().Data)
	}
}
