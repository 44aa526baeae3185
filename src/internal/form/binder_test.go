package form

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/casava/admin-console/src/internal/mocks"
	"github.com/casava/admin-console/src/internal/request"
	"github.com/casava/admin-console/src/internal/services"
	"github.com/casava/admin-console/src/internal/transport"
)

type createdCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newCustomerForm() *Form {
	return NewForm(
		&Field{Name: "email", Rules: "required,email"},
		&Field{Name: "first_name", Rules: "required"},
	)
}

func newAdapter(tr transport.Transport) *request.Adapter[createdCustomer] {
	return request.New[createdCustomer](context.Background(), request.Config{
		Method:    http.MethodPost,
		URL:       "/customers",
		Authorize: true,
	}, request.Deps{
		Transport: tr,
		Session:   &mocks.MockSession{Value: "token"},
		Services:  services.NewResolver(map[services.Name]string{services.Casava: "https://api.casava.test"}),
	}, request.Handlers[createdCustomer]{})
}

func TestSubmit_InvalidFormNeverCallsTransport(t *testing.T) {
	tr := &mocks.MockTransport{}
	form := newCustomerForm()
	form.Set("email", "ada@casava.test")

	finished := false
	binder := NewBinder(form, newAdapter(tr), BinderOptions[createdCustomer]{
		Handlers: request.Handlers[createdCustomer]{OnFinish: func() { finished = true }},
	})

	err := binder.Submit(context.Background())
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Submit() error = %v, want ErrInvalid", err)
	}
	if tr.Calls() != 0 {
		t.Errorf("Expected no transport calls, got %d", tr.Calls())
	}
	if form.Loading || form.Error != nil || form.Success != nil {
		t.Errorf("Expected form slots untouched, got loading=%v error=%v success=%v", form.Loading, form.Error, form.Success)
	}
	if !reflect.DeepEqual(form.Field("first_name").Errors, []string{"field is required"}) {
		t.Errorf("Expected first_name to be annotated, got %v", form.Field("first_name").Errors)
	}
	if finished {
		t.Error("OnFinish must not run when validation fails")
	}
}

func TestSubmit_FieldErrorsFromBackend(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return nil, mocks.StatusError(http.StatusUnprocessableEntity, map[string]any{
				"message": "Invalid",
				"errors":  map[string][]string{"email": {"required"}},
			})
		},
	}
	form := newCustomerForm()
	form.Set("email", "ada@casava.test")
	form.Set("first_name", "Ada")

	var gotErr *request.ErrorEnvelope
	finished := 0
	binder := NewBinder(form, newAdapter(tr), BinderOptions[createdCustomer]{
		Handlers: request.Handlers[createdCustomer]{
			OnError:  func(env *request.ErrorEnvelope) { gotErr = env },
			OnFinish: func() { finished++ },
		},
	})

	err := binder.Submit(context.Background())
	if err == nil {
		t.Fatal("Expected an error")
	}

	if form.Error == nil || *form.Error != "Invalid" {
		t.Errorf("Expected form error %q, got %v", "Invalid", form.Error)
	}
	if !reflect.DeepEqual(form.Field("email").Errors, []string{"required"}) {
		t.Errorf("Expected email errors [required], got %v", form.Field("email").Errors)
	}
	if form.Success != nil {
		t.Errorf("Expected no success message, got %q", *form.Success)
	}
	if form.Loading {
		t.Error("Expected loading to be cleared")
	}
	if gotErr == nil || gotErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("Expected OnError with the 422 envelope, got %+v", gotErr)
	}
	if finished != 1 {
		t.Errorf("Expected OnFinish once, got %d", finished)
	}
}

func TestSubmit_Success(t *testing.T) {
	var loadingDuringCall bool
	var form *Form
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			loadingDuringCall = form.Loading
			return mocks.JSONResponse(http.StatusCreated, map[string]any{
				"data":    map[string]any{"id": "c-1", "email": "ada@casava.test"},
				"message": "Customer created",
			}), nil
		},
	}
	form = newCustomerForm()
	form.Set("email", "ada@casava.test")
	form.Set("first_name", "Ada")
	previous := "stale"
	form.Error = &previous

	var got *request.Response[createdCustomer]
	binder := NewBinder(form, newAdapter(tr), BinderOptions[createdCustomer]{
		WrapperKey: "customer",
		Handlers: request.Handlers[createdCustomer]{
			OnSuccess: func(resp *request.Response[createdCustomer]) { got = resp },
		},
	})

	if err := binder.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !loadingDuringCall {
		t.Error("Expected form loading while the request is in flight")
	}
	if form.Loading {
		t.Error("Expected loading to be cleared")
	}
	if form.Error != nil {
		t.Errorf("Expected error to be cleared, got %q", *form.Error)
	}
	if form.Success == nil || *form.Success != "Customer created" {
		t.Errorf("Expected success message, got %v", form.Success)
	}
	if got == nil || got.Data.ID != "c-1" {
		t.Errorf("Expected OnSuccess with the created customer, got %+v", got)
	}

	wantBody := map[string]any{"customer": map[string]any{"email": "ada@casava.test", "first_name": "Ada"}}
	if !reflect.DeepEqual(tr.LastRequest().Data, wantBody) {
		t.Errorf("Request body = %v, want %v", tr.LastRequest().Data, wantBody)
	}
	if tr.LastRequest().Headers["Authorization"] != "Bearer token" {
		t.Errorf("Expected bearer token, got %q", tr.LastRequest().Headers["Authorization"])
	}
}

func TestSubmit_Multipart(t *testing.T) {
	tr := &mocks.MockTransport{}
	form := newCustomerForm()
	form.Set("email", "ada@casava.test")
	form.Set("first_name", "Ada")

	binder := NewBinder(form, newAdapter(tr), BinderOptions[createdCustomer]{UseFormData: true})
	if err := binder.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	body, ok := tr.LastRequest().Data.(*transport.Multipart)
	if !ok {
		t.Fatalf("Expected multipart body, got %T", tr.LastRequest().Data)
	}
	if body.Get("email") != "ada@casava.test" {
		t.Errorf("Unexpected multipart fields %v", body.Fields)
	}
	if form.Success != nil {
		t.Errorf("Expected nil success without a message, got %q", *form.Success)
	}
}

func TestSubmit_SignedOutLeavesFormError(t *testing.T) {
	tr := &mocks.MockTransport{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return nil, mocks.StatusError(http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
		},
	}
	form := newCustomerForm()
	form.Set("email", "ada@casava.test")
	form.Set("first_name", "Ada")

	err := NewBinder(form, newAdapter(tr), BinderOptions[createdCustomer]{}).Submit(context.Background())
	if !errors.Is(err, request.ErrSignedOut) {
		t.Fatalf("Submit() error = %v, want ErrSignedOut", err)
	}
	if form.Error != nil {
		t.Errorf("Expected no form error on sign-out, got %q", *form.Error)
	}
	if form.Loading {
		t.Error("Expected loading to be cleared")
	}
}
