package form

import (
	"context"
	"errors"

	"github.com/casava/admin-console/src/internal/request"
)

// ErrInvalid is returned by Submit when client-side validation fails. No
// request is made in that case.
var ErrInvalid = errors.New("form is invalid")

// BinderOptions configure how a form is submitted.
type BinderOptions[T any] struct {
	// UseFormData sends the form as multipart/form-data instead of JSON.
	UseFormData bool
	// WrapperKey nests the body under this key when set.
	WrapperKey string
	Handlers   request.Handlers[T]
}

// Binder submits a form through a request adapter and maps the outcome back
// onto the form.
type Binder[T any] struct {
	form    *Form
	adapter *request.Adapter[T]
	opts    BinderOptions[T]
}

// NewBinder creates a binder for form. The adapter's config supplies method,
// URL and service; the body is replaced on every Submit.
func NewBinder[T any](form *Form, adapter *request.Adapter[T], opts BinderOptions[T]) *Binder[T] {
	return &Binder[T]{form: form, adapter: adapter, opts: opts}
}

// Form returns the bound form.
func (b *Binder[T]) Form() *Form {
	return b.form
}

// Adapter returns the adapter used for submission.
func (b *Binder[T]) Adapter() *request.Adapter[T] {
	return b.adapter
}

// Submit validates the form, sends it and records the outcome in the form's
// Loading, Error and Success slots and in the field errors.
//
// It returns ErrInvalid without calling the adapter when validation fails,
// and otherwise the error returned by the adapter's Load.
func (b *Binder[T]) Submit(ctx context.Context) error {
	if !Validate(b.form) {
		return ErrInvalid
	}

	b.form.Loading = true
	b.form.Error = nil
	b.form.Success = nil
	defer func() {
		b.form.Loading = false
		if b.opts.Handlers.OnFinish != nil {
			b.opts.Handlers.OnFinish()
		}
	}()

	body := wrap(ExtractFormData(b.form, b.opts.UseFormData), b.opts.WrapperKey)
	b.adapter.Set(request.Patch{Data: body})

	resp, err := b.adapter.Load(ctx)
	if err == nil {
		b.form.Success = nonEmpty(resp.Message)
		if b.opts.Handlers.OnSuccess != nil {
			b.opts.Handlers.OnSuccess(resp)
		}
		return nil
	}

	var env *request.ErrorEnvelope
	if errors.As(err, &env) {
		b.form.Error = nonEmpty(env.Message)
		if env.HasFieldErrors() {
			SetFieldErrors(b.form, env.Errors)
		}
		if b.opts.Handlers.OnError != nil {
			b.opts.Handlers.OnError(env)
		}
	}
	return err
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
