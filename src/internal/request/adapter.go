package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/casava/admin-console/src/internal/log"
	"github.com/casava/admin-console/src/internal/services"
	"github.com/casava/admin-console/src/internal/session"
	"github.com/casava/admin-console/src/internal/transport"
)

var (
	// ErrCanceled is returned by Load when the call was aborted by the caller.
	ErrCanceled = errors.New("request canceled")

	// ErrSignedOut is returned by Load when an authorized call was rejected
	// with 401 and the session was signed out.
	ErrSignedOut = errors.New("session signed out")
)

// Deps are the collaborators an adapter calls.
type Deps struct {
	Transport transport.Transport
	Session   session.Provider
	Services  *services.Resolver
}

// Handlers are optional callbacks run after every call.
type Handlers[T any] struct {
	OnSuccess func(*Response[T])
	OnError   func(*ErrorEnvelope)
	OnFinish  func()
}

// State is a snapshot of an adapter's state.
type State[T any] struct {
	Loading bool
	Data    *Response[T]
	Error   *ErrorEnvelope
}

// Adapter performs one configured HTTP call on demand and keeps the outcome
// of the latest call.
type Adapter[T any] struct {
	deps     Deps
	handlers Handlers[T]
	ctx      context.Context

	mu          sync.Mutex
	cfg         Config
	state       State[T]
	generation  uint64
	subscribers map[int]func(State[T])
	nextSub     int

	wg sync.WaitGroup
}

// New creates an adapter. ctx bounds the calls the adapter starts on its own
// (AutoLoad and AutoReload); calls started through Load or Go use the context
// passed to them.
func New[T any](ctx context.Context, cfg Config, deps Deps, handlers Handlers[T]) *Adapter[T] {
	if deps.Services == nil {
		deps.Services = services.NewResolver(nil)
	}
	a := &Adapter[T]{
		deps:        deps,
		handlers:    handlers,
		ctx:         ctx,
		cfg:         cfg.clone(),
		state:       State[T]{Loading: cfg.InitialLoading},
		subscribers: make(map[int]func(State[T])),
	}

	if cfg.AutoLoad {
		a.Go(ctx)
	}
	return a
}

// Load performs one call with the current config and waits for it.
//
// On success the response is stored and returned. A canceled call returns
// ErrCanceled, a 401 on an authorized call returns ErrSignedOut, and any other
// failure returns the stored *ErrorEnvelope.
func (a *Adapter[T]) Load(ctx context.Context) (*Response[T], error) {
	gen, cfg := a.begin()
	defer a.wg.Done()
	return a.run(ctx, gen, cfg)
}

// Call is a call started by Go.
type Call[T any] struct {
	done chan struct{}
	resp *Response[T]
	err  error
}

// Wait blocks until the call finishes and returns its result.
func (c *Call[T]) Wait() (*Response[T], error) {
	<-c.done
	return c.resp, c.err
}

// Done is closed when the call finishes.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Go starts a call in the background. Loading is set before Go returns.
func (a *Adapter[T]) Go(ctx context.Context) *Call[T] {
	gen, cfg := a.begin()
	call := &Call[T]{done: make(chan struct{})}
	go func() {
		defer a.wg.Done()
		defer close(call.done)
		call.resp, call.err = a.run(ctx, gen, cfg)
	}()
	return call
}

// Set merges p into the stored config for the next call.
func (a *Adapter[T]) Set(p Patch) {
	a.mu.Lock()
	a.cfg = a.cfg.merge(p)
	a.mu.Unlock()
}

// Update merges p into the stored config. When AutoReload is set the change
// starts a call, which is returned; otherwise Update returns nil.
func (a *Adapter[T]) Update(p Patch) *Call[T] {
	a.mu.Lock()
	a.cfg = a.cfg.merge(p)
	reload := a.cfg.AutoReload
	a.mu.Unlock()

	if !reload {
		return nil
	}
	return a.Go(a.ctx)
}

// Wait blocks until every call in flight has finished.
func (a *Adapter[T]) Wait() {
	a.wg.Wait()
}

// Config returns a copy of the stored config.
func (a *Adapter[T]) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.clone()
}

// State returns a snapshot of the adapter state.
func (a *Adapter[T]) State() State[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Loading reports whether the latest call is in flight.
func (a *Adapter[T]) Loading() bool {
	return a.State().Loading
}

// Data returns the response of the latest successful call, or nil.
func (a *Adapter[T]) Data() *Response[T] {
	return a.State().Data
}

// Err returns the error of the latest failed call, or nil.
func (a *Adapter[T]) Err() *ErrorEnvelope {
	return a.State().Error
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (a *Adapter[T]) Subscribe(fn func(State[T])) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subscribers[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subscribers, id)
		a.mu.Unlock()
	}
}

// begin marks a new call as the latest and returns its generation with a
// snapshot of the config.
func (a *Adapter[T]) begin() (uint64, Config) {
	a.wg.Add(1)

	a.mu.Lock()
	a.generation++
	gen := a.generation
	cfg := a.cfg.clone()
	a.state.Loading = true
	a.mu.Unlock()

	a.notify()
	return gen, cfg
}

// finish applies fn to the state and clears loading if gen is still the
// latest call. It reports whether the state was changed.
func (a *Adapter[T]) finish(gen uint64, fn func(*State[T])) bool {
	a.mu.Lock()
	latest := gen == a.generation
	if latest {
		if fn != nil {
			fn(&a.state)
		}
		a.state.Loading = false
	}
	a.mu.Unlock()

	if latest {
		a.notify()
	}
	return latest
}

func (a *Adapter[T]) notify() {
	a.mu.Lock()
	state := a.state
	subs := make([]func(State[T]), 0, len(a.subscribers))
	for _, fn := range a.subscribers {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

func (a *Adapter[T]) run(ctx context.Context, gen uint64, cfg Config) (*Response[T], error) {
	defer func() {
		if a.handlers.OnFinish != nil {
			a.handlers.OnFinish()
		}
	}()

	req := a.newRequest(cfg)

	resp, err := a.deps.Transport.Do(ctx, req)
	if err == nil {
		var out *Response[T]
		out, err = decodeResponse[T](resp)
		if err == nil {
			a.finish(gen, func(s *State[T]) {
				s.Data = out
				s.Error = nil
			})
			if a.handlers.OnSuccess != nil {
				a.handlers.OnSuccess(out)
			}
			return out, nil
		}
	}

	if transport.IsCancel(err) {
		log.Debugf("%s %s canceled", req.Method, cfg.URL)
		a.finish(gen, nil)
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	if r := transport.ResponseOf(err); cfg.Authorize && r != nil && r.Status == http.StatusUnauthorized {
		log.Warnf("%s %s rejected the session, signing out", req.Method, cfg.URL)
		if a.deps.Session != nil {
			a.deps.Session.SignOut()
		}
		a.finish(gen, nil)
		return nil, ErrSignedOut
	}

	env := normalizeError(err)
	log.Infof("%s %s failed: %v", req.Method, cfg.URL, env)
	a.finish(gen, func(s *State[T]) {
		s.Error = env
	})
	if a.handlers.OnError != nil {
		a.handlers.OnError(env)
	}
	return nil, env
}

// newRequest builds the transport request for cfg. Headers are copied so
// the stored config is never modified.
func (a *Adapter[T]) newRequest(cfg Config) *transport.Request {
	headers := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	if cfg.Authorize {
		token := ""
		if a.deps.Session != nil {
			token = a.deps.Session.Token()
		}
		headers["Authorization"] = "Bearer " + token
	}

	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	return &transport.Request{
		Method:     method,
		BaseURL:    a.deps.Services.BaseURL(cfg.Service),
		URL:        cfg.URL,
		PathParams: cfg.PathParams,
		Headers:    headers,
		Params:     cfg.Params,
		Data:       cfg.Data,
	}
}
