package request

import (
	"maps"

	"github.com/casava/admin-console/src/internal/services"
)

// Config describes the call an adapter performs.
type Config struct {
	Method     string
	URL        string
	PathParams map[string]string
	Headers    map[string]string
	Params     map[string]any
	Data       any
	Service    services.Name

	// Authorize attaches "Authorization: Bearer <token>".
	Authorize bool
	// AutoLoad performs one call as soon as the adapter is created.
	AutoLoad bool
	// AutoReload performs one call after every Update.
	AutoReload bool
	// InitialLoading is the loading state before the first call.
	InitialLoading bool
}

// clone returns a copy whose maps can be modified without affecting c.
func (c Config) clone() Config {
	out := c
	out.PathParams = maps.Clone(c.PathParams)
	out.Headers = maps.Clone(c.Headers)
	out.Params = maps.Clone(c.Params)
	return out
}

// Patch holds the fields Update changes. Nil fields are left as they are;
// non-nil maps replace the stored map.
type Patch struct {
	Method     *string
	URL        *string
	PathParams map[string]string
	Headers    map[string]string
	Params     map[string]any
	Data       any
	Service    *services.Name
	Authorize  *bool
	AutoReload *bool
}

func (c Config) merge(p Patch) Config {
	if p.Method != nil {
		c.Method = *p.Method
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
	if p.PathParams != nil {
		c.PathParams = maps.Clone(p.PathParams)
	}
	if p.Headers != nil {
		c.Headers = maps.Clone(p.Headers)
	}
	if p.Params != nil {
		c.Params = maps.Clone(p.Params)
	}
	if p.Data != nil {
		c.Data = p.Data
	}
	if p.Service != nil {
		c.Service = *p.Service
	}
	if p.Authorize != nil {
		c.Authorize = *p.Authorize
	}
	if p.AutoReload != nil {
		c.AutoReload = *p.AutoReload
	}
	return c
}

// Ptr returns a pointer to v. It is a helper for building a Patch.
func Ptr[V any](v V) *V {
	return &v
}
