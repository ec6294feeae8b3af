// Package tenant derives a tenant slug from the request Host header.
package tenant

import "strings"

// Resolver maps host strings to tenant slugs. The platform name (the first
// label of the apex domain), "www" and "localhost" are reserved and never
// resolve to a tenant.
type Resolver struct {
	platformName string
}

func NewResolver(platformName string) *Resolver {
	return &Resolver{platformName: platformName}
}

// Resolve returns the tenant slug for the given host, or ok=false when the
// request targets the main/dashboard context. The first host label is the
// candidate; single-label hosts have no tenant. No normalization is applied
// beyond stripping the port.
func (r *Resolver) Resolve(host string) (slug string, ok bool) {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return "", false
	}

	first := labels[0]
	switch first {
	case "", "www", "localhost", r.platformName:
		return "", false
	}
	return first, true
}
