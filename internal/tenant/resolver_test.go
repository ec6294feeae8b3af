package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver("shopfront")

	tests := []struct {
		name     string
		host     string
		wantSlug string
		wantOK   bool
	}{
		{
			name:     "Tenant subdomain",
			host:     "nike.example.com",
			wantSlug: "nike",
			wantOK:   true,
		},
		{
			name:     "Tenant subdomain with port",
			host:     "nike.localhost:3012",
			wantSlug: "nike",
			wantOK:   true,
		},
		{
			name:   "www is reserved",
			host:   "www.example.com",
			wantOK: false,
		},
		{
			name:   "Platform name is reserved",
			host:   "shopfront.dev",
			wantOK: false,
		},
		{
			name:   "localhost label is reserved",
			host:   "localhost.localdomain",
			wantOK: false,
		},
		{
			name:   "Single-label host has no tenant",
			host:   "localhost",
			wantOK: false,
		},
		{
			name:   "Single-label host with port has no tenant",
			host:   "localhost:3012",
			wantOK: false,
		},
		{
			name:   "Empty host",
			host:   "",
			wantOK: false,
		},
		{
			name:   "Empty first label",
			host:   ".example.com",
			wantOK: false,
		},
		{
			name:     "Deep subdomain takes the first label",
			host:     "nike.shops.example.com",
			wantSlug: "nike",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, ok := resolver.Resolve(tt.host)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSlug, slug)
		})
	}
}
