package verify

import (
	"context"
	"net"
)

// MXLookuper resolves mail-exchange records for a domain. *net.Resolver
// satisfies it; tests substitute a stub.
type MXLookuper interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// HasMX reports whether domain has at least one MX record. The lookup is
// bounded by the verifier's timeout; timeouts, NXDOMAIN, and malformed
// domains all collapse to false. A failed lookup is indistinguishable from
// an absent record.
func (v *Verifier) HasMX(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, v.mxTimeout)
	defer cancel()

	records, err := v.resolver.LookupMX(ctx, domain)
	if err != nil {
		return false
	}
	return len(records) > 0
}
