package verify

import (
	"context"
	"net"
	"time"
)

// Failure reasons, reported in this fixed order.
const (
	ReasonInvalidFormat = "invalid_format"
	ReasonNoMX          = "no_mx"
	ReasonDisposable    = "disposable"
)

// DefaultMXTimeout bounds a single DNS round trip.
const DefaultMXTimeout = 3 * time.Second

// Checks holds the per-check outcomes of a verification.
type Checks struct {
	FormatOk     bool `json:"formatOk"`
	MxOk         bool `json:"mxOk"`
	IsDisposable bool `json:"isDisposable"`
}

// Result is the verdict for a single address.
type Result struct {
	Email  string   `json:"email"`
	Valid  bool     `json:"valid"`
	Reason []string `json:"reason"`
	Checks Checks   `json:"checks"`
}

// Verifier runs the three verification checks. Safe for concurrent use; it
// holds no mutable state after construction.
type Verifier struct {
	resolver   MXLookuper
	disposable map[string]struct{}
	mxTimeout  time.Duration
}

// New creates a verifier. A nil resolver falls back to net.DefaultResolver,
// an empty domain list to DefaultDisposableDomains, and a zero timeout to
// DefaultMXTimeout.
func New(resolver MXLookuper, disposableDomains []string, mxTimeout time.Duration) *Verifier {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if len(disposableDomains) == 0 {
		disposableDomains = DefaultDisposableDomains
	}
	if mxTimeout <= 0 {
		mxTimeout = DefaultMXTimeout
	}

	set := make(map[string]struct{}, len(disposableDomains))
	for _, d := range disposableDomains {
		set[d] = struct{}{}
	}
	return &Verifier{resolver: resolver, disposable: set, mxTimeout: mxTimeout}
}

// Verify runs all three checks against email and composes the verdict.
// The MX lookup runs unconditionally, even for addresses that already
// failed the format check; resolving an empty or garbage domain yields
// mxOk=false rather than an error. Callers must reject empty input before
// calling.
func (v *Verifier) Verify(ctx context.Context, email string) Result {
	formatOk := ValidFormat(email)
	domain := Domain(email)
	isDisposable := v.IsDisposable(domain)
	mxOk := v.HasMX(ctx, domain)

	reason := make([]string, 0, 3)
	if !formatOk {
		reason = append(reason, ReasonInvalidFormat)
	}
	if !mxOk {
		reason = append(reason, ReasonNoMX)
	}
	if isDisposable {
		reason = append(reason, ReasonDisposable)
	}

	return Result{
		Email:  email,
		Valid:  formatOk && mxOk && !isDisposable,
		Reason: reason,
		Checks: Checks{FormatOk: formatOk, MxOk: mxOk, IsDisposable: isDisposable},
	}
}
