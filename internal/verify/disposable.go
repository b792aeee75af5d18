package verify

// DefaultDisposableDomains is the seed set of known throwaway-email
// providers. It is a placeholder for an externally sourced list; the set is
// injected at construction and never grows at runtime.
var DefaultDisposableDomains = []string{
	"mailinator.com",
	"10minutemail.com",
	"tempmail.com",
	"dispostable.com",
}

// IsDisposable reports whether the given lowercase domain is in the
// configured disposable set. O(1), pure.
func (v *Verifier) IsDisposable(domain string) bool {
	_, ok := v.disposable[domain]
	return ok
}
