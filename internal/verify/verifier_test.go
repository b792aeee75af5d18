package verify

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubResolver returns a canned MX answer.
type stubResolver struct {
	mx  []*net.MX
	err error
}

func (s stubResolver) LookupMX(_ context.Context, _ string) ([]*net.MX, error) {
	return s.mx, s.err
}

func withMX() stubResolver {
	return stubResolver{mx: []*net.MX{{Host: "mx1.example.com.", Pref: 10}}}
}

func withoutMX() stubResolver {
	return stubResolver{}
}

// All eight combinations of formatOk × mxOk × isDisposable, asserting the
// verdict and the exact reason order.
func TestVerifyAllCheckCombinations(t *testing.T) {
	cases := []struct {
		name       string
		email      string
		resolver   stubResolver
		wantChecks Checks
		wantValid  bool
		wantReason []string
	}{
		{
			name:       "format ok, mx ok, not disposable",
			email:      "user@good.com",
			resolver:   withMX(),
			wantChecks: Checks{FormatOk: true, MxOk: true, IsDisposable: false},
			wantValid:  true,
			wantReason: []string{},
		},
		{
			name:       "format ok, no mx, not disposable",
			email:      "user@good.com",
			resolver:   withoutMX(),
			wantChecks: Checks{FormatOk: true, MxOk: false, IsDisposable: false},
			wantValid:  false,
			wantReason: []string{ReasonNoMX},
		},
		{
			name:       "format ok, mx ok, disposable",
			email:      "user@mailinator.com",
			resolver:   withMX(),
			wantChecks: Checks{FormatOk: true, MxOk: true, IsDisposable: true},
			wantValid:  false,
			wantReason: []string{ReasonDisposable},
		},
		{
			name:       "format ok, no mx, disposable",
			email:      "user@mailinator.com",
			resolver:   withoutMX(),
			wantChecks: Checks{FormatOk: true, MxOk: false, IsDisposable: true},
			wantValid:  false,
			wantReason: []string{ReasonNoMX, ReasonDisposable},
		},
		{
			name:       "bad format, mx ok, not disposable",
			email:      "bad address@good.com",
			resolver:   withMX(),
			wantChecks: Checks{FormatOk: false, MxOk: true, IsDisposable: false},
			wantValid:  false,
			wantReason: []string{ReasonInvalidFormat},
		},
		{
			name:       "bad format, no mx, not disposable",
			email:      "bad address@good.com",
			resolver:   withoutMX(),
			wantChecks: Checks{FormatOk: false, MxOk: false, IsDisposable: false},
			wantValid:  false,
			wantReason: []string{ReasonInvalidFormat, ReasonNoMX},
		},
		{
			name:       "bad format, mx ok, disposable",
			email:      "bad address@mailinator.com",
			resolver:   withMX(),
			wantChecks: Checks{FormatOk: false, MxOk: true, IsDisposable: true},
			wantValid:  false,
			wantReason: []string{ReasonInvalidFormat, ReasonDisposable},
		},
		{
			name:       "bad format, no mx, disposable",
			email:      "bad address@mailinator.com",
			resolver:   withoutMX(),
			wantChecks: Checks{FormatOk: false, MxOk: false, IsDisposable: true},
			wantValid:  false,
			wantReason: []string{ReasonInvalidFormat, ReasonNoMX, ReasonDisposable},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(tc.resolver, nil, time.Second)
			res := v.Verify(context.Background(), tc.email)

			assert.Equal(t, tc.email, res.Email)
			assert.Equal(t, tc.wantChecks, res.Checks)
			assert.Equal(t, tc.wantValid, res.Valid)
			assert.Equal(t, tc.wantReason, res.Reason)
		})
	}
}

func TestVerifyDisposableWithMXIsInvalid(t *testing.T) {
	// mailinator.com resolves fine in the real world; disposable alone must
	// sink the verdict.
	v := New(withMX(), nil, time.Second)
	res := v.Verify(context.Background(), "user@mailinator.com")

	assert.True(t, res.Checks.FormatOk)
	assert.True(t, res.Checks.MxOk)
	assert.True(t, res.Checks.IsDisposable)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{ReasonDisposable}, res.Reason)
}

func TestVerifySeedDisposableDomains(t *testing.T) {
	v := New(withMX(), nil, time.Second)
	for _, d := range DefaultDisposableDomains {
		assert.True(t, v.IsDisposable(d), "seed domain %s", d)
		res := v.Verify(context.Background(), "user@"+d)
		assert.True(t, res.Checks.IsDisposable, "verify against %s", d)
	}
	assert.False(t, v.IsDisposable("example.com"))
}

func TestVerifyDisposableCaseInsensitiveDomain(t *testing.T) {
	v := New(withMX(), nil, time.Second)
	res := v.Verify(context.Background(), "user@MAILINATOR.com")
	assert.True(t, res.Checks.IsDisposable)
}

func TestVerifyCustomDisposableSet(t *testing.T) {
	v := New(withMX(), []string{"trashbox.dev"}, time.Second)
	assert.True(t, v.IsDisposable("trashbox.dev"))
	// custom set replaces, not extends, the seed
	assert.False(t, v.IsDisposable("mailinator.com"))
}

func TestHasMXCollapsesLookupErrors(t *testing.T) {
	v := New(stubResolver{err: errors.New("dns: NXDOMAIN")}, nil, time.Second)
	assert.False(t, v.HasMX(context.Background(), "good.com"))
}

func TestVerifyEmptyReasonMarshalsAsEmptyArray(t *testing.T) {
	v := New(withMX(), nil, time.Second)
	res := v.Verify(context.Background(), "user@good.com")

	data, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"reason":[]`)
}
