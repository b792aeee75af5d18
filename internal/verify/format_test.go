package verify

import "testing"

func TestValidFormat(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"a@b.c", true},
		{"", false},
		{"not-an-email", false},
		{"no-domain@", false},
		{"@no-local.com", false},
		{"missing-dot@example", false},
		{"space in@example.com", false},
		{"user@space in.com", false},
		{"user@example.", false},
		{"user@.com", false},
		{"user@@example.com", false},
	}
	for _, c := range cases {
		if got := ValidFormat(c.email); got != c.want {
			t.Errorf("ValidFormat(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestDomain(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"user@Example.COM", "example.com"},
		{"user@a@b", "a@b"}, // everything after the first '@'
		{"no-at-sign", ""},
		{"", ""},
		{"trailing@", ""},
	}
	for _, c := range cases {
		if got := Domain(c.email); got != c.want {
			t.Errorf("Domain(%q) = %q, want %q", c.email, got, c.want)
		}
	}
}
