package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ana@Example.COM", "ana@example.com"},
		{"  ana@example.com  ", "ana@example.com"},
		{"ana@example.com", "ana@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// Addresses without a usable domain fail before any DNS lookup.
	for _, email := range []string{"", "plainaddress", "@example.com", "ana@", "@"} {
		if IsEmailDomainValid(email) {
			t.Fatalf("IsEmailDomainValid(%q) = true", email)
		}
	}
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ana@example.com", "example.com"},
		{`"a@b"@example.com`, "example.com"},
		{"ana@", ""},
		{"@example.com", ""},
		{"plainaddress", ""},
	}

	for _, tt := range tests {
		if got := emailDomain(tt.in); got != tt.want {
			t.Fatalf("emailDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
