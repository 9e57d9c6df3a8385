package service

import "testing"

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty stays empty", "", ""},
		{"short token fully masked", "abc", "****"},
		{"exactly four chars fully masked", "abcd", "****"},
		{"long token keeps last four", "sk-prod-1234567890", "****7890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.token); got != tt.want {
				t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsMaskedToken(t *testing.T) {
	if !IsMaskedToken("****7890") {
		t.Error("IsMaskedToken(masked) = false, want true")
	}
	if IsMaskedToken("sk-prod-1234567890") {
		t.Error("IsMaskedToken(raw token) = true, want false")
	}
}
