package utils

import (
	"strings"
	"testing"
)

func TestMaskString(t *testing.T) {
	orig := IsProduction
	defer func() { IsProduction = orig }()

	IsProduction = false
	if got := MaskString("mail someone@example.com paid 42.50 USD"); got != "mail someone@example.com paid 42.50 USD" {
		t.Errorf("development mode must not mask, got %q", got)
	}

	IsProduction = true
	got := MaskString("mail someone@example.com paid 42.50 USD id 123e4567-e89b-12d3-a456-426614174000")
	if strings.Contains(got, "someone@example.com") {
		t.Errorf("email not masked: %q", got)
	}
	if strings.Contains(got, "42.50 USD") {
		t.Errorf("amount not masked: %q", got)
	}
	if strings.Contains(got, "426614174000") {
		t.Errorf("uuid not shortened: %q", got)
	}
}

func TestMaskID(t *testing.T) {
	orig := IsProduction
	defer func() { IsProduction = orig }()

	IsProduction = true
	if got := MaskID("123e4567-e89b-12d3"); got != "123e4567..." {
		t.Errorf("MaskID = %q, want first 8 chars", got)
	}
	if got := MaskID("short"); got != "***" {
		t.Errorf("MaskID short = %q, want ***", got)
	}
}
