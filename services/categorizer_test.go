package services

import "testing"

func TestStaticCategory(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"netflix", "Entertainment"},
		{"netflix monthly subscription", "Entertainment"},
		{"rent", "Housing"},
		{"payment to landlord for march", "Housing"},
		{"uber ride downtown", "Transport"},
		{"monthly payroll deposit", "Salary"},
		{"something unrecognizable", "Other"},
		{"", "Other"},
	}

	for _, tc := range cases {
		if got := staticCategory(tc.description); got != tc.want {
			t.Errorf("staticCategory(%q) = %q, want %q", tc.description, got, tc.want)
		}
	}
}
