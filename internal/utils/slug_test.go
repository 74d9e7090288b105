package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Estate Planning Essentials: Protecting Your Family's Future", "estate-planning-essentials-protecting-your-familys-future"},
		{"Wills & Power of Attorney", "wills-and-power-of-attorney"},
		{"  LMIA / Work Permits  ", "lmia-work-permits"},
		{"Already-a-slug", "already-a-slug"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
