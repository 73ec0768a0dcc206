package datefmt

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-15", "2025-01-15 00:00:00"},
		{"2025-01-15 10:30", "2025-01-15 10:30:00"},
		{"2025-01-15 10:30:45", "2025-01-15 10:30:45"},
		{"2025-01-15T10:30:45", "2025-01-15 10:30:45"},
		{"2025-01-15T10:30:45+02:00", "2025-01-15 10:30:45"},
		{"15/01/2025", "2025-01-15 00:00:00"},
		{"15/01/2025 08:05", "2025-01-15 08:05:00"},
		{"  2025-01-15  ", "2025-01-15 00:00:00"},
	}
	for _, c := range cases {
		got, err := Normalize(c.in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "2025-13-45", "15-01-2025"} {
		if _, err := Normalize(in); err == nil {
			t.Fatalf("Normalize(%q): expected error", in)
		}
	}
}
