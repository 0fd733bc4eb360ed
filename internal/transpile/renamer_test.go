package transpile

import "testing"

func TestLatinRenamer(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"سلام", "slam"},
		{"أحمد", "a7md"},
		{"مَرْحَبًا", "mr7ba"},
		{"شيء", "shy2"},
		{"عدد", "_3dd"},
		{"x١٢", "x12"},
		{"كتـــاب", "ktab"},
		{"if", "if_"},
		{"a$", "a_u0024"},
		{"", "_"},
		{"plain_name", "plain_name"},
	}
	r := LatinRenamer{}
	for _, tt := range tests {
		if got := r.Rename(tt.raw); got != tt.want {
			t.Errorf("Rename(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIdentityRenamer(t *testing.T) {
	if got := (IdentityRenamer{}).Rename("مرحبا"); got != "مرحبا" {
		t.Fatalf("IdentityRenamer changed the name: %q", got)
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := map[string]string{
		"42":   "42",
		"3,14": "3.14",
		"٣,١٤": "3.14",
		"۱۲":   "12",
	}
	for in, want := range tests {
		if got := normalizeNumber(in); got != want {
			t.Errorf("normalizeNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
