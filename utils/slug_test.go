package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Festival Offerings", "festival-offerings"},
		{"ampersand", "Pujas & Vrat", "pujas-vrat"},
		{"already slug", "pujas", "pujas"},
		{"mixed case", "GRIHA Pravesh", "griha-pravesh"},
		{"leading and trailing junk", "  --Navratri!!  ", "navratri"},
		{"multiple separators", "Satyanarayan   /  Katha", "satyanarayan-katha"},
		{"digits", "Diwali 2025 Special", "diwali-2025-special"},
		{"empty", "", ""},
		{"only punctuation", "&&&", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
