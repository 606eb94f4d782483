package core

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sugar", "sugar"},
		{" Sugar ", "sugar"},
		{"SUGAR", "sugar"},
		{"Beef Fillet", "beef-fillet"},
		{" beef  fillet ", "beef-fillet"},
		{"Beef - Fillet", "beef-fillet"},
		{"Cooking Oil (5L)", "cooking-oil-5l"},
		{"Chai & Mandazi", "chai-mandazi"},
		{"trailing space ", "trailing-space"},
		{"tab\tseparated", "tab-separated"},
		{"snake_case", "snake_case"},
		{"123", "123"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
