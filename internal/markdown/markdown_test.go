package markdown

import "testing"

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "The slab is ready.",
			expected: "The slab is ready.",
		},
		{
			name:     "strong emphasis",
			input:    "**Slab** is ready.",
			expected: "Slab is ready.",
		},
		{
			name:     "italic emphasis",
			input:    "The pour is *postponed*.",
			expected: "The pour is postponed.",
		},
		{
			name:     "heading and paragraph",
			input:    "# Minutes\n\nThe slab is ready.",
			expected: "Minutes\n\nThe slab is ready.",
		},
		{
			name:     "inline code",
			input:    "Use `grade M25` concrete.",
			expected: "Use grade M25 concrete.",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToPlainText([]byte(tt.input))
			if result != tt.expected {
				t.Errorf("ToPlainText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
