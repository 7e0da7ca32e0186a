package jpnum

import "testing"

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "first", n: 1, expected: "一"},
		{name: "third", n: 3, expected: "三"},
		{name: "tenth", n: 10, expected: "十"},
		{name: "eleventh falls back to Arabic", n: 11, expected: "11"},
		{name: "twentieth", n: 20, expected: "20"},
		{name: "zero is out of kanji range", n: 0, expected: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Ordinal(tt.n)
			if got != tt.expected {
				t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}
}

func TestProblemLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "first problem", n: 1, expected: "第一問"},
		{name: "tenth problem", n: 10, expected: "第十問"},
		{name: "eleventh problem", n: 11, expected: "第11問"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ProblemLabel(tt.n)
			if got != tt.expected {
				t.Errorf("ProblemLabel(%d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}
}
