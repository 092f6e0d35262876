package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Real-world header examples
		{"child one", "child one", 0},
		{"Child one", "child One", 2}, // case difference
		{"pricecents", "totalcents", 5},
		{"createdat", "updatedat", 3}, // c->u, r->p, e->d
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Identical strings
		{"", "", 1.0},
		{"hello", "hello", 1.0},

		// Completely different
		{"abc", "xyz", 0.0},

		// Partial matches
		{"kitten", "sitting", 1.0 - 3.0/7.0}, // ~0.571
		{"abc", "ab", 1.0 - 1.0/3.0},         // ~0.667
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			// Allow small floating point tolerance
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestLevenshtein_Runes(t *testing.T) {
	// One rune substitution, not two bytes
	if d := Levenshtein("Größe", "Grösse"); d != 2 {
		t.Errorf("Levenshtein(Größe, Grösse) = %d, want 2", d)
	}

	if d := Levenshtein("Año", "Ano"); d != 1 {
		t.Errorf("Levenshtein(Año, Ano) = %d, want 1", d)
	}
}

func TestLabelSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
		maxScore float64
	}{
		// Identical after folding case and punctuation
		{"Child one", "child-one", 1.0, 1.0},
		{"Price (USD)", "price usd", 1.0, 1.0},

		// Typos stay close
		{"Child one", "Chlid one", 0.7, 0.99},
		{"Total amount", "Total amonut", 0.8, 0.99},

		// Unrelated labels
		{"Email", "Password", 0.0, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LabelSimilarity(tt.a, tt.b)
			if result < tt.minScore || result > tt.maxScore {
				t.Errorf("LabelSimilarity(%q, %q) = %f, want in [%f, %f]",
					tt.a, tt.b, result, tt.minScore, tt.maxScore)
			}
		})
	}
}

// Benchmark tests
func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}
