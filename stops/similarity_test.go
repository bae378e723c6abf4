package stops_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/route-chat/stops"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "charbagh", "charbagh", 1},
		{"empty left", "", "charbagh", 0},
		{"empty right", "charbagh", "", 0},
		{"two edits", "gomti ngr", "gomti nagar", 1 - 2.0/11},
		{"containment bonus", "gomti", "gomti nagar", 1 - 6.0/11 + 0.2},
		{"bonus capped at one", "gomti nagarr", "gomti nagar", 1},
		{"unrelated", "mars base", "alambagh", 1 - 6.0/9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stops.Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if rev := stops.Similarity(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, not symmetric with %v", tt.b, tt.a, rev, got)
			}
		})
	}
}

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		candidates []string
		wantName   string
		wantOK     bool
	}{
		{"unique winner", "aaad", []string{"aaab", "xyz"}, "aaab", true},
		{"tie rejected", "aaad", []string{"aaab", "aaac"}, "", false},
		{"below threshold", "zzzz", []string{"aaab"}, "", false},
		{"no candidates", "aaad", nil, "", false},
		{"duplicate candidate is not a tie", "aaad", []string{"aaab", "aaab"}, "aaab", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := stops.BestMatch(tt.text, tt.candidates, 0.6)
			if ok != tt.wantOK || got != tt.wantName {
				t.Errorf("BestMatch(%q, %v) = %q, %t, want %q, %t",
					tt.text, tt.candidates, got, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestBestMatchReportsScore(t *testing.T) {
	_, score, ok := stops.BestMatch("aaad", []string{"aaab"}, 0.6)
	if !ok {
		t.Fatal("expected a match")
	}
	if math.Abs(score-0.75) > 1e-9 {
		t.Errorf("score = %v, want 0.75", score)
	}
}
