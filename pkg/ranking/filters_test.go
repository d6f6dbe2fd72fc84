package ranking

import "testing"

func TestHasCommonPrefix(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"return", true},
		{"bicycle", true},
		{"inside", true},
		{"undo", true},
		{"nonsense", true},
		{"dog", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasCommonPrefix(tt.word); got != tt.expected {
			t.Errorf("HasCommonPrefix(%q) = %v, want %v", tt.word, got, tt.expected)
		}
	}
}

func TestSharesPrefix(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"canine", "canary", true},
		{"hound", "houndish", true},
		{"dog", "dogma", true},
		{"ox", "ox", true},
		{"ox", "oxen", false},
		{"canine", "kennel", false},
		{"idée", "idéal", true},
		{"naïf", "naîve", false},
	}

	for _, tt := range tests {
		if got := SharesPrefix(tt.a, tt.b); got != tt.expected {
			t.Errorf("SharesPrefix(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestSharesStart(t *testing.T) {
	if !SharesStart("canine", "cynic") {
		t.Error("Expected canine and cynic to share a start")
	}
	if SharesStart("canine", "kennel") {
		t.Error("Expected canine and kennel not to share a start")
	}
	if SharesStart("élan", "èbe") {
		t.Error("Expected élan and èbe not to share a start")
	}
	if !SharesStart("élan", "école") {
		t.Error("Expected élan and école to share a start")
	}
	if SharesStart("", "a") {
		t.Error("Empty word shares nothing")
	}
}

func TestSharesSubword(t *testing.T) {
	tests := []struct {
		word, candidate string
		n               int
		expected        bool
	}{
		{"nation", "international", 4, true},
		{"hound", "canine", 4, false},
		{"hound", "ound", 4, true},
		{"hound", "oun", 4, false},
		{"nation", "international", 0, false},
		{"abc", "xbcx", 2, true},
		{"cafè", "caféx", 4, false},
		{"café", "xcafé", 4, true},
		{"idée", "idé", 4, false},
	}

	for _, tt := range tests {
		if got := SharesSubword(tt.word, tt.candidate, tt.n); got != tt.expected {
			t.Errorf("SharesSubword(%q, %q, %d) = %v, want %v", tt.word, tt.candidate, tt.n, got, tt.expected)
		}
	}
}
