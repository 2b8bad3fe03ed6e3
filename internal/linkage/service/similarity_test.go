package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases", "Port SECURITY", []string{"port", "security"}},
		{"drops single runes", "a b cd e", []string{"cd"}},
		{"punctuation splits", "U.S. ports, harbors...", []string{"ports", "harbors"}},
		{"digits and underscore", "EO 14116 sec_1", []string{"eo", "14116", "sec_1"}},
		{"unicode letters", "Für Straße", []string{"für", "straße"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.in))
		})
	}
}

func TestSimilarity_IdenticalIsOne(t *testing.T) {
	for _, s := range []string{
		"port security measures",
		"harbor harbor harbor safety",
		"This order amends regulations to strengthen safeguards for United States ports, harbors, and waterfront facilities...",
	} {
		assert.Equal(t, 1.0, Similarity(s, s), s)
	}
}

func TestSimilarity_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "port security"))
	assert.Equal(t, 0.0, Similarity("port security", ""))
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarity_NoTokens(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("a", "b"))
	assert.Equal(t, 0.0, Similarity("...", "port security"))
}

func TestSimilarity_KnownValues(t *testing.T) {
	// общий токен harbor: 1 / sqrt(4*3)
	got := Similarity("vessel harbor waterfront safeguards", "harbor safety protocol")
	assert.InDelta(t, 1/math.Sqrt(12), got, 1e-12)
	assert.Less(t, got, Threshold)

	assert.Equal(t, 0.0, Similarity("port security measures", "harbor safety protocol"))

	// регистр не важен, счётчики важны: (2*1) / sqrt(4*1)
	assert.InDelta(t, 1.0, Similarity("Port port", "PORT"), 1e-12)
	// [2,1]·[1,1] / sqrt(5*2)
	assert.InDelta(t, 3/math.Sqrt(10), Similarity("port port harbor", "port harbor"), 1e-12)
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "safeguarding of vessels harbors ports and waterfront facilities"
	b := "regulations for ports and waterfront facilities of the united states"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}
