package service

import (
	"math"
	"strings"
	"unicode"
)

// Threshold — минимальный скор, при котором пара попадает в выдачу.
const Threshold = 0.6

// tokenize: нижний регистр, токен — непрерывная серия букв/цифр/'_' длиной от 2 рун.
func tokenize(s string) []string {
	s = strings.ToLower(s)
	var out []string
	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			out = append(out, s[start:end])
		}
		start, runes = -1, 0
	}
	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(s))
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func termCounts(s string) map[string]float64 {
	m := make(map[string]float64)
	for _, t := range tokenize(s) {
		m[t]++
	}
	return m
}

// Similarity — косинус между векторами частот слов двух текстов.
// Словарь строится только по этой паре. Пустой текст с любой стороны даёт 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ca, cb := termCounts(a), termCounts(b)
	var dot, na, nb float64
	for t, x := range ca {
		na += x * x
		dot += x * cb[t]
	}
	for _, y := range cb {
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	// sqrt(na*nb), а не sqrt(na)*sqrt(nb): для одинаковых текстов ровно 1
	s := dot / math.Sqrt(na*nb)
	if s > 1 {
		s = 1
	}
	return s
}
