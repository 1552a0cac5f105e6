package ats

import (
	"math"
	"unicode/utf8"
)

const (
	sectionWeight     = 40.0
	readabilityWeight = 30.0
	layoutPenalty     = 5
	thinPenalty       = 10
)

// Analyze scores text assuming a single-page document.
func Analyze(text string) Report {
	return AnalyzeDocument(text, 1)
}

// AnalyzeDocument scores text extracted from a document with the given page count.
// It never fails: empty or unreadable text yields a low score.
func AnalyzeDocument(text string, pages int) Report {
	m := ComputeMetrics(text, pages)
	found := detectSections(text)

	score := sectionScore(len(found)) +
		readabilityScore(m.ReadabilityScore) +
		bulletScore(m.BulletCount) +
		lengthScore(m.WordCount)
	if m.HasColumns {
		score -= layoutPenalty
	}
	if m.HasTables {
		score -= layoutPenalty
	}
	if !m.HasEnoughContent {
		score -= thinPenalty
	}
	// Partial sums may leave [0,100]; only the total is clamped.
	score = clampInt(score, 0, 100)

	return Report{
		Score:         score,
		SectionsFound: found,
		Metrics:       m,
		Issues:        issues(m, len(found)),
		Improvements:  improvements(m),
		Strengths:     strengths(m, len(found)),
		Summary:       summaryFor(score),
		TextLength:    utf8.RuneCountInString(text),
	}
}

func sectionScore(found int) int {
	return roundInt(float64(found) / float64(len(sections)) * sectionWeight)
}

func readabilityScore(readability float64) int {
	return roundInt(readability / 100 * readabilityWeight)
}

func bulletScore(bullets int) int {
	switch {
	case bullets >= 10:
		return 15
	case bullets >= 5:
		return 10
	case bullets > 0:
		return 5
	default:
		return 0
	}
}

func lengthScore(words int) int {
	switch {
	case words >= 300 && words <= 800:
		return 15
	case words > 800:
		return 10
	case words >= 200:
		return 5
	default:
		return 0
	}
}

// roundInt rounds half to even, matching the scoring weights' historical rounding.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
