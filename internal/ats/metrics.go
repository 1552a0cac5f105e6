package ats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minContentWords  = 200
	shortLineRunes   = 30
	columnLineRatio  = 0.4
	tableCharLimit   = 20
	idealWordLength  = 5.0
	readabilityScale = 10.0
)

var bulletPattern = regexp.MustCompile(`(?i)^(?:[•\-*→►▸]|\d+\.|[a-z]\)|[ivx]+\.)`)

// ComputeMetrics measures text. pages below 1 are reported as 1.
func ComputeMetrics(text string, pages int) Metrics {
	if pages < 1 {
		pages = 1
	}

	words := strings.Fields(text)
	totalRunes := 0
	for _, w := range words {
		totalRunes += utf8.RuneCountInString(w)
	}

	lines := nonEmptyLines(text)
	bullets := 0
	shortLines := 0
	for _, line := range lines {
		if bulletPattern.MatchString(line) {
			bullets++
		}
		if utf8.RuneCountInString(line) < shortLineRunes {
			shortLines++
		}
	}

	hasColumns := false
	if len(lines) > 0 {
		hasColumns = float64(shortLines)/float64(len(lines)) > columnLineRatio
	}

	tableChars := strings.Count(text, "\t") + strings.Count(text, "|")

	denominator := len(words)
	if denominator == 0 {
		denominator = 1
	}
	avgWordLength := float64(totalRunes) / float64(denominator)
	readability := clampFloat(100-(avgWordLength-idealWordLength)*readabilityScale, 0, 100)

	return Metrics{
		WordCount:        len(words),
		LineCount:        len(lines),
		BulletCount:      bullets,
		HasColumns:       hasColumns,
		HasTables:        tableChars > tableCharLimit,
		ReadabilityScore: roundTo(readability, 1),
		AvgWordLength:    roundTo(avgWordLength, 2),
		HasEnoughContent: len(words) >= minContentWords,
		PageCount:        pages,
	}
}

// nonEmptyLines returns the trimmed lines of text that contain something other than whitespace.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
