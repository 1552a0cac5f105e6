package ats

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wellFormedCV returns 500 words over 56 long lines: one keyword line, 12 bullets and 43 body lines.
func wellFormedCV() string {
	var b strings.Builder
	b.WriteString("summary contact experience education skills\n")
	for i := 0; i < 12; i++ {
		b.WriteString("• " + strings.TrimSpace(strings.Repeat("alpha ", 8)) + "\n")
	}
	for i := 0; i < 43; i++ {
		b.WriteString(strings.TrimSpace(strings.Repeat("alpha ", 9)) + "\n")
	}
	return b.String()
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}

func TestAnalyzeWellFormedCVIsExcellent(t *testing.T) {
	report := Analyze(wellFormedCV())

	require.Equal(t, 500, report.Metrics.WordCount)
	assert.Equal(t, 12, report.Metrics.BulletCount)
	assert.Equal(t, 56, report.Metrics.LineCount)
	assert.False(t, report.Metrics.HasColumns)
	assert.False(t, report.Metrics.HasTables)
	assert.Equal(t, 100.0, report.Metrics.ReadabilityScore)

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, BandExcellent, report.Band())
	assert.Equal(t, summaryExcellent, report.Summary)
	assert.Equal(t, []string{noIssuesMessage}, report.Issues)
	assert.Equal(t, []string{wellBalancedMessage}, report.Improvements)
	assert.Equal(t, []string{"Work Experience", "Education", "Skills", "Summary/Profile", "Contact"}, report.SectionsFound)
	assert.Len(t, report.Strengths, 6)
	assert.Equal(t, "Optimal length (500 words).", report.Strengths[0])
	assert.Equal(t, "5 of 5 standard sections detected.", report.Strengths[1])
}

func TestAnalyzeEmptyText(t *testing.T) {
	report := Analyze("")

	assert.Equal(t, 0, report.Metrics.WordCount)
	assert.Equal(t, 0, report.Metrics.LineCount)
	assert.False(t, report.Metrics.HasEnoughContent)
	assert.False(t, report.Metrics.HasColumns)
	assert.Equal(t, 1, report.Metrics.PageCount)
	assert.Empty(t, report.SectionsFound)
	assert.NotNil(t, report.SectionsFound)
	// readability 30, thin content -10, nothing else.
	assert.Equal(t, 20, report.Score)
	assert.Equal(t, summaryPoor, report.Summary)
	assert.Equal(t, 0, report.TextLength)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	inputs := []string{"", wellFormedCV(), "EXPERIENCE\n\t|\t|", words(250)}
	for _, in := range inputs {
		first := Analyze(in)
		second := Analyze(in)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical reports for %q", in)
		}
	}
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			// Every penalty fires and readability bottoms out; the raw total is -20.
			name: "negative total clamps to zero",
			text: strings.Repeat("abcdefghijklmnopqrst|\n", 25),
			want: 0,
		},
		{
			name: "maximum",
			text: wellFormedCV(),
			want: 100,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(tt.text)
			assert.Equal(t, tt.want, report.Score)
			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
		})
	}
}

func TestTablePenaltyIsExactlyFive(t *testing.T) {
	base := wellFormedCV()
	lines := strings.SplitN(base, "\n", 2)
	// Trailing tabs change neither words nor trimmed lines.
	withTabs := lines[0] + strings.Repeat("\t", 25) + "\n" + lines[1]

	clean := Analyze(base)
	tabbed := Analyze(withTabs)

	require.True(t, tabbed.Metrics.HasTables)
	require.False(t, clean.Metrics.HasTables)
	assert.Equal(t, clean.Metrics.WordCount, tabbed.Metrics.WordCount)
	assert.Equal(t, clean.Metrics.LineCount, tabbed.Metrics.LineCount)
	assert.Equal(t, 5, clean.Score-tabbed.Score)
	assert.Equal(t, tablesIssueMessage, tabbed.Issues[0])
}

func TestEnoughContentBoundary(t *testing.T) {
	assert.False(t, Analyze(words(199)).Metrics.HasEnoughContent)
	assert.True(t, Analyze(words(200)).Metrics.HasEnoughContent)
}

func TestSectionDetectionCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "upper case", text: "EXPERIENCE", want: []string{"Work Experience"}},
		{name: "phrase", text: "my work history", want: []string{"Work Experience"}},
		{name: "spanish accents", text: "Formación y Teléfono", want: []string{"Education", "Contact"}},
		{name: "substring inside word", text: "professional profile", want: []string{"Summary/Profile"}},
		{name: "none", text: "lorem ipsum", want: []string{}},
		{name: "catalog order", text: "phone skills experiencia", want: []string{"Work Experience", "Skills", "Contact"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).SectionsFound)
		})
	}
}

func TestSectionScoreRounding(t *testing.T) {
	tests := []struct {
		found int
		want  int
	}{
		{found: 0, want: 0},
		{found: 1, want: 8},
		{found: 2, want: 16},
		{found: 3, want: 24},
		{found: 4, want: 32},
		{found: 5, want: 40},
	}
	for _, tt := range tests {
		if got := sectionScore(tt.found); got != tt.want {
			t.Fatalf("sectionScore(%d) = %d, want %d", tt.found, got, tt.want)
		}
	}
}

func TestReadabilityContributionRoundsHalfToEven(t *testing.T) {
	// 87.5 * 0.3 = 26.25
	assert.Equal(t, 26, readabilityScore(87.5))
	// 75 * 0.3 = 22.5 rounds to the even neighbour.
	assert.Equal(t, 22, readabilityScore(75))
	assert.Equal(t, 30, readabilityScore(100))
	assert.Equal(t, 0, readabilityScore(0))
}

func TestBulletAndLengthBrackets(t *testing.T) {
	bullets := map[int]int{0: 0, 1: 5, 4: 5, 5: 10, 9: 10, 10: 15, 40: 15}
	for in, want := range bullets {
		assert.Equal(t, want, bulletScore(in), "bullets=%d", in)
	}
	lengths := map[int]int{0: 0, 199: 0, 200: 5, 299: 5, 300: 15, 800: 15, 801: 10, 5000: 10}
	for in, want := range lengths {
		assert.Equal(t, want, lengthScore(in), "words=%d", in)
	}
}

func TestAnalyzeDocumentKeepsPageCount(t *testing.T) {
	assert.Equal(t, 3, AnalyzeDocument("hello", 3).Metrics.PageCount)
	assert.Equal(t, 1, AnalyzeDocument("hello", 0).Metrics.PageCount)
}

func TestSummaryThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 100, want: summaryExcellent},
		{score: 85, want: summaryExcellent},
		{score: 84, want: summaryGood},
		{score: 70, want: summaryGood},
		{score: 69, want: summaryModerate},
		{score: 50, want: summaryModerate},
		{score: 49, want: summaryPoor},
		{score: 0, want: summaryPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, summaryFor(tt.score), "score=%d", tt.score)
	}
}
