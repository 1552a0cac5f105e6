package ats

import "fmt"

const (
	minSectionsForPass = 4
	targetBullets      = 10
	minIdealWords      = 300
	maxIdealWords      = 800
	maxWords           = 1000
	minReadability     = 70.0
)

const (
	noIssuesMessage      = "No critical issues detected."
	wellBalancedMessage  = "Your CV is well balanced; no major improvements needed."
	processedOKMessage   = "The document was processed correctly."
	columnsIssueMessage  = "Possible multi-column layout detected; ATS parsers often read columns out of order."
	tablesIssueMessage   = "Tables or tab-aligned content detected; ATS parsers may scramble tabular data."
	singleColumnStrength = "Single-column layout, easy for ATS to parse."
	noTablesStrength     = "No tables detected."
	summaryExcellent     = "Excellent ATS compatibility. Your CV is well structured and easy to parse."
	summaryGood          = "Good ATS compatibility with room for minor improvements."
	summaryModerate      = "Moderate ATS compatibility. Review the suggested improvements."
	summaryPoor          = "Low ATS compatibility. Make sure your CV uses selectable text and standard sections."
)

// check produces a message when its condition holds. Checks run in slice order.
type check func(m Metrics, sectionsFound int) (string, bool)

var issueChecks = []check{
	func(m Metrics, _ int) (string, bool) {
		return columnsIssueMessage, m.HasColumns
	},
	func(m Metrics, _ int) (string, bool) {
		return tablesIssueMessage, m.HasTables
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Only %d words detected; the document may be image-based or too brief.", m.WordCount), !m.HasEnoughContent
	},
	func(_ Metrics, found int) (string, bool) {
		missing := len(sections) - found
		return fmt.Sprintf("%d of %d standard sections are missing.", missing, len(sections)), found < minSectionsForPass
	},
}

var improvementChecks = []check{
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Use more bullet points to itemize achievements (found %d, aim for at least %d).", m.BulletCount, targetBullets), m.BulletCount < targetBullets
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Expand your content: %d words is below the recommended %d-%d range.", m.WordCount, minIdealWords, maxIdealWords), m.WordCount < minIdealWords
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Consider condensing: %d words exceeds the recommended length.", m.WordCount), m.WordCount > maxWords
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Simplify wording to improve readability (current estimate %.1f/100).", m.ReadabilityScore), m.ReadabilityScore < minReadability
	},
}

var strengthChecks = []check{
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Optimal length (%d words).", m.WordCount), m.WordCount >= minIdealWords && m.WordCount <= maxIdealWords
	},
	func(_ Metrics, found int) (string, bool) {
		return fmt.Sprintf("%d of %d standard sections detected.", found, len(sections)), found >= minSectionsForPass
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Good use of bullet points (%d).", m.BulletCount), m.BulletCount >= targetBullets
	},
	func(m Metrics, _ int) (string, bool) {
		return singleColumnStrength, !m.HasColumns
	},
	func(m Metrics, _ int) (string, bool) {
		return noTablesStrength, !m.HasTables
	},
	func(m Metrics, _ int) (string, bool) {
		return fmt.Sprintf("Good readability (%.0f/100).", m.ReadabilityScore), m.ReadabilityScore >= minReadability
	},
}

func issues(m Metrics, found int) []string {
	return collect(issueChecks, m, found, noIssuesMessage)
}

func improvements(m Metrics) []string {
	return collect(improvementChecks, m, 0, wellBalancedMessage)
}

func strengths(m Metrics, found int) []string {
	return collect(strengthChecks, m, found, processedOKMessage)
}

func collect(checks []check, m Metrics, found int, fallback string) []string {
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		if msg, ok := c(m, found); ok {
			out = append(out, msg)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

func bandFor(score int) Band {
	switch {
	case score >= 85:
		return BandExcellent
	case score >= 70:
		return BandGood
	case score >= 50:
		return BandModerate
	default:
		return BandPoor
	}
}

func summaryFor(score int) string {
	switch bandFor(score) {
	case BandExcellent:
		return summaryExcellent
	case BandGood:
		return summaryGood
	case BandModerate:
		return summaryModerate
	default:
		return summaryPoor
	}
}
