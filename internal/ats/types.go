// Package ats scores extracted CV text against heuristic Applicant Tracking System rules.
package ats

// Metrics are structural measurements of a document's text.
type Metrics struct {
	WordCount        int     `json:"word_count"`
	LineCount        int     `json:"line_count"`
	BulletCount      int     `json:"bullet_count"`
	HasColumns       bool    `json:"has_columns"`
	HasTables        bool    `json:"has_tables"`
	ReadabilityScore float64 `json:"readability_score"`
	AvgWordLength    float64 `json:"avg_word_length"`
	HasEnoughContent bool    `json:"has_enough_content"`
	PageCount        int     `json:"page_count"`
}

// Report is the outcome of a heuristic analysis.
type Report struct {
	Score         int      `json:"score"`
	SectionsFound []string `json:"sections_found"`
	Metrics       Metrics  `json:"metrics"`
	Issues        []string `json:"issues"`
	Improvements  []string `json:"improvements"`
	Strengths     []string `json:"strengths"`
	Summary       string   `json:"summary"`
	TextLength    int      `json:"text_length"`
}

// Band names the summary bracket a score falls into.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandModerate  Band = "moderate"
	BandPoor      Band = "poor"
)

// Band returns the summary bracket for the report's score.
func (r Report) Band() Band {
	return bandFor(r.Score)
}
