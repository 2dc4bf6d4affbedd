// Package report renders an analysis result as styled terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/resumecheck/internal/model"
)

const (
	LabelExcellent   = "Excellent match"
	LabelGood        = "Good match"
	LabelImprove     = "Room for improvement"
	LabelSignificant = "Needs significant improvement"

	NoMatchedSkills    = "No matching skills found"
	NoMissingSkills    = "Perfect match! No missing skills"
	NoRecommendations  = "No specific recommendations at this time"
	defaultReportWidth = 72
	minReportWidth     = 30
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	matchedHeaderStyle = sectionStyle.
				Foreground(lipgloss.Color("42")) // green

	missingHeaderStyle = sectionStyle.
				Foreground(lipgloss.Color("196")) // red

	recHeaderStyle = sectionStyle.
			Foreground(lipgloss.Color("99")) // indigo

	matchedTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("151")).
			Padding(0, 1)

	missingTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("88")).
			Background(lipgloss.Color("224")).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Italic(true)

	perfectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	recIndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99"))
)

// Label returns the qualitative label for a score.
func Label(score int) string {
	switch {
	case score >= 70:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelImprove
	default:
		return LabelSignificant
	}
}

// Render draws the full report for r at the given terminal width.
// Lists are shown in the order the backend returned them.
func Render(r model.AnalysisResult, width int) string {
	if width <= 0 {
		width = defaultReportWidth
	}
	width = max(width, minReportWidth)

	var b strings.Builder

	title := "Analysis Results"
	if r.ResumeID > 0 {
		title += fmt.Sprintf("  (resume #%d)", r.ResumeID)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(renderScore(r.Score, width))
	b.WriteByte('\n')

	b.WriteString(matchedHeaderStyle.Render(fmt.Sprintf("Skills Matched (%d)", len(r.SkillsMatched))))
	b.WriteByte('\n')
	if len(r.SkillsMatched) > 0 {
		b.WriteString(renderTags(r.SkillsMatched, matchedTagStyle, width))
	} else {
		b.WriteString(placeholderStyle.Render(NoMatchedSkills))
	}
	b.WriteByte('\n')

	b.WriteString(missingHeaderStyle.Render(fmt.Sprintf("Skills Missing (%d)", len(r.SkillsMissing))))
	b.WriteByte('\n')
	if len(r.SkillsMissing) > 0 {
		b.WriteString(renderTags(r.SkillsMissing, missingTagStyle, width))
	} else {
		b.WriteString(perfectStyle.Render(NoMissingSkills))
	}
	b.WriteByte('\n')

	b.WriteString(recHeaderStyle.Render("Recommendations"))
	b.WriteByte('\n')
	if len(r.Recommendations) > 0 {
		b.WriteString(renderRecommendations(r.Recommendations, width))
	} else {
		b.WriteString(placeholderStyle.Render(NoRecommendations))
	}
	b.WriteByte('\n')

	return b.String()
}

// renderScore draws "Overall Score  N/100", the bar and the label.
func renderScore(score, width int) string {
	scoreText := scoreStyle.Render(fmt.Sprintf("%d/100", score))
	heading := "Overall Score"
	gap := max(width-lipgloss.Width(heading)-lipgloss.Width(scoreText), 2)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(scoreText)
	b.WriteByte('\n')
	b.WriteString(scoreBar(score, width))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render(Label(score)))
	b.WriteByte('\n')
	return b.String()
}

// scoreBar fills width cells in proportion to score/100.
// Out-of-range scores are clamped for drawing only.
func scoreBar(score, width int) string {
	filled := barFill(score, width)
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func barFill(score, width int) int {
	return clamp(score, 0, 100) * width / 100
}

// renderTags flows tags left to right, wrapping to a new row when the next
// tag would overflow width.
func renderTags(tags []string, style lipgloss.Style, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, tag := range tags {
		rendered := style.Render(tag)
		w := lipgloss.Width(rendered)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, rendered)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n") + "\n"
}

// renderRecommendations renders a numbered list with hanging indents.
func renderRecommendations(recs []string, width int) string {
	var b strings.Builder
	indexWidth := len(fmt.Sprintf("%d. ", len(recs)))
	for i, rec := range recs {
		index := fmt.Sprintf("%d. ", i+1)
		index += strings.Repeat(" ", indexWidth-len(index))
		lines := strings.Split(wordWrap(rec, width-indexWidth), "\n")
		for j, line := range lines {
			if j == 0 {
				b.WriteString(recIndexStyle.Render(index))
			} else {
				b.WriteString(strings.Repeat(" ", indexWidth))
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func wordWrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
