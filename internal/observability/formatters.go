// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/jonathan/job-recommender/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsWidth bounds joined skill lists inside a box
	maxSkillsWidth = 44
)

// NoRecommendationsMessage is shown when a profile matches no job.
const NoRecommendationsMessage = "No job recommendations found. Your skills may not match any available jobs for the selected roles."

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintRecommendations outputs the ranked shortlist, one box per job.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []types.ScoredRecommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(p.out, NoRecommendationsMessage)
		return
	}

	for i, rec := range recs {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Location:         %s\n", rec.Location))
		sb.WriteString(fmt.Sprintf("Job Type:         %s\n", rec.JobType))
		sb.WriteString(fmt.Sprintf("Experience Level: %s\n", rec.ExperienceLevel))
		sb.WriteString(fmt.Sprintf("Required Skills:  %s\n", truncate(strings.Join(rec.RequiredSkills, ", "), maxSkillsWidth)))
		sb.WriteString(fmt.Sprintf("Match Score:      %d/%d", rec.Score, ranking.MaxScore))

		if len(rec.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("\n✓ Matching Skills:  %s", truncate(strings.Join(rec.MatchingSkills, ", "), maxSkillsWidth-4)))
		}
		if len(rec.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("\n• Skills to Improve: %s", truncate(strings.Join(rec.MissingSkills, ", "), maxSkillsWidth-4)))
		}

		p.printBox(fmt.Sprintf("#%d  %s at %s", i+1, rec.Title, rec.Company), sb.String())
	}
}

// PrintMetadata outputs the skills and job titles found in the catalog.
func (p *Printer) PrintMetadata(meta *types.Metadata) {
	if meta == nil {
		return
	}

	p.printBox(fmt.Sprintf("SKILLS (%d)", len(meta.Skills)), bulletList(meta.Skills))
	p.printBox(fmt.Sprintf("JOB ROLES (%d)", len(meta.JobRoles)), bulletList(meta.JobRoles))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

// PrintValidationErrors outputs the fields that made a profile unusable.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(verr *validation.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ PROFILE IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(verr.Errors)))

	for i, fe := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s", fe.Message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("INVALID PROFILE", sb.String())
}
