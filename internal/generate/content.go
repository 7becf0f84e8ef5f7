package generate

import (
	"strings"
	"unicode"

	"github.com/aicoach/datasourcegen/internal/templates"
)

// memberSectionHeadings fixes the order and heading of each member section
// in a written datasource file.
var memberSectionHeadings = []struct {
	key     string
	heading string
}{
	{"daily_text", "# Daily Reports"},
	{"jira_text", "# Jira Activity"},
	{"fathom_text", "# Fathom Meetings"},
	{"claap_text", "# Claap Recordings"},
	{"project_context_and_health", "# Project Context and Health"},
}

func memberFileContent(name, generatedDate, dateRange string, sections map[string]string) string {
	var b strings.Builder
	b.WriteString("# Datasource: " + name + "\n")
	if dateRange != "" {
		b.WriteString("Period: " + dateRange + "\n")
	}
	b.WriteString("Generated: " + generatedDate + "\n")

	for _, entry := range memberSectionHeadings {
		text, ok := sections[entry.key]
		if !ok {
			continue
		}
		b.WriteString("\n" + entry.heading + "\n")
		b.WriteString(text + "\n")
	}

	return b.String()
}

func teamFileContent(sections map[string]string) string {
	var b strings.Builder
	b.WriteString("# Team Datasource: " + sections["project"] + "\n")
	b.WriteString("Generated: " + sections["generated_date"] + "\n")
	b.WriteString(templates.CombineTeamContent(
		sections["jira_data"],
		sections["transcript_data"],
		sections["daily_reports_data"],
	))
	return b.String()
}

// Slug converts a member name into a file name stem: lowercase, runs of
// non-alphanumerics collapsed to single underscores.
func Slug(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}
