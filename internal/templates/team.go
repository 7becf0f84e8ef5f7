package templates

// Section text for the team-level datasource.
const (
	TeamJiraData         = "{{JIRA_CONTENT}}"
	TeamTranscriptData   = "{{TRANSCRIPT_CONTENT}}"
	TeamDailyReportsData = "{{DAILY_CONTENT}}"
)

// TeamData returns the data sources for the whole team.
func TeamData() map[string]string {
	return map[string]string{
		"project":            "{{PROJECT_NAME}}",
		"jira_data":          TeamJiraData,
		"transcript_data":    TeamTranscriptData,
		"daily_reports_data": TeamDailyReportsData,
		"generated_date":     "{{GENERATED_DATE}}",
	}
}

// TeamInfo returns the metadata bundle for a team datasource. The
// total_members value stays a raw token here; the generator substitutes
// the actual count.
func TeamInfo() map[string]string {
	return map[string]string{
		"project_name":   "{{PROJECT_NAME}}",
		"date_range":     "{{DATE_RANGE}}",
		"total_members":  "{{TOTAL_MEMBERS}}",
		"generated_date": "{{GENERATED_DATE}}",
	}
}

// CombineTeamContent joins the three team sections under fixed headings,
// in fixed order.
func CombineTeamContent(jira, transcript, daily string) string {
	return "\n# JIRA Team Report\n" + jira +
		"\n\n# Team Transcripts\n" + transcript +
		"\n\n# Daily Reports\n" + daily + "\n"
}

// AllContent returns the combined team template content.
func AllContent() string {
	return CombineTeamContent(TeamJiraData, TeamTranscriptData, TeamDailyReportsData)
}
