package templates

// Section text for the individual member datasource. The {{TOKEN}} markers
// are substituted by the generator; accessors return the text untouched.
const (
	MemberDailyText  = "{{DAILY_CONTENT}}"
	MemberJiraText   = "{{JIRA_CONTENT}}"
	MemberFathomText = "{{FATHOM_CONTENT}}"
	MemberClaapText  = "{{CLAAP_CONTENT}}"
)

// ProjectContextAndHealth is the extra section carried by the extended
// member variant.
const ProjectContextAndHealth = `
### Project Context
AI Coach transforms daily reports, meeting transcripts, and Jira data into coaching insights for each team member within a specific date range. By providing a 360° view of individual impact, challenges, and engagement patterns, it equips managers to walk into 1:1s prepared with actionable ideas on wins, support needs, and next steps—turning scattered data into practical guidance for more effective coaching.

### Project Health
- **Team Performance:** Strong adaptability and execution speed, with successful integration of LangChain/LangSmith and delivery of modular prompt chains. Most July sprints completed on time.  
- **Core Frustration:** Technical progress is high, but leadership is frustrated by lack of scalable validation due to manual data prep, unclear onboarding workflow, and limited automation.
- **Current Focus:** Scaling feedback validation, improving UX workflows, and building automation to close gap between technical capabilities and practical impact.
`

// MemberDataSources returns the data sources for one team member.
func MemberDataSources() map[string]string {
	return map[string]string{
		"daily_text":  MemberDailyText,
		"jira_text":   MemberJiraText,
		"fathom_text": MemberFathomText,
		"claap_text":  MemberClaapText,
	}
}

// ExtendedMemberDataSources returns the member data sources plus the
// project context and health section.
func ExtendedMemberDataSources() map[string]string {
	sources := MemberDataSources()
	sources["project_context_and_health"] = ProjectContextAndHealth
	return sources
}

// MemberInfo returns the metadata bundle for a member datasource.
func MemberInfo() map[string]string {
	return map[string]string{
		"name":           "{{TEAM_MEMBER_NAME}}",
		"generated_date": "{{GENERATED_DATE}}",
	}
}
