package templates

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func assertKeys(t *testing.T, bundle map[string]string, want []string) {
	t.Helper()
	if len(bundle) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(bundle), bundle)
	}
	for _, key := range want {
		if _, ok := bundle[key]; !ok {
			t.Fatalf("missing key %q", key)
		}
	}
}

func TestMemberDataSourcesKeys(t *testing.T) {
	assertKeys(t, MemberDataSources(), []string{
		"daily_text", "jira_text", "fathom_text", "claap_text",
	})
}

func TestExtendedMemberDataSourcesKeys(t *testing.T) {
	assertKeys(t, ExtendedMemberDataSources(), []string{
		"daily_text", "jira_text", "fathom_text", "claap_text",
		"project_context_and_health",
	})
}

func TestMemberInfoKeys(t *testing.T) {
	info := MemberInfo()
	assertKeys(t, info, []string{"name", "generated_date"})

	if info["name"] != "{{TEAM_MEMBER_NAME}}" {
		t.Errorf("name = %q, want raw token", info["name"])
	}
	if info["generated_date"] != "{{GENERATED_DATE}}" {
		t.Errorf("generated_date = %q, want raw token", info["generated_date"])
	}
}

func TestTeamDataKeys(t *testing.T) {
	assertKeys(t, TeamData(), []string{
		"project", "jira_data", "transcript_data", "daily_reports_data",
		"generated_date",
	})
}

func TestTeamInfoKeys(t *testing.T) {
	assertKeys(t, TeamInfo(), []string{
		"project_name", "date_range", "total_members", "generated_date",
	})
}

func TestDataSourcesVerbatim(t *testing.T) {
	sources := ExtendedMemberDataSources()
	if sources["daily_text"] != MemberDailyText {
		t.Errorf("daily_text = %q, want %q", sources["daily_text"], MemberDailyText)
	}
	if sources["jira_text"] != MemberJiraText {
		t.Errorf("jira_text = %q, want %q", sources["jira_text"], MemberJiraText)
	}
	if sources["fathom_text"] != MemberFathomText {
		t.Errorf("fathom_text = %q, want %q", sources["fathom_text"], MemberFathomText)
	}
	if sources["claap_text"] != MemberClaapText {
		t.Errorf("claap_text = %q, want %q", sources["claap_text"], MemberClaapText)
	}
	if sources["project_context_and_health"] != ProjectContextAndHealth {
		t.Error("project_context_and_health does not match the constant")
	}

	team := TeamData()
	if team["jira_data"] != TeamJiraData {
		t.Errorf("jira_data = %q, want %q", team["jira_data"], TeamJiraData)
	}
	if team["transcript_data"] != TeamTranscriptData {
		t.Errorf("transcript_data = %q, want %q", team["transcript_data"], TeamTranscriptData)
	}
	if team["daily_reports_data"] != TeamDailyReportsData {
		t.Errorf("daily_reports_data = %q, want %q", team["daily_reports_data"], TeamDailyReportsData)
	}
}

func TestProjectContextHardBreak(t *testing.T) {
	// the Team Performance line ends with a two-space markdown hard break
	if !strings.Contains(ProjectContextAndHealth, "completed on time.  \n") {
		t.Error("Team Performance line lost its trailing hard break")
	}
}

func TestAccessorsReturnFreshMaps(t *testing.T) {
	first := MemberDataSources()
	first["daily_text"] = "mutated"
	delete(first, "jira_text")

	second := MemberDataSources()
	if second["daily_text"] != MemberDailyText {
		t.Error("mutating one result leaked into the next call")
	}
	if !reflect.DeepEqual(second, MemberDataSources()) {
		t.Error("two calls should return equal maps")
	}
}

func TestCombineTeamContent(t *testing.T) {
	got := CombineTeamContent("X", "Y", "Z")
	want := "\n# JIRA Team Report\nX\n\n# Team Transcripts\nY\n\n# Daily Reports\nZ\n"
	if got != want {
		t.Fatalf("CombineTeamContent = %q, want %q", got, want)
	}

	jira := strings.Index(got, "# JIRA Team Report\nX")
	transcripts := strings.Index(got, "# Team Transcripts\nY")
	daily := strings.Index(got, "# Daily Reports\nZ")
	if jira == -1 || transcripts == -1 || daily == -1 {
		t.Fatal("combined content missing a section")
	}
	if !(jira < transcripts && transcripts < daily) {
		t.Fatal("sections out of order")
	}
}

func TestAllContent(t *testing.T) {
	want := CombineTeamContent(TeamJiraData, TeamTranscriptData, TeamDailyReportsData)
	if got := AllContent(); got != want {
		t.Fatalf("AllContent = %q, want %q", got, want)
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 builtin templates, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("templates not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestFind(t *testing.T) {
	tmpl, err := Find(NameTeam)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if tmpl.Name != NameTeam {
		t.Fatalf("expected %q, got %q", NameTeam, tmpl.Name)
	}

	if _, err := Find("nope"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestTokenNames(t *testing.T) {
	tmpl, err := Find(NameTeam)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{
		"DAILY_CONTENT", "DATE_RANGE", "GENERATED_DATE", "JIRA_CONTENT",
		"PROJECT_NAME", "TOTAL_MEMBERS", "TRANSCRIPT_CONTENT",
	}
	if got := tmpl.TokenNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("TokenNames = %v, want %v", got, want)
	}
}

func TestSectionKeysSorted(t *testing.T) {
	tmpl, err := Find(NameMemberExtended)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := []string{
		"claap_text", "daily_text", "fathom_text", "jira_text",
		"project_context_and_health",
	}
	if got := tmpl.SectionKeys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("SectionKeys = %v, want %v", got, want)
	}
}
