// Package generate renders datasource templates and writes the output
// files the AI coach consumes.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aicoach/datasourcegen/internal/config"
	"github.com/aicoach/datasourcegen/internal/logging"
	"github.com/aicoach/datasourcegen/internal/templates"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service errors.
var (
	ErrMemberNameRequired = errors.New("member name is required")
	ErrProjectRequired    = errors.New("project name is required")
	ErrOutputDirRequired  = errors.New("output directory is required")
)

// Token names the generator fills in itself.
const (
	tokenMemberName    = "TEAM_MEMBER_NAME"
	tokenGeneratedDate = "GENERATED_DATE"
	tokenProjectName   = "PROJECT_NAME"
	tokenDateRange     = "DATE_RANGE"
	tokenTotalMembers  = "TOTAL_MEMBERS"
)

const generatedDateLayout = "2006-01-02"

// Service renders templates into datasource files.
type Service struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a generator service.
func NewService() *Service {
	return &Service{
		logger: logging.Component("generate"),
		now:    time.Now,
	}
}

// MemberOptions configure one member datasource file.
type MemberOptions struct {
	// Name is the team member name (required).
	Name string

	// Extended selects the variant with project context and health.
	Extended bool

	// DateRange describes the period the datasource covers.
	DateRange string

	// OutputDir is the directory the file is written to (required).
	OutputDir string

	// GeneratedDate overrides the generation date stamp.
	GeneratedDate string

	// Vars holds extra token values (DAILY_CONTENT, JIRA_CONTENT, ...).
	Vars map[string]string

	// Strict fails the run when a token is left unresolved.
	Strict bool
}

// TeamOptions configure the team datasource file.
type TeamOptions struct {
	// Project is the project name (required).
	Project string

	// DateRange describes the period the datasource covers.
	DateRange string

	// TotalMembers is the roster size stamped into the team info.
	TotalMembers int

	// OutputDir is the directory the file is written to (required).
	OutputDir string

	// GeneratedDate overrides the generation date stamp.
	GeneratedDate string

	// Combined writes the single concatenated report instead of the
	// keyed sections.
	Combined bool

	// Vars holds extra token values (JIRA_CONTENT, TRANSCRIPT_CONTENT, ...).
	Vars map[string]string

	// Strict fails the run when a token is left unresolved.
	Strict bool
}

// Member renders a member datasource and writes it under the output
// directory. It returns the path of the written file.
func (s *Service) Member(ctx context.Context, opts MemberOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return "", ErrMemberNameRequired
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return "", ErrOutputDirRequired
	}

	tmplName := templates.NameMember
	if opts.Extended {
		tmplName = templates.NameMemberExtended
	}
	tmpl, err := templates.Find(tmplName)
	if err != nil {
		return "", err
	}

	fixed := map[string]string{
		tokenMemberName:    name,
		tokenGeneratedDate: s.generatedDate(opts.GeneratedDate),
	}
	if strings.TrimSpace(opts.DateRange) != "" {
		fixed[tokenDateRange] = opts.DateRange
	}
	vars := mergeVars(opts.Vars, fixed)

	sections, err := templates.Render(tmpl, vars, opts.Strict)
	if err != nil {
		return "", err
	}

	content := memberFileContent(name, vars[tokenGeneratedDate], vars[tokenDateRange], sections)
	path := filepath.Join(opts.OutputDir, Slug(name)+"_datasource.md")
	if err := writeFile(path, content); err != nil {
		return "", err
	}

	s.logger.Info().
		Str("member", name).
		Str("template", tmpl.Name).
		Str("path", path).
		Msg("member datasource written")

	return path, nil
}

// Team renders the team datasource and writes it under the output
// directory. It returns the path of the written file.
func (s *Service) Team(ctx context.Context, opts TeamOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	project := strings.TrimSpace(opts.Project)
	if project == "" {
		return "", ErrProjectRequired
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return "", ErrOutputDirRequired
	}

	tmpl, err := templates.Find(templates.NameTeam)
	if err != nil {
		return "", err
	}

	vars := mergeVars(opts.Vars, map[string]string{
		tokenProjectName:   project,
		tokenDateRange:     opts.DateRange,
		tokenTotalMembers:  strconv.Itoa(opts.TotalMembers),
		tokenGeneratedDate: s.generatedDate(opts.GeneratedDate),
	})

	var content string
	if opts.Combined {
		content = templates.Substitute(templates.AllContent(), vars)
		if opts.Strict {
			if missing := templates.Unresolved(content); len(missing) > 0 {
				return "", fmt.Errorf("render combined team report: unresolved tokens: %s",
					strings.Join(missing, ", "))
			}
		}
	} else {
		sections, err := templates.Render(tmpl, vars, opts.Strict)
		if err != nil {
			return "", err
		}
		content = teamFileContent(sections)
	}

	path := filepath.Join(opts.OutputDir, "team_datasource.md")
	if err := writeFile(path, content); err != nil {
		return "", err
	}

	s.logger.Info().
		Str("project", project).
		Bool("combined", opts.Combined).
		Str("path", path).
		Msg("team datasource written")

	return path, nil
}

// All generates one datasource file per roster member plus the team file.
// It returns the paths of all written files.
func (s *Service) All(ctx context.Context, cfg *config.Config) ([]string, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	run := uuid.NewString()
	logger := s.logger.With().Str("run_id", run).Logger()
	logger.Info().
		Str("project", cfg.ProjectName).
		Int("members", len(cfg.Members)).
		Msg("generation run started")

	paths := make([]string, 0, len(cfg.Members)+1)
	for _, member := range cfg.Members {
		path, err := s.Member(ctx, MemberOptions{
			Name:      member.Name,
			Extended:  member.Extended,
			DateRange: cfg.DateRange,
			OutputDir: cfg.OutputDir,
			Strict:    cfg.Strict,
		})
		if err != nil {
			return nil, fmt.Errorf("generate member %s: %w", member.Name, err)
		}
		paths = append(paths, path)
	}

	path, err := s.Team(ctx, TeamOptions{
		Project:      cfg.ProjectName,
		DateRange:    cfg.DateRange,
		TotalMembers: len(cfg.Members),
		OutputDir:    cfg.OutputDir,
		Strict:       cfg.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("generate team: %w", err)
	}
	paths = append(paths, path)

	logger.Info().Int("files", len(paths)).Msg("generation run finished")
	return paths, nil
}

func (s *Service) generatedDate(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return s.now().Format(generatedDateLayout)
}

func mergeVars(extra, fixed map[string]string) map[string]string {
	vars := make(map[string]string, len(extra)+len(fixed))
	for key, value := range extra {
		vars[key] = value
	}
	for key, value := range fixed {
		vars[key] = value
	}
	return vars
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
