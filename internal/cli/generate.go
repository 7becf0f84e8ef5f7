// Package cli provides generation commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/aicoach/datasourcegen/internal/generate"
	"github.com/spf13/cobra"
)

var (
	// generate member flags
	genMemberExtended  bool
	genMemberDateRange string
	genMemberDate      string
	genMemberVars      []string

	// generate team flags
	genTeamCombined bool
	genTeamMembers  int
	genTeamDate     string
	genTeamVars     []string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateMemberCmd)
	generateCmd.AddCommand(generateTeamCmd)
	generateCmd.AddCommand(generateAllCmd)

	generateMemberCmd.Flags().BoolVar(&genMemberExtended, "extended", false, "include project context and health")
	generateMemberCmd.Flags().StringVar(&genMemberDateRange, "date-range", "", "period the datasource covers (default: from config)")
	generateMemberCmd.Flags().StringVar(&genMemberDate, "date", "", "generated date stamp (default: today)")
	generateMemberCmd.Flags().StringArrayVar(&genMemberVars, "var", nil, "token value as KEY=VALUE (repeatable)")

	generateTeamCmd.Flags().BoolVar(&genTeamCombined, "combined", false, "write the single combined report")
	generateTeamCmd.Flags().IntVar(&genTeamMembers, "members", 0, "total member count (default: roster size)")
	generateTeamCmd.Flags().StringVar(&genTeamDate, "date", "", "generated date stamp (default: today)")
	generateTeamCmd.Flags().StringArrayVar(&genTeamVars, "var", nil, "token value as KEY=VALUE (repeatable)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate datasource files",
	Long:  "Render datasource templates and write the output files.",
}

var generateMemberCmd = &cobra.Command{
	Use:   "member NAME",
	Short: "Generate one member datasource file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		vars, err := parseVars(genMemberVars)
		if err != nil {
			return err
		}

		dateRange := genMemberDateRange
		if dateRange == "" {
			dateRange = cfg.DateRange
		}

		service := generate.NewService()
		path, err := service.Member(cmd.Context(), generate.MemberOptions{
			Name:          args[0],
			Extended:      genMemberExtended,
			DateRange:     dateRange,
			OutputDir:     cfg.OutputDir,
			GeneratedDate: genMemberDate,
			Vars:          vars,
			Strict:        cfg.Strict,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var generateTeamCmd = &cobra.Command{
	Use:   "team",
	Short: "Generate the team datasource file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		vars, err := parseVars(genTeamVars)
		if err != nil {
			return err
		}

		total := genTeamMembers
		if total == 0 {
			total = len(cfg.Members)
		}

		service := generate.NewService()
		path, err := service.Team(cmd.Context(), generate.TeamOptions{
			Project:       cfg.ProjectName,
			DateRange:     cfg.DateRange,
			TotalMembers:  total,
			OutputDir:     cfg.OutputDir,
			GeneratedDate: genTeamDate,
			Combined:      genTeamCombined,
			Vars:          vars,
			Strict:        cfg.Strict,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var generateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate datasource files for every roster member plus the team",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if len(cfg.Members) == 0 {
			return fmt.Errorf("no members configured; add a members list to the config file")
		}

		service := generate.NewService()
		paths, err := service.All(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected KEY=VALUE", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
