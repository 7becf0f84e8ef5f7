// Package cli provides template inspection commands.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aicoach/datasourcegen/internal/templates"
	"github.com/spf13/cobra"
)

var (
	// templates show flags
	tmplShowSection string
	tmplShowInfo    bool
)

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)

	templatesShowCmd.Flags().StringVar(&tmplShowSection, "section", "", "print a single section by key")
	templatesShowCmd.Flags().BoolVar(&tmplShowInfo, "info", false, "print the info bundle instead of the sections")
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the built-in templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplatesList(cmd.OutOrStdout())
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a template's raw text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplatesShow(cmd.OutOrStdout(), args[0], tmplShowSection, tmplShowInfo)
	},
}

func runTemplatesList(out io.Writer) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tDESCRIPTION\tSECTIONS\tTOKENS")
	for _, tmpl := range templates.All() {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n",
			tmpl.Name,
			tmpl.Description,
			len(tmpl.SectionKeys()),
			strings.Join(tmpl.TokenNames(), ","),
		)
	}
	return writer.Flush()
}

func runTemplatesShow(out io.Writer, name, section string, info bool) error {
	tmpl, err := templates.Find(name)
	if err != nil {
		return fmt.Errorf("template %q: %w", name, err)
	}

	bundle := tmpl.Sections()
	if info {
		bundle = tmpl.Info()
	}

	if section != "" {
		text, ok := bundle[section]
		if !ok {
			return fmt.Errorf("template %q has no section %q (have: %s)",
				name, section, strings.Join(tmpl.SectionKeys(), ", "))
		}
		fmt.Fprintln(out, text)
		return nil
	}

	keys := make([]string, 0, len(bundle))
	for key := range bundle {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(out, "--- %s ---\n%s\n", key, bundle[key])
	}
	return nil
}
