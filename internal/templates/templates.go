// Package templates provides the built-in datasource templates and
// placeholder substitution for the AI coach generator.
package templates

import (
	"errors"
	"sort"
)

// ErrTemplateNotFound is returned when no built-in template matches a name.
var ErrTemplateNotFound = errors.New("template not found")

// Built-in template names.
const (
	NameMember         = "member"
	NameMemberExtended = "member-extended"
	NameTeam           = "team"
)

// Template describes one built-in datasource template.
type Template struct {
	Name        string
	Description string

	sections func() map[string]string
	info     func() map[string]string
}

// Sections returns the template's data source bundle. Every call allocates
// a fresh map.
func (t *Template) Sections() map[string]string {
	return t.sections()
}

// Info returns the template's metadata bundle.
func (t *Template) Info() map[string]string {
	return t.info()
}

// SectionKeys returns the fixed key set of the data source bundle, sorted.
func (t *Template) SectionKeys() []string {
	sections := t.sections()
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// TokenNames returns the sorted set of tokens referenced anywhere in the
// template, sections and info alike.
func (t *Template) TokenNames() []string {
	seen := make(map[string]struct{})
	for _, bundle := range []map[string]string{t.sections(), t.info()} {
		for _, text := range bundle {
			for _, name := range Placeholders(text) {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtin = []*Template{
	{
		Name:        NameMember,
		Description: "Individual team member datasource",
		sections:    MemberDataSources,
		info:        MemberInfo,
	},
	{
		Name:        NameMemberExtended,
		Description: "Member datasource with project context and health",
		sections:    ExtendedMemberDataSources,
		info:        MemberInfo,
	},
	{
		Name:        NameTeam,
		Description: "Team-level datasource",
		sections:    TeamData,
		info:        TeamInfo,
	},
}

// All returns the built-in templates sorted by name.
func All() []*Template {
	templates := make([]*Template, len(builtin))
	copy(templates, builtin)
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates
}

// Find returns the built-in template with the given name.
func Find(name string) (*Template, error) {
	for _, tmpl := range builtin {
		if tmpl.Name == name {
			return tmpl, nil
		}
	}
	return nil, ErrTemplateNotFound
}
