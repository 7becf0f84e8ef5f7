package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Roster is a standalone list of team members, used when the roster lives
// outside the main config file.
type Roster struct {
	Members []Member `yaml:"members"`
}

// LoadRoster reads a roster file from disk.
func LoadRoster(path string) ([]Member, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("roster path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}

	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	for i := range roster.Members {
		roster.Members[i].Name = strings.TrimSpace(roster.Members[i].Name)
		if roster.Members[i].Name == "" {
			return nil, &MemberValidationError{Index: i, Message: "name is required"}
		}
	}

	return roster.Members, nil
}
