package blueprint

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Blueprint is the root structure of a site blueprint document: page
// metadata plus an ordered list of sections and an optional theme block.
type Blueprint struct {
	Site     SiteMetadata           `yaml:"site"`
	Sections []Section              `yaml:"sections"`
	Theme    map[string]interface{} `yaml:"theme,omitempty"`
}

// SiteMetadata identifies the page being composed.
type SiteMetadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Section is one page region: its type, an optional layout variant, and
// the remaining keys as the section configuration.
type Section struct {
	Type    string
	Variant string
	Config  map[string]interface{}
}

// Parse converts blueprint YAML into a Blueprint. Only the site title is
// required; sections keep unknown types so the composer can decide how to
// report them.
func Parse(content []byte) (*Blueprint, error) {
	var raw struct {
		Site     SiteMetadata             `yaml:"site"`
		Sections []map[string]interface{} `yaml:"sections"`
		Theme    map[string]interface{}   `yaml:"theme"`
	}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Site.Title == "" {
		return nil, fmt.Errorf("site.title is required")
	}

	bp := &Blueprint{
		Site:     raw.Site,
		Sections: make([]Section, 0, len(raw.Sections)),
		Theme:    raw.Theme,
	}
	for _, entry := range raw.Sections {
		bp.Sections = append(bp.Sections, splitSection(entry))
	}
	return bp, nil
}

// splitSection separates the type/variant keys from the configuration
// fields of one section entry.
func splitSection(entry map[string]interface{}) Section {
	s := Section{Config: make(map[string]interface{}, len(entry))}
	for k, v := range entry {
		switch k {
		case "type":
			s.Type, _ = v.(string)
		case "variant":
			s.Variant, _ = v.(string)
		default:
			s.Config[k] = v
		}
	}
	return s
}
