package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// Document is a declarative form definition. Fields are a list rather than a
// map so declaration order survives parsing and drives validation order.
type Document struct {
	Form   string  `json:"form" yaml:"form"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field declares one named input: its label, sanitizer kind, and rule
// constraints.
type Field struct {
	Name      string   `json:"name" yaml:"name"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Kind      string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Email     bool     `json:"email,omitempty" yaml:"email,omitempty"`
	URL       bool     `json:"url,omitempty" yaml:"url,omitempty"`
}

// Parse decodes a YAML or JSON form definition. YAML is tried first since it
// is a superset; a JSON-specific parse runs when that fails so JSON error
// messages stay useful.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if jsonErr := json.Unmarshal(data, &doc); jsonErr != nil {
			return Document{}, fmt.Errorf("definition: parse: %w", err)
		}
	}
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFS reads and parses a definition file from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

func (d Document) validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("definition: form %q declares no fields", d.Form)
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("definition: form %q has a field without a name", d.Form)
		}
		if seen[name] {
			return fmt.Errorf("definition: form %q declares field %q twice", d.Form, name)
		}
		seen[name] = true
		if f.Kind != "" && kindOf(f.Kind) == "" {
			return fmt.Errorf("definition: field %q has unknown kind %q", name, f.Kind)
		}
	}
	return nil
}

// Rules builds the rule set in declaration order. Invalid patterns fail here
// rather than at evaluation time.
func (d Document) Rules() (*rules.Set, error) {
	set := rules.NewSet()
	for _, f := range d.Fields {
		rule := rules.Rule{
			Required:  f.Required,
			MinLength: f.MinLength,
			MaxLength: f.MaxLength,
			Email:     f.Email,
			URL:       f.URL,
		}
		if f.Pattern != "" {
			compiled, err := regexp.Compile(f.Pattern)
			if err != nil {
				return nil, fmt.Errorf("definition: field %q pattern: %w", f.Name, err)
			}
			rule.Pattern = compiled
		}
		if f.Min != nil {
			value := *f.Min
			rule.Min = &value
		}
		if f.Max != nil {
			value := *f.Max
			rule.Max = &value
		}
		if f.Label != "" {
			set.AddLabeled(f.Name, f.Label, rule)
		} else {
			set.Add(f.Name, rule)
		}
	}
	return set, nil
}

// Kind resolves the sanitizer kind declared for a field, defaulting to text.
func (d Document) Kind(name string) field.Kind {
	for _, f := range d.Fields {
		if f.Name == name {
			if kind := kindOf(f.Kind); kind != "" {
				return kind
			}
			return field.KindText
		}
	}
	return field.KindText
}

func kindOf(raw string) field.Kind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text":
		return field.KindText
	case "html":
		return field.KindHTML
	case "markup":
		return field.KindMarkup
	case "number":
		return field.KindNumber
	case "integer":
		return field.KindInteger
	case "url":
		return field.KindURL
	default:
		return ""
	}
}
