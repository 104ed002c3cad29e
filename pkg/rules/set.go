package rules

import (
	"regexp"
	"strings"
)

// Set is an insertion-ordered collection of named rules with display labels.
// Iteration order follows declaration order so error lists stay stable across
// validation passes; validity itself is order-independent.
type Set struct {
	names  []string
	rules  map[string]Rule
	labels map[string]string
}

// NewSet constructs an empty rule set.
func NewSet() *Set {
	return &Set{
		rules:  make(map[string]Rule),
		labels: make(map[string]string),
	}
}

// Add registers a rule under name with a label derived from the name.
// Re-adding a name replaces the rule but keeps its original position.
func (s *Set) Add(name string, rule Rule) *Set {
	return s.AddLabeled(name, Label(name), rule)
}

// AddLabeled registers a rule with an explicit display label.
func (s *Set) AddLabeled(name, label string, rule Rule) *Set {
	if s == nil || name == "" {
		return s
	}
	if _, exists := s.rules[name]; !exists {
		s.names = append(s.names, name)
	}
	s.rules[name] = rule
	if strings.TrimSpace(label) != "" {
		s.labels[name] = label
	}
	return s
}

// Names returns the field names in declaration order. The slice is a copy.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Rule looks up the rule for a field.
func (s *Set) Rule(name string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	rule, ok := s.rules[name]
	return rule, ok
}

// Label returns the display label for a field, falling back to the humanized
// field name.
func (s *Set) Label(name string) string {
	if s != nil {
		if label, ok := s.labels[name]; ok {
			return label
		}
	}
	return Label(name)
}

// Len reports the number of declared fields.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Label converts a field name into a human-friendly label, splitting on
// underscores, dashes and camelCase boundaries.
func Label(name string) string {
	if name == "" {
		return ""
	}
	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
