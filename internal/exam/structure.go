package exam

import (
	"sort"
	"strings"
)

// The exam's two papers. Subject keys in the structure tree, the
// material library, and the mock shortcuts all use these names.
const (
	SubjectGeneralTamil   = "General Tamil"
	SubjectGeneralStudies = "General Studies"
)

// Structure is the subject → unit → topics tree served by the question
// service. Fetched once at startup and treated as read-only afterwards.
type Structure map[string]map[string][]string

// Subjects returns the subject names in sorted order.
func (s Structure) Subjects() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Units returns the unit names for a subject in sorted order.
// A missing or empty subject yields an empty slice, not an error;
// the wizard renders that as an inline message.
func (s Structure) Units(subject string) []string {
	units := s[subject]
	out := make([]string, 0, len(units))
	for name := range units {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Topics returns the topics for a subject/unit pair, in stored order.
func (s Structure) Topics(subject, unit string) []string {
	units := s[subject]
	if units == nil {
		return nil
	}
	return units[unit]
}

// DisplayName converts a folder-style identifier into a human label.
func DisplayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
