// Package generate is the in-process question service: it builds the
// subject structure from a source material folder and produces question
// sets and hints through an LLM provider. It mirrors the wire contract
// of the remote service so the client cannot tell the two apart.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arulmurugan/vidhai/internal/exam"
)

// subjectDirs maps subject display keys to their folder names under the
// source material root.
var subjectDirs = map[string]string{
	exam.SubjectGeneralTamil:   "general_tamil",
	exam.SubjectGeneralStudies: "general_studies",
}

// Library reads study material from a directory tree laid out as
// root/<subject>/<unit>/<topic>.txt.
type Library struct {
	root string
}

// NewLibrary creates a Library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{root: dir}
}

// Structure scans the material tree and returns the subject → unit →
// topics structure. Units and topics are sorted by name.
func (l *Library) Structure() (exam.Structure, error) {
	if _, err := os.Stat(l.root); err != nil {
		return nil, fmt.Errorf("source material folder %q not found", l.root)
	}

	tree := exam.Structure{}
	for subject, dir := range subjectDirs {
		subjectPath := filepath.Join(l.root, dir)
		units, err := os.ReadDir(subjectPath)
		if err != nil {
			continue
		}

		tree[subject] = map[string][]string{}
		for _, unit := range units {
			if !unit.IsDir() {
				continue
			}
			topics, err := l.topicsIn(filepath.Join(subjectPath, unit.Name()))
			if err != nil {
				continue
			}
			tree[subject][unit.Name()] = topics
		}
	}
	return tree, nil
}

func (l *Library) topicsIn(unitPath string) ([]string, error) {
	entries, err := os.ReadDir(unitPath)
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(topics)
	return topics, nil
}

// Context returns the study text for a topic, or false when the file
// cannot be read. Generation then falls back to general knowledge.
func (l *Library) Context(subject, unit, topic string) (string, bool) {
	dir, ok := subjectDirs[subject]
	if !ok || unit == "" || topic == "" {
		return "", false
	}

	data, err := os.ReadFile(filepath.Join(l.root, dir, unit, topic+".txt"))
	if err != nil {
		return "", false
	}
	return string(data), true
}
