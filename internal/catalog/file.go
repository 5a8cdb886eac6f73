package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// File is the on-disk catalog format: an ordered list of subject tables.
type File struct {
	Subjects []SubjectTable `json:"subjects"`
}

// LoadFile reads a JSON catalog and validates every table. All problems are
// reported together.
func LoadFile(path string) ([]SubjectTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if errs := ValidateSubjects(f.Subjects); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, errors.Join(errs...))
	}
	return f.Subjects, nil
}

// ValidateSubjects checks table structure: keys, keywords, topic fields and
// that every prerequisite names a topic in the same table.
func ValidateSubjects(subjects []SubjectTable) []error {
	var errs []error
	if len(subjects) == 0 {
		return []error{fmt.Errorf("catalog must define at least one subject")}
	}

	keys := make(map[string]bool, len(subjects))
	for i, s := range subjects {
		where := fmt.Sprintf("subjects[%d]", i)
		if strings.TrimSpace(s.Key) == "" {
			errs = append(errs, fmt.Errorf("%s: key is required", where))
		} else {
			where = fmt.Sprintf("subject %q", s.Key)
			if keys[s.Key] {
				errs = append(errs, fmt.Errorf("%s: duplicate key", where))
			}
			keys[s.Key] = true
		}
		if len(s.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one keyword is required", where))
		}
		if s.BaseCount < 0 {
			errs = append(errs, fmt.Errorf("%s: baseCount must not be negative", where))
		}
		if len(s.Topics) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one topic is required", where))
		}
		errs = append(errs, validateTopics(where, s.Topics)...)
	}
	return errs
}

func validateTopics(where string, topics []TopicSpec) []error {
	var errs []error
	names := make(map[string]bool, len(topics))
	for _, t := range topics {
		names[t.Name] = true
	}

	seen := make(map[string]bool, len(topics))
	for j, t := range topics {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("%s: topics[%d]: name is required", where, j))
			continue
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("%s: topic %q: duplicate name", where, t.Name))
		}
		seen[t.Name] = true
		if t.Priority < 1 || t.Priority > 5 {
			errs = append(errs, fmt.Errorf("%s: topic %q: priority must be between 1 and 5", where, t.Name))
		}
		if !domain.ValidDifficulties[string(t.Difficulty)] {
			errs = append(errs, fmt.Errorf("%s: topic %q: invalid difficulty %q", where, t.Name, t.Difficulty))
		}
		for _, p := range t.Prerequisites {
			if !names[p] {
				errs = append(errs, fmt.Errorf("%s: topic %q: unknown prerequisite %q", where, t.Name, p))
			}
		}
	}
	return errs
}
