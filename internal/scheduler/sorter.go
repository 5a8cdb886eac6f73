package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// CyclicPrerequisiteError lists the topics whose prerequisites could not be
// satisfied because of a cycle.
type CyclicPrerequisiteError struct {
	Topics []string
}

func (e *CyclicPrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisite cycle among topics: %s", strings.Join(e.Topics, ", "))
}

// Prioritization is the ordered topic list plus the names of any topics
// that were placed by the cycle fallback rather than by their prerequisites.
type Prioritization struct {
	Topics   []domain.Topic
	Fallback []string
}

// CanonicalSort orders topics by the deterministic rules:
// 1. Priority: higher first
// 2. Difficulty: easier first (beginners only)
// 3. Prerequisite count: fewer first
// Equal topics keep their input order.
func CanonicalSort(topics []domain.Topic, level domain.SkillLevel) {
	beginner := level == domain.LevelBeginner
	sort.SliceStable(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]

		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}

		if beginner {
			if ra, rb := a.Difficulty.Rank(), b.Difficulty.Rank(); ra != rb {
				return ra < rb
			}
		}

		return len(a.Prerequisites) < len(b.Prerequisites)
	})
}

// PrioritizeTopics sorts a copy of topics with CanonicalSort, then reorders
// them so that every prerequisite present in the set comes first.
// Prerequisites naming topics outside the set are ignored.
//
// When a full scan places nothing, the remaining topics are unresolvable.
// With strict unset they are appended in sorted order and reported in
// Prioritization.Fallback; with strict set a *CyclicPrerequisiteError is
// returned instead.
func PrioritizeTopics(topics []domain.Topic, level domain.SkillLevel, strict bool) (Prioritization, error) {
	sorted := make([]domain.Topic, len(topics))
	copy(sorted, topics)
	CanonicalSort(sorted, level)

	present := make(map[string]bool, len(sorted))
	for _, t := range sorted {
		present[t.Name] = true
	}

	placed := make(map[string]bool, len(sorted))
	out := make([]domain.Topic, 0, len(sorted))
	remaining := sorted

	for len(remaining) > 0 {
		var next []domain.Topic
		for _, t := range remaining {
			if ready(t, present, placed) {
				out = append(out, t)
				placed[t.Name] = true
				continue
			}
			next = append(next, t)
		}

		if len(next) == len(remaining) {
			names := make([]string, len(next))
			for i, t := range next {
				names[i] = t.Name
			}
			if strict {
				return Prioritization{}, &CyclicPrerequisiteError{Topics: names}
			}
			return Prioritization{
				Topics:   append(out, next...),
				Fallback: names,
			}, nil
		}
		remaining = next
	}

	return Prioritization{Topics: out}, nil
}

func ready(t domain.Topic, present, placed map[string]bool) bool {
	for _, p := range t.Prerequisites {
		if present[p] && !placed[p] {
			return false
		}
	}
	return true
}
