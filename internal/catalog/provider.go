// Package catalog supplies the topic graph for a study goal: either named
// topics the learner asked for, a fixed per-subject table, or a generated
// linear fallback.
package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

type Source string

const (
	SourceCustom  Source = "custom"
	SourceCatalog Source = "catalog"
	SourceGeneric Source = "generic"
)

type TopicRequest struct {
	Subject        string
	GoalType       domain.GoalType
	Level          domain.SkillLevel
	SpecificTopics []string
}

// TopicSet is the provider's answer for one request. EstimatedCount may be
// larger than len(Topics) when a fixed table is shorter than the estimate.
type TopicSet struct {
	Topics         []domain.Topic
	EstimatedCount int
	HoursPerTopic  int
	Subject        string
	Source         Source
}

// TopicCount is the number of topics actually delivered.
func (s TopicSet) TopicCount() int {
	return len(s.Topics)
}

// RequiredHours is TopicCount × HoursPerTopic.
func (s TopicSet) RequiredHours() float64 {
	return float64(s.TopicCount() * s.HoursPerTopic)
}

type SubjectSummary struct {
	Key        string
	Keywords   []string
	BaseCount  int
	TopicCount int
}

// Provider is the topic catalog seam. The planning algorithms only see the
// topics it returns.
type Provider interface {
	Topics(req TopicRequest) (TopicSet, error)
	Subjects() []SubjectSummary
}

// TopicSpec is one row of a subject table.
type TopicSpec struct {
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Priority      int               `json:"priority"`
	Prerequisites []string          `json:"prerequisites,omitempty"`
	Difficulty    domain.Difficulty `json:"difficulty"`
	Category      string            `json:"category"`
}

// SubjectTable is a fixed, ordered topic list for one subject.
type SubjectTable struct {
	Key       string      `json:"key"`
	Keywords  []string    `json:"keywords"`
	BaseCount int         `json:"baseCount"`
	Topics    []TopicSpec `json:"topics"`
}

func (t SubjectTable) matches(subject string) bool {
	s := strings.ToLower(subject)
	for _, kw := range t.Keywords {
		if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MemoryCatalog serves topics from in-memory subject tables. All tables and
// estimation constants belong to the instance.
type MemoryCatalog struct {
	subjects  []SubjectTable
	estimator Estimator
	newID     func() string
}

type Option func(*MemoryCatalog)

// WithIDGenerator overrides the topic ID generator (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(c *MemoryCatalog) {
		c.newID = fn
	}
}

// WithEstimator overrides the topic count and hours estimator.
func WithEstimator(e Estimator) Option {
	return func(c *MemoryCatalog) {
		c.estimator = e
	}
}

// NewMemoryCatalog builds a catalog over the given subject tables, matched in
// order. Pass DefaultSubjects() for the built-in tables.
func NewMemoryCatalog(subjects []SubjectTable, opts ...Option) *MemoryCatalog {
	c := &MemoryCatalog{
		subjects:  subjects,
		estimator: DefaultEstimator(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultCatalog is NewMemoryCatalog over DefaultSubjects().
func NewDefaultCatalog(opts ...Option) *MemoryCatalog {
	return NewMemoryCatalog(DefaultSubjects(), opts...)
}

func (c *MemoryCatalog) Estimator() Estimator {
	return c.estimator
}

func (c *MemoryCatalog) Subjects() []SubjectSummary {
	out := make([]SubjectSummary, 0, len(c.subjects))
	for _, s := range c.subjects {
		out = append(out, SubjectSummary{
			Key:        s.Key,
			Keywords:   append([]string(nil), s.Keywords...),
			BaseCount:  s.BaseCount,
			TopicCount: len(s.Topics),
		})
	}
	return out
}

// Match returns the first subject table whose keywords occur in subject.
func (c *MemoryCatalog) Match(subject string) (SubjectTable, bool) {
	for _, s := range c.subjects {
		if s.matches(subject) {
			return s, true
		}
	}
	return SubjectTable{}, false
}

func (c *MemoryCatalog) Topics(req TopicRequest) (TopicSet, error) {
	hours := c.estimator.HoursPerTopic(req.Level, req.GoalType)

	if len(req.SpecificTopics) > 0 {
		return TopicSet{
			Topics:         c.NamedTopics(req.SpecificTopics, hours, "custom"),
			EstimatedCount: len(req.SpecificTopics),
			HoursPerTopic:  hours,
			Source:         SourceCustom,
		}, nil
	}

	table, ok := c.Match(req.Subject)
	if !ok {
		count := c.estimator.TopicCount(c.estimator.DefaultBaseCount, req.GoalType)
		return TopicSet{
			Topics:         c.genericTopics(req.Subject, count, hours),
			EstimatedCount: count,
			HoursPerTopic:  hours,
			Source:         SourceGeneric,
		}, nil
	}

	base := table.BaseCount
	if base <= 0 {
		base = c.estimator.DefaultBaseCount
	}
	count := c.estimator.TopicCount(base, req.GoalType)
	n := count
	if n > len(table.Topics) {
		n = len(table.Topics)
	}

	topics := make([]domain.Topic, 0, n)
	for _, spec := range table.Topics[:n] {
		topics = append(topics, c.fromSpec(spec, hours))
	}
	return TopicSet{
		Topics:         topics,
		EstimatedCount: count,
		HoursPerTopic:  hours,
		Subject:        table.Key,
		Source:         SourceCatalog,
	}, nil
}

// NamedTopics turns bare topic names into default-weighted topics with no
// prerequisites. Blank names are skipped.
func (c *MemoryCatalog) NamedTopics(names []string, hoursPerTopic int, category string) []domain.Topic {
	topics := make([]domain.Topic, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		topics = append(topics, domain.Topic{
			ID:             c.newID(),
			Name:           name,
			Description:    fmt.Sprintf("Study %s", name),
			Priority:       3,
			EstimatedHours: float64(hoursPerTopic),
			Prerequisites:  []string{},
			Difficulty:     domain.DifficultyMedium,
			Category:       category,
		})
	}
	return topics
}

func (c *MemoryCatalog) fromSpec(spec TopicSpec, hours int) domain.Topic {
	desc := spec.Description
	if desc == "" {
		desc = fmt.Sprintf("Study %s (%s)", spec.Name, spec.Category)
	}
	prereqs := append([]string{}, spec.Prerequisites...)
	return domain.Topic{
		ID:             c.newID(),
		Name:           spec.Name,
		Description:    desc,
		Priority:       spec.Priority,
		EstimatedHours: float64(hours),
		Prerequisites:  prereqs,
		Difficulty:     spec.Difficulty,
		Category:       spec.Category,
	}
}

// genericTopics builds a linear chain: the first third easy/priority 5, the
// next third medium/priority 4, the rest hard/priority 3.
func (c *MemoryCatalog) genericTopics(subject string, n, hours int) []domain.Topic {
	label := strings.TrimSpace(subject)
	if label == "" {
		label = "General"
	}
	third := n / 3

	topics := make([]domain.Topic, 0, n)
	prev := ""
	for i := 0; i < n; i++ {
		var (
			priority   int
			difficulty domain.Difficulty
			category   string
			stage      string
			part       int
		)
		switch {
		case i < third:
			priority, difficulty, category, stage, part = 5, domain.DifficultyEasy, "fundamentals", "Fundamentals", i+1
		case i < 2*third:
			priority, difficulty, category, stage, part = 4, domain.DifficultyMedium, "core", "Core Concepts", i-third+1
		default:
			priority, difficulty, category, stage, part = 3, domain.DifficultyHard, "advanced", "Advanced Topics", i-2*third+1
		}

		name := fmt.Sprintf("%s %s %d", label, stage, part)
		prereqs := []string{}
		if prev != "" {
			prereqs = append(prereqs, prev)
		}
		topics = append(topics, domain.Topic{
			ID:             c.newID(),
			Name:           name,
			Description:    fmt.Sprintf("%s: %s, part %d", label, strings.ToLower(stage), part),
			Priority:       priority,
			EstimatedHours: float64(hours),
			Prerequisites:  prereqs,
			Difficulty:     difficulty,
			Category:       category,
		})
		prev = name
	}
	return topics
}
