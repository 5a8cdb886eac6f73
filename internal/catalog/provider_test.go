package catalog

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t-%02d", n)
	}
}

func TestTopics_JavaScriptExamBeginner_TruncatesToTable(t *testing.T) {
	c := NewDefaultCatalog(WithIDGenerator(seqIDs()))

	set, err := c.Topics(TopicRequest{
		Subject:  "javascript",
		GoalType: domain.GoalExam,
		Level:    domain.LevelBeginner,
	})

	require.NoError(t, err)
	assert.Equal(t, SourceCatalog, set.Source)
	assert.Equal(t, "javascript", set.Subject)
	assert.Equal(t, 18, set.EstimatedCount)
	assert.Equal(t, 15, set.TopicCount())
	assert.Equal(t, 6, set.HoursPerTopic)
	assert.Equal(t, 90.0, set.RequiredHours())

	first := set.Topics[0]
	assert.Equal(t, "t-01", first.ID)
	assert.Equal(t, "Variables and Data Types", first.Name)
	assert.Equal(t, 5, first.Priority)
	assert.Equal(t, 6.0, first.EstimatedHours)
	assert.Empty(t, first.Prerequisites)
}

func TestTopics_InterviewTakesTablePrefix(t *testing.T) {
	c := NewDefaultCatalog(WithIDGenerator(seqIDs()))

	set, err := c.Topics(TopicRequest{
		Subject:  "Python for backend work",
		GoalType: domain.GoalInterview,
		Level:    domain.LevelIntermediate,
	})

	require.NoError(t, err)
	assert.Equal(t, "python", set.Subject)
	assert.Equal(t, 12, set.EstimatedCount)
	require.Len(t, set.Topics, 12)
	assert.Equal(t, 4, set.HoursPerTopic, "3 × 1.2 rounds up to 4")
	assert.Equal(t, "Syntax and Variables", set.Topics[0].Name)
	assert.Equal(t, "Comprehensions and Generators", set.Topics[10].Name)
	assert.Equal(t, "Decorators", set.Topics[11].Name)
}

func TestTopics_MatchIsCaseInsensitiveAndOrdered(t *testing.T) {
	c := NewDefaultCatalog()

	cases := map[string]string{
		"React Hooks":                   "react",
		"JavaScript and React":          "react",
		"Modern JAVASCRIPT":             "javascript",
		"Machine Learning with Python":  "machine learning",
		"Data Structures in Python":     "python",
		"Graph algorithms":              "data structures and algorithms",
		"PostgreSQL":                    "sql",
		"relational database internals": "sql",
	}
	for subject, want := range cases {
		table, ok := c.Match(subject)
		require.True(t, ok, "subject %q should match", subject)
		assert.Equal(t, want, table.Key, "subject %q", subject)
	}

	_, ok := c.Match("HTML and CSS")
	assert.False(t, ok)
}

func TestTopics_GenericFallbackBuildsChain(t *testing.T) {
	c := NewDefaultCatalog(WithIDGenerator(seqIDs()))

	set, err := c.Topics(TopicRequest{
		Subject:  "Organic Chemistry",
		GoalType: domain.GoalInterview,
		Level:    domain.LevelAdvanced,
	})

	require.NoError(t, err)
	assert.Equal(t, SourceGeneric, set.Source)
	require.Len(t, set.Topics, 12)
	assert.Equal(t, 3, set.HoursPerTopic, "2 × 1.2 rounds up to 3")

	for i, topic := range set.Topics {
		switch {
		case i < 4:
			assert.Equal(t, 5, topic.Priority, "topic %d", i)
			assert.Equal(t, domain.DifficultyEasy, topic.Difficulty, "topic %d", i)
		case i < 8:
			assert.Equal(t, 4, topic.Priority, "topic %d", i)
			assert.Equal(t, domain.DifficultyMedium, topic.Difficulty, "topic %d", i)
		default:
			assert.Equal(t, 3, topic.Priority, "topic %d", i)
			assert.Equal(t, domain.DifficultyHard, topic.Difficulty, "topic %d", i)
		}
		if i == 0 {
			assert.Empty(t, topic.Prerequisites)
		} else {
			assert.Equal(t, []string{set.Topics[i-1].Name}, topic.Prerequisites)
		}
	}
	assert.Equal(t, "Organic Chemistry Fundamentals 1", set.Topics[0].Name)
	assert.Equal(t, "Organic Chemistry Core Concepts 1", set.Topics[4].Name)
	assert.Equal(t, "Organic Chemistry Advanced Topics 4", set.Topics[11].Name)
}

func TestTopics_GenericRemainderGoesToLastTier(t *testing.T) {
	c := NewMemoryCatalog(nil)

	set, err := c.Topics(TopicRequest{Subject: "Welding", GoalType: domain.GoalExam, Level: domain.LevelBeginner})

	require.NoError(t, err)
	require.Len(t, set.Topics, 18)
	hard := 0
	for _, topic := range set.Topics {
		if topic.Difficulty == domain.DifficultyHard {
			hard++
		}
	}
	assert.Equal(t, 6, hard)

	set, err = c.Topics(TopicRequest{Subject: "Welding", GoalType: domain.GoalProject, Level: domain.LevelBeginner})
	require.NoError(t, err)
	assert.Len(t, set.Topics, 9)
}

func TestTopics_SpecificTopicsOverrideCatalog(t *testing.T) {
	c := NewDefaultCatalog(WithIDGenerator(seqIDs()))

	set, err := c.Topics(TopicRequest{
		Subject:        "javascript",
		GoalType:       domain.GoalJob,
		Level:          domain.LevelIntermediate,
		SpecificTopics: []string{"Closures", "Promises", "Event Loop"},
	})

	require.NoError(t, err)
	assert.Equal(t, SourceCustom, set.Source)
	assert.Equal(t, 3, set.EstimatedCount)
	require.Len(t, set.Topics, 3)
	for _, topic := range set.Topics {
		assert.Equal(t, 3, topic.Priority)
		assert.Equal(t, domain.DifficultyMedium, topic.Difficulty)
		assert.Empty(t, topic.Prerequisites)
		assert.Equal(t, 4.0, topic.EstimatedHours, "3 × 1.1 rounds up to 4")
		assert.Equal(t, "custom", topic.Category)
	}
}

func TestTopics_TablesAreNotShared(t *testing.T) {
	a := DefaultSubjects()
	a[0].Topics[0].Name = "mutated"

	b := DefaultSubjects()
	assert.Equal(t, "JSX and Components", b[0].Topics[0].Name)
}

func TestDefaultSubjects_PrerequisitesResolveWithinTable(t *testing.T) {
	assert.Empty(t, ValidateSubjects(DefaultSubjects()))
}

func TestSubjects_Summaries(t *testing.T) {
	c := NewDefaultCatalog()

	subjects := c.Subjects()

	require.Len(t, subjects, 6)
	assert.Equal(t, "react", subjects[0].Key)
	assert.Equal(t, 12, subjects[0].TopicCount)
	assert.Equal(t, "sql", subjects[5].Key)
	assert.Equal(t, 10, subjects[5].BaseCount)
}

func TestEstimator_Defaults(t *testing.T) {
	e := DefaultEstimator()

	assert.Equal(t, 18, e.TopicCount(15, domain.GoalExam))
	assert.Equal(t, 12, e.TopicCount(15, domain.GoalInterview))
	assert.Equal(t, 9, e.TopicCount(15, domain.GoalProject))
	assert.Equal(t, 15, e.TopicCount(15, domain.GoalJob))
	assert.Equal(t, 8, e.TopicCount(10, domain.GoalInterview))
	assert.Equal(t, 15, e.TopicCount(15, domain.GoalType("hobby")))

	assert.Equal(t, 6, e.HoursPerTopic(domain.LevelBeginner, domain.GoalExam))
	assert.Equal(t, 5, e.HoursPerTopic(domain.LevelBeginner, domain.GoalInterview))
	assert.Equal(t, 6, e.HoursPerTopic(domain.LevelBeginner, domain.GoalProject))
	assert.Equal(t, 5, e.HoursPerTopic(domain.LevelBeginner, domain.GoalJob))
	assert.Equal(t, 4, e.HoursPerTopic(domain.LevelIntermediate, domain.GoalExam))
	assert.Equal(t, 5, e.HoursPerTopic(domain.LevelIntermediate, domain.GoalProject))
	assert.Equal(t, 3, e.HoursPerTopic(domain.LevelAdvanced, domain.GoalExam))
	assert.Equal(t, 3, e.HoursPerTopic(domain.LevelAdvanced, domain.GoalProject))
	assert.Equal(t, 4, e.HoursPerTopic(domain.SkillLevel("guru"), domain.GoalJob))
}
