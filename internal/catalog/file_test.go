package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeCatalog(t, `{
		"subjects": [{
			"key": "go",
			"keywords": ["golang", "go programming"],
			"baseCount": 3,
			"topics": [
				{"name": "Syntax", "priority": 5, "difficulty": "easy", "category": "basics"},
				{"name": "Goroutines", "priority": 4, "difficulty": "medium", "category": "concurrency", "prerequisites": ["Syntax"]},
				{"name": "Channels", "priority": 4, "difficulty": "hard", "category": "concurrency", "prerequisites": ["Goroutines"]}
			]
		}]
	}`)

	subjects, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "go", subjects[0].Key)
	assert.Equal(t, []string{"Goroutines"}, subjects[0].Topics[2].Prerequisites)

	c := NewMemoryCatalog(subjects)
	set, err := c.Topics(TopicRequest{Subject: "Golang", GoalType: domain.GoalJob, Level: domain.LevelAdvanced})
	require.NoError(t, err)
	assert.Equal(t, SourceCatalog, set.Source)
	assert.Len(t, set.Topics, 3)
}

func TestLoadFile_ReportsAllProblems(t *testing.T) {
	path := writeCatalog(t, `{
		"subjects": [
			{"key": "", "keywords": [], "topics": []},
			{"key": "dup", "keywords": ["x"], "topics": [
				{"name": "A", "priority": 9, "difficulty": "trivial"},
				{"name": "B", "priority": 3, "difficulty": "easy", "prerequisites": ["Z"]}
			]},
			{"key": "dup", "keywords": ["y"], "topics": [{"name": "C", "priority": 1, "difficulty": "hard"}]}
		]
	}`)

	_, err := LoadFile(path)

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "subjects[0]: key is required")
	assert.Contains(t, msg, "at least one keyword")
	assert.Contains(t, msg, "at least one topic")
	assert.Contains(t, msg, `topic "A": priority must be between 1 and 5`)
	assert.Contains(t, msg, `invalid difficulty "trivial"`)
	assert.Contains(t, msg, `unknown prerequisite "Z"`)
	assert.Contains(t, msg, `subject "dup": duplicate key`)
}

func TestLoadFile_Empty(t *testing.T) {
	path := writeCatalog(t, `{"subjects": []}`)

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one subject")
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := writeCatalog(t, `{"subjects": [`)

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog file")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
