package service

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/catalog"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_PreviewAndSubjects(t *testing.T) {
	svc := NewCatalogService(catalog.NewDefaultCatalog())

	subjects := svc.Subjects()
	require.NotEmpty(t, subjects)
	assert.Equal(t, "react", subjects[0].Key)

	set, err := svc.Preview(catalog.TopicRequest{
		Subject:  "SQL for analysts",
		GoalType: domain.GoalJob,
		Level:    domain.LevelBeginner,
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceCatalog, set.Source)
	assert.Equal(t, "sql", set.Subject)
	assert.Equal(t, 5, set.HoursPerTopic)
}
