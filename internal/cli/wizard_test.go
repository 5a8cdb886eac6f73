package cli

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardValuesFrom_Defaults(t *testing.T) {
	v := wizardValuesFrom(importer.GoalRequest{Subject: "Go"})

	assert.Equal(t, "Go", v.Subject)
	assert.Equal(t, "job", v.GoalType)
	assert.Equal(t, "beginner", v.Level)
	assert.Empty(t, v.Hours)
}

func TestWizardValues_ApplyRoundTrip(t *testing.T) {
	req := importer.GoalRequest{
		UserID:              "u",
		GoalType:            "exam",
		Subject:             "SQL",
		TargetDate:          "2026-06-01",
		AvailableDailyHours: 1.5,
		CurrentLevel:        "advanced",
		SpecificTopics:      []string{"Joins", "Indexes"},
	}
	v := wizardValuesFrom(req)
	assert.Equal(t, "1.5", v.Hours)
	assert.Equal(t, "Joins, Indexes", v.Topics)

	v.Topics = " Joins , ,Window Functions "
	var out importer.GoalRequest
	require.NoError(t, v.apply(&out))

	assert.Equal(t, "SQL", out.Subject)
	assert.Equal(t, "exam", out.GoalType)
	assert.Equal(t, "advanced", out.CurrentLevel)
	assert.Equal(t, "2026-06-01", out.TargetDate)
	assert.InDelta(t, 1.5, out.AvailableDailyHours, 1e-9)
	assert.Equal(t, []string{"Joins", "Window Functions"}, out.SpecificTopics)
}

func TestWizardValues_ApplyRejectsBadHours(t *testing.T) {
	v := goalWizardValues{Hours: "two"}
	assert.EqualError(t, v.apply(&importer.GoalRequest{}), `daily hours "two" is not a number`)
}

func TestWizardValidators(t *testing.T) {
	assert.NoError(t, validateRequired("Go"))
	assert.Error(t, validateRequired("   "))

	assert.NoError(t, validateTargetDate("2026-06-01"))
	assert.NoError(t, validateTargetDate("2026-06-01T10:00:00Z"))
	assert.EqualError(t, validateTargetDate("June 1st"), "use YYYY-MM-DD")

	assert.NoError(t, validateDailyHours("2.5"))
	assert.NoError(t, validateDailyHours("24"))
	assert.EqualError(t, validateDailyHours("0"), "must be between 0 and 24")
	assert.EqualError(t, validateDailyHours("25"), "must be between 0 and 24")
	assert.EqualError(t, validateDailyHours("lots"), "must be a number")
}

func TestGoalWizardForm_Builds(t *testing.T) {
	v := wizardValuesFrom(importer.GoalRequest{})
	form := goalWizardForm(&v)
	require.NotNil(t, form)
	assert.NotNil(t, studyHuhTheme())
}
