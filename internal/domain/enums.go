package domain

type GoalType string

const (
	GoalExam      GoalType = "exam"
	GoalInterview GoalType = "interview"
	GoalJob       GoalType = "job"
	GoalProject   GoalType = "project"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"exam": true, "interview": true, "job": true, "project": true,
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// ValidSkillLevels is the canonical set of accepted skill level strings.
var ValidSkillLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// Rank orders difficulties easy < medium < hard. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanPaused    PlanStatus = "paused"
)

type CheckpointType string

const (
	CheckpointReview     CheckpointType = "review"
	CheckpointAssessment CheckpointType = "assessment"
)
