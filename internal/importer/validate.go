package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// targetDateLayouts are tried in order when parsing GoalRequest.TargetDate.
var targetDateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ValidationResult is the batch outcome of ValidateGoalRequest.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate runs ValidateGoalRequest and flattens the errors into messages.
func Validate(req *GoalRequest) ValidationResult {
	errs := ValidateGoalRequest(req)
	res := ValidationResult{Valid: len(errs) == 0}
	for _, err := range errs {
		res.Errors = append(res.Errors, err.Error())
	}
	return res
}

// ValidateGoalRequest checks every field of the request and returns all
// violations found. It never stops at the first problem.
func ValidateGoalRequest(req *GoalRequest) []error {
	if req == nil {
		return []error{fmt.Errorf("goal request is required")}
	}
	var errs []error

	if strings.TrimSpace(req.UserID) == "" {
		errs = append(errs, fmt.Errorf("userId is required"))
	}

	goalType := normalizeEnum(req.GoalType)
	if goalType == "" {
		errs = append(errs, fmt.Errorf("goalType is required"))
	} else if !domain.ValidGoalTypes[goalType] {
		errs = append(errs, fmt.Errorf("goalType: invalid value %q (expected exam, interview, job or project)", req.GoalType))
	}

	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, fmt.Errorf("subject is required"))
	}

	if strings.TrimSpace(req.TargetDate) == "" {
		errs = append(errs, fmt.Errorf("targetDate is required"))
	} else if _, err := ParseTargetDate(req.TargetDate); err != nil {
		errs = append(errs, fmt.Errorf("targetDate: invalid date %q (expected RFC 3339 or YYYY-MM-DD)", req.TargetDate))
	}

	// Written as a negated range so NaN is rejected too.
	if !(req.AvailableDailyHours > 0 && req.AvailableDailyHours <= 24) {
		errs = append(errs, fmt.Errorf("availableDailyHours must be greater than 0 and at most 24 (got %g)", req.AvailableDailyHours))
	}

	level := normalizeEnum(req.CurrentLevel)
	if level == "" {
		errs = append(errs, fmt.Errorf("currentLevel is required"))
	} else if !domain.ValidSkillLevels[level] {
		errs = append(errs, fmt.Errorf("currentLevel: invalid value %q (expected beginner, intermediate or advanced)", req.CurrentLevel))
	}

	for i, topic := range req.SpecificTopics {
		if strings.TrimSpace(topic) == "" {
			errs = append(errs, fmt.Errorf("specificTopics[%d] must not be blank", i))
		}
	}

	return errs
}

// ParseTargetDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates
// (interpreted as midnight UTC).
func ParseTargetDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range targetDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ToStudyGoal converts a request that passed ValidateGoalRequest into a
// domain goal. Enum values are normalized and topic names trimmed.
func ToStudyGoal(req *GoalRequest) (domain.StudyGoal, error) {
	target, err := ParseTargetDate(req.TargetDate)
	if err != nil {
		return domain.StudyGoal{}, fmt.Errorf("parsing targetDate: %w", err)
	}
	var topics []string
	for _, t := range req.SpecificTopics {
		topics = append(topics, strings.TrimSpace(t))
	}
	return domain.StudyGoal{
		UserID:              strings.TrimSpace(req.UserID),
		GoalType:            domain.GoalType(normalizeEnum(req.GoalType)),
		Subject:             strings.TrimSpace(req.Subject),
		TargetDate:          target,
		AvailableDailyHours: req.AvailableDailyHours,
		CurrentLevel:        domain.SkillLevel(normalizeEnum(req.CurrentLevel)),
		SpecificTopics:      topics,
	}, nil
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
