package scheduler

import (
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ScoreFeasibility scores available against required hours on a 0-100
// scale. Advanced learners get a 1.2 boost, beginners a 0.9 penalty; a
// surplus of 20% adds 10 points and a shortfall of more than 20% costs a
// further 20%. Zero required hours scores 100.
func ScoreFeasibility(availableHours, requiredHours float64, level domain.SkillLevel) int {
	if requiredHours <= 0 {
		return 100
	}
	if availableHours <= 0 {
		return 0
	}

	ratio := availableHours / requiredHours
	score := math.Min(ratio*100, 100)

	switch level {
	case domain.LevelAdvanced:
		score = math.Min(score*1.2, 100)
	case domain.LevelBeginner:
		score *= 0.9
	}

	switch {
	case ratio >= 1.2:
		score = math.Min(score+10, 100)
	case ratio < 0.8:
		score *= 0.8
	}

	return int(math.Round(score))
}
