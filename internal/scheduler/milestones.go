package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GenerateMilestones places checkpoints at 25%, 50% and 75% of the horizon
// and a final assessment on the last day. Days that round to zero or repeat
// an earlier checkpoint are skipped. Each milestone lists every topic
// studied up to and including its day.
func GenerateMilestones(sessions []domain.DailySession, totalDays int) []domain.Milestone {
	fractions := [...]float64{0.25, 0.5, 0.75, 1}

	var out []domain.Milestone
	last := 0
	for _, f := range fractions {
		day := int(math.Floor(float64(totalDays) * f))
		if day <= 0 || day > totalDays || day <= last {
			continue
		}
		last = day

		m := domain.Milestone{
			Day:    day,
			Topics: topicsThrough(sessions, day),
		}
		if day == totalDays {
			m.CheckpointType = domain.CheckpointAssessment
			m.Description = "Final assessment: plan complete"
		} else {
			m.CheckpointType = domain.CheckpointReview
			m.Description = fmt.Sprintf("%d%% review checkpoint", int(f*100))
		}
		out = append(out, m)
	}
	return out
}

func topicsThrough(sessions []domain.DailySession, day int) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, s := range sessions {
		if s.Day > day {
			continue
		}
		for _, st := range s.Topics {
			if !seen[st.TopicName] {
				seen[st.TopicName] = true
				names = append(names, st.TopicName)
			}
		}
	}
	return names
}
