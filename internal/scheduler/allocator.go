package scheduler

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FocusReview is the focus area of days left over after every topic is
// scheduled.
const FocusReview = "Review and Practice"

// TopicOverflow records hours of a topic that did not fit in the horizon.
type TopicOverflow struct {
	TopicID   string
	TopicName string
	Hours     float64
}

type Allocation struct {
	Sessions []domain.DailySession
	Overflow []TopicOverflow
}

// OverflowHours sums the unscheduled hours.
func (a Allocation) OverflowHours() float64 {
	var total float64
	for _, o := range a.Overflow {
		total += o.Hours
	}
	return total
}

// AllocateSessions greedily packs the ordered topics into totalDays sessions
// of at most dailyHours each. A cursor walks the topics; each day takes
// min(day remaining, topic remaining) from the current topic until the day
// is full or the topics run out. Day 1 falls on start's calendar date.
//
// Every topic's allocated hours sum to its estimate unless the horizon runs
// out, in which case the remainder is reported in Allocation.Overflow.
func AllocateSessions(topics []domain.Topic, start time.Time, totalDays int, dailyHours float64) Allocation {
	start = StartOfDay(start)
	sessions := make([]domain.DailySession, 0, totalDays)

	cursor := 0
	topicLeft := 0.0
	if len(topics) > 0 {
		topicLeft = topics[0].EstimatedHours
	}
	skipExhausted := func() {
		for cursor < len(topics) && topicLeft <= hoursEpsilon {
			cursor++
			if cursor < len(topics) {
				topicLeft = topics[cursor].EstimatedHours
			}
		}
	}

	for day := 1; day <= totalDays; day++ {
		session := domain.DailySession{
			Day:    day,
			Date:   start.AddDate(0, 0, day-1),
			Topics: []domain.SessionTopic{},
			Goals:  []string{},
		}

		dayLeft := dailyHours
		for dayLeft > hoursEpsilon {
			skipExhausted()
			if cursor >= len(topics) {
				break
			}
			t := topics[cursor]
			hours := math.Min(dayLeft, topicLeft)
			session.Topics = append(session.Topics, sessionTopic(t, hours))
			session.TotalHours += hours
			dayLeft -= hours
			topicLeft -= hours
		}

		if len(session.Topics) > 0 {
			session.FocusArea = session.Topics[0].TopicName
		} else {
			session.FocusArea = FocusReview
		}
		for _, st := range session.Topics {
			session.Goals = append(session.Goals,
				fmt.Sprintf("Complete %s hours on %s", FormatHours(st.AllocatedHours), st.TopicName))
		}
		sessions = append(sessions, session)
	}

	alloc := Allocation{Sessions: sessions}
	skipExhausted()
	for i := cursor; i < len(topics); i++ {
		left := topics[i].EstimatedHours
		if i == cursor {
			left = topicLeft
		}
		if left <= hoursEpsilon {
			continue
		}
		alloc.Overflow = append(alloc.Overflow, TopicOverflow{
			TopicID:   topics[i].ID,
			TopicName: topics[i].Name,
			Hours:     left,
		})
	}
	return alloc
}

func sessionTopic(t domain.Topic, hours float64) domain.SessionTopic {
	return domain.SessionTopic{
		TopicID:            t.ID,
		TopicName:          t.Name,
		AllocatedHours:     hours,
		Activities:         activitiesFor(t.Name, hours),
		LearningObjectives: objectivesFor(t),
	}
}

// activitiesFor scales the activity list with the hours given to a topic on
// one day.
func activitiesFor(name string, hours float64) []string {
	if hours < 1-hoursEpsilon {
		return []string{fmt.Sprintf("Read an overview of %s", name)}
	}
	out := []string{
		fmt.Sprintf("Watch video lessons on %s", name),
		fmt.Sprintf("Read documentation and tutorials on %s", name),
	}
	if hours >= 2-hoursEpsilon {
		out = append(out, fmt.Sprintf("Complete coding practice exercises for %s", name))
	}
	if hours >= 3-hoursEpsilon {
		out = append(out, fmt.Sprintf("Review and write summary notes on %s", name))
	}
	return out
}

func objectivesFor(t domain.Topic) []string {
	out := []string{fmt.Sprintf("Understand the key concepts of %s", t.Name)}
	switch t.Difficulty {
	case domain.DifficultyEasy:
		out = append(out, fmt.Sprintf("Explain the basics of %s in your own words", t.Name))
	case domain.DifficultyHard:
		out = append(out, fmt.Sprintf("Solve non-trivial problems using %s", t.Name))
	default:
		out = append(out, fmt.Sprintf("Apply %s in practice exercises", t.Name))
	}
	return out
}

// FormatHours renders hours with at most two decimals and no trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}
