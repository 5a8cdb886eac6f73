package domain

// Topic is an atomic unit of study. Prerequisites reference other topics by
// name, not by ID.
type Topic struct {
	ID             string     `json:"topicId"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Priority       int        `json:"priority"`
	EstimatedHours float64    `json:"estimatedHours"`
	Prerequisites  []string   `json:"prerequisites"`
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category"`
}

// TotalHours sums EstimatedHours across topics.
func TotalHours(topics []Topic) float64 {
	var total float64
	for _, t := range topics {
		total += t.EstimatedHours
	}
	return total
}
