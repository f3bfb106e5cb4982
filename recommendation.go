package pagegrade

import "sort"

// Priority is the urgency of a recommendation.
type Priority string

// Recommendation priorities, most urgent first.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort ordinal of the priority. Unknown priorities rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Category groups recommendations by the area they address.
type Category string

// Recommendation categories.
const (
	CategoryMeta          Category = "meta"
	CategoryStructure     Category = "structure"
	CategoryContent       Category = "content"
	CategoryReadability   Category = "readability"
	CategoryAccessibility Category = "accessibility"
	CategoryTechnical     Category = "technical"
)

// Recommendation is a single suggested improvement.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// SortRecommendations orders recs by priority in place.
// Recommendations of equal priority keep their relative order.
func SortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})
}
