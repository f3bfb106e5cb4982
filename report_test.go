package pagegrade_test

import (
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/stretchr/testify/assert"
)

func TestGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{65, "C"},
		{64, "D"},
		{50, "D"},
		{49, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pagegrade.Grade(tt.total), "total %d", tt.total)
	}
}

func TestGrade_IsMonotonic(t *testing.T) {
	t.Parallel()

	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}
	prev := rank[pagegrade.Grade(0)]
	for total := 1; total <= 100; total++ {
		got := rank[pagegrade.Grade(total)]
		assert.GreaterOrEqual(t, got, prev, "grade dropped at %d", total)
		prev = got
	}
}

func TestSnippetGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{80, "A"},
		{79, "B"},
		{65, "B"},
		{64, "C"},
		{50, "C"},
		{49, "D"},
		{35, "D"},
		{34, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pagegrade.SnippetGrade(tt.score), "score %d", tt.score)
	}
}

func TestH1StatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagegrade.H1Missing, pagegrade.H1StatusOf(0))
	assert.Equal(t, pagegrade.H1Single, pagegrade.H1StatusOf(1))
	assert.Equal(t, pagegrade.H1Multiple, pagegrade.H1StatusOf(3))
}

func TestLengthStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagegrade.LengthMissing, pagegrade.LengthStatusOf(0, 30, 60))
	assert.Equal(t, pagegrade.LengthTooShort, pagegrade.LengthStatusOf(29, 30, 60))
	assert.Equal(t, pagegrade.LengthOK, pagegrade.LengthStatusOf(30, 30, 60))
	assert.Equal(t, pagegrade.LengthOK, pagegrade.LengthStatusOf(60, 30, 60))
	assert.Equal(t, pagegrade.LengthTooLong, pagegrade.LengthStatusOf(61, 30, 60))
}

func TestSortRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("orders by priority keeping generation order", func(t *testing.T) {
		t.Parallel()

		recs := []pagegrade.Recommendation{
			{Priority: pagegrade.PriorityLow, Message: "low-1"},
			{Priority: pagegrade.PriorityMedium, Message: "medium-1"},
			{Priority: pagegrade.PriorityHigh, Message: "high-1"},
			{Priority: pagegrade.PriorityLow, Message: "low-2"},
			{Priority: pagegrade.PriorityHigh, Message: "high-2"},
			{Priority: pagegrade.PriorityMedium, Message: "medium-2"},
		}

		pagegrade.SortRecommendations(recs)

		var got []string
		for _, r := range recs {
			got = append(got, r.Message)
		}
		assert.Equal(t, []string{"high-1", "high-2", "medium-1", "medium-2", "low-1", "low-2"}, got)
	})

	t.Run("places unknown priorities last", func(t *testing.T) {
		t.Parallel()

		recs := []pagegrade.Recommendation{
			{Priority: "urgent", Message: "unknown"},
			{Priority: pagegrade.PriorityLow, Message: "low"},
		}

		pagegrade.SortRecommendations(recs)

		assert.Equal(t, "low", recs[0].Message)
		assert.Equal(t, "unknown", recs[1].Message)
	})
}

func TestScoreBreakdown_Sum(t *testing.T) {
	t.Parallel()

	b := pagegrade.ScoreBreakdown{Readability: 25, Content: 17, Structure: 10, Meta: 9}

	assert.Equal(t, 61, b.Sum())
}
