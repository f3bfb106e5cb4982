package analyze_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pagegrade"
	"github.com/fwojciec/pagegrade/analyze"
	"github.com/stretchr/testify/assert"
)

func TestEntities(t *testing.T) {
	t.Parallel()

	t.Run("buckets entities without a type as unknown", func(t *testing.T) {
		t.Parallel()

		doc := &pagegrade.RawDocument{Entities: []pagegrade.Entity{
			{Value: "Berlin", Type: "GPE"},
			{Value: "Acme"},
			{Value: "Paris", Type: "GPE"},
		}}

		got := analyze.Entities(doc)

		assert.Equal(t, 3, got.Total)
		assert.Equal(t, map[string]int{"GPE": 2, pagegrade.UnknownEntityType: 1}, got.TypeSummary)
		assert.Equal(t, doc.Entities, got.Items)
	})

	t.Run("caps items but counts every entity", func(t *testing.T) {
		t.Parallel()

		doc := &pagegrade.RawDocument{}
		for i := 0; i < 60; i++ {
			doc.Entities = append(doc.Entities, pagegrade.Entity{Value: fmt.Sprintf("Person %d", i), Type: "PERSON"})
		}

		got := analyze.Entities(doc)

		assert.Equal(t, 60, got.Total)
		assert.Len(t, got.Items, 50)
		assert.Equal(t, 60, got.TypeSummary["PERSON"])
	})

	t.Run("returns empty items for documents without entities", func(t *testing.T) {
		t.Parallel()

		got := analyze.Entities(&pagegrade.RawDocument{})

		assert.Zero(t, got.Total)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.TypeSummary)
	})
}
