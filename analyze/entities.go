package analyze

import "github.com/fwojciec/pagegrade"

// maxEntityItems caps the entities listed in a summary.
const maxEntityItems = 50

// Entities summarizes the named entities of doc. Items are capped while
// the total and the type histogram cover every entity.
func Entities(doc *pagegrade.RawDocument) *pagegrade.EntitySummary {
	types := make(map[string]int)
	for _, e := range doc.Entities {
		typ := e.Type
		if typ == "" {
			typ = pagegrade.UnknownEntityType
		}
		types[typ]++
	}

	return &pagegrade.EntitySummary{
		Total:       len(doc.Entities),
		Items:       head(doc.Entities, maxEntityItems),
		TypeSummary: types,
	}
}
