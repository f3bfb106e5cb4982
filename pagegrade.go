// Package pagegrade grades web page content for search and retrieval.
// It turns a parsed page plus its linguistic annotations into a report with
// readability, keyword, entity, sentiment, structure and meta metrics, a
// weighted 0-100 score, prioritized recommendations and per-section
// snippet scores for retrieval-augmented generation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, prose/, lingua/).
package pagegrade
