package analyze

import (
	"fmt"

	"github.com/fwojciec/pagegrade"
)

// Recommended length ranges for head metadata, in characters.
const (
	minTitleLength       = 30
	maxTitleLength       = 60
	minDescriptionLength = 120
	maxDescriptionLength = 160
)

// AuditMeta checks the page's head metadata against a fixed rule table.
// Each rule yields at most one issue, in rule order.
func AuditMeta(m pagegrade.Meta) *pagegrade.MetaAudit {
	issues := make([]pagegrade.Issue, 0)
	add := func(severity pagegrade.Severity, format string, args ...any) {
		issues = append(issues, pagegrade.Issue{Severity: severity, Message: fmt.Sprintf(format, args...)})
	}

	titleLen := m.TitleLength()
	titleStatus := pagegrade.LengthStatusOf(titleLen, minTitleLength, maxTitleLength)
	switch titleStatus {
	case pagegrade.LengthMissing:
		add(pagegrade.SeverityCritical, "Missing page title")
	case pagegrade.LengthTooShort:
		add(pagegrade.SeverityWarning, "Title too short (%d chars, aim for 50-60)", titleLen)
	case pagegrade.LengthTooLong:
		add(pagegrade.SeverityWarning, "Title too long (%d chars, aim for 50-60)", titleLen)
	}

	descLen := m.DescriptionLength()
	descStatus := pagegrade.LengthStatusOf(descLen, minDescriptionLength, maxDescriptionLength)
	switch descStatus {
	case pagegrade.LengthMissing:
		add(pagegrade.SeverityCritical, "Missing meta description")
	case pagegrade.LengthTooShort:
		add(pagegrade.SeverityWarning, "Meta description too short (%d chars, aim for 150-160)", descLen)
	case pagegrade.LengthTooLong:
		add(pagegrade.SeverityWarning, "Meta description too long (%d chars, aim for 150-160)", descLen)
	}

	if m.Canonical == "" {
		add(pagegrade.SeverityInfo, "No canonical URL specified")
	}
	if m.Lang == "" {
		add(pagegrade.SeverityWarning, "Missing lang attribute on html element")
	}
	if m.Viewport == "" {
		add(pagegrade.SeverityWarning, "Missing viewport meta tag")
	}
	if m.OG["og:title"] == "" {
		add(pagegrade.SeverityInfo, "Missing Open Graph title")
	}
	if m.OG["og:description"] == "" {
		add(pagegrade.SeverityInfo, "Missing Open Graph description")
	}
	if m.OG["og:image"] == "" {
		add(pagegrade.SeverityInfo, "Missing Open Graph image")
	}
	if m.Twitter["twitter:card"] == "" {
		add(pagegrade.SeverityInfo, "Missing Twitter Card meta tags")
	}

	var summary pagegrade.IssueSummary
	for _, issue := range issues {
		switch issue.Severity {
		case pagegrade.SeverityCritical:
			summary.Critical++
		case pagegrade.SeverityWarning:
			summary.Warning++
		default:
			summary.Info++
		}
	}

	return &pagegrade.MetaAudit{
		Title:             m.Title,
		TitleLength:       titleLen,
		TitleStatus:       titleStatus,
		Description:       m.Description,
		DescriptionLength: descLen,
		DescriptionStatus: descStatus,
		HasCanonical:      m.Canonical != "",
		HasLang:           m.Lang != "",
		HasViewport:       m.Viewport != "",
		HasOG:             m.OG["og:title"] != "",
		HasTwitterCard:    m.Twitter["twitter:card"] != "",
		Issues:            issues,
		Summary:           summary,
	}
}
