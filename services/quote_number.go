package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GetFiscalYear returns the US-style fiscal year string for a date.
// The fiscal year runs October to September.
// Jan 2026 → "25-26", Nov 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()

	var startYear int
	if t.Month() >= time.October {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// formatQuoteNumber constructs the quote number string from components.
// Uses "-" as separator so the number stays filename-safe.
func formatQuoteNumber(machineSlug, fiscalYear, suffix string) string {
	return fmt.Sprintf("MSU-QT-%s-%s-%s", machineSlug, fiscalYear, suffix)
}

// GenerateQuoteNumber creates a reference number for a quote.
// Format: MSU-QT-{machine_slug}-{fiscal_year}-{suffix}
// Quotes are never persisted, so the suffix is a random 8-char token
// rather than a per-machine sequence.
func GenerateQuoteNumber(machineType string, now time.Time) string {
	slug := slugifyMachine(machineType)
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return formatQuoteNumber(slug, GetFiscalYear(now), suffix)
}

// slugifyMachine compresses a machine-type name into an uppercase token
// usable inside a quote number.
func slugifyMachine(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	slug := b.String()
	if slug == "" {
		return "MACHINE"
	}
	if len(slug) > 12 {
		slug = slug[:12]
	}
	return slug
}
