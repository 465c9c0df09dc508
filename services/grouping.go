package services

import (
	"regexp"
	"strings"
)

// OptionItem is a single priced upgrade row from a machine's catalog.
type OptionItem struct {
	ID          string
	Description string
	Price       float64
}

// OptionGroup is a named category bucket holding upgrades in source order.
type OptionGroup struct {
	Name  string
	Items []OptionItem
}

// Category bucket names, in match priority order.
const (
	CategorySpindle  = "Spindle Options"
	CategoryProbing  = "Probing & Measurement"
	CategoryCoolant  = "Coolant Systems"
	CategoryTable    = "Table & Pallet Systems"
	CategoryToolStor = "Tool Storage"
	CategoryControl  = "Control Options"
	CategoryOther    = "Other Options"
)

// baseHighPriceThreshold marks a short-named first row as an embedded base
// price even without a keyword match.
const baseHighPriceThreshold = 100000

// GroupOptions cleans the raw upgrade rows, pulls out an embedded base
// price row if the first row looks like one, and buckets the rest into
// fixed categories. Groups come back in the order each category was first
// populated. The returned base price is 0 when no row was extracted;
// callers treat 0 as "none found".
func GroupOptions(items []OptionItem) ([]OptionGroup, float64) {
	cleaned := cleanOptionItems(items)

	var extractedBase float64
	if len(cleaned) > 0 && isBasePriceRow(cleaned[0]) {
		extractedBase = cleaned[0].Price
		cleaned = cleaned[1:]
	}

	var groups []OptionGroup
	index := map[string]int{}
	for _, item := range cleaned {
		cat := Categorize(item.Description)
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, OptionGroup{Name: cat})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups, extractedBase
}

// nanAnyRe matches "nan" anywhere in the string, unlike the whole-word rule
// for standard options.
var nanAnyRe = regexp.MustCompile(`(?i)nan`)

// cleanOptionItems strips "nan" from each description and drops rows whose
// description becomes empty.
func cleanOptionItems(items []OptionItem) []OptionItem {
	var cleaned []OptionItem
	for _, item := range items {
		desc := strings.TrimSpace(nanAnyRe.ReplaceAllString(item.Description, ""))
		if desc == "" {
			continue
		}
		item.Description = desc
		cleaned = append(cleaned, item)
	}
	return cleaned
}

// isBasePriceRow reports whether an upgrade row actually declares the
// machine's base price: a "base price" or "model" keyword, or a high price
// with a name too short to be a real upgrade.
func isBasePriceRow(item OptionItem) bool {
	desc := strings.ToLower(item.Description)
	if strings.Contains(desc, "base price") || strings.Contains(desc, "model") {
		return true
	}
	return item.Price > baseHighPriceThreshold && len(strings.Fields(item.Description)) < 3
}

// Categorize assigns an upgrade description to its category bucket. Checks
// run in fixed priority order and the first match wins.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "spindle"):
		return CategorySpindle
	case strings.Contains(desc, "probe") || strings.Contains(desc, "renishaw"):
		return CategoryProbing
	case strings.Contains(desc, "coolant"):
		return CategoryCoolant
	case strings.Contains(desc, "table") || strings.Contains(desc, "pallet"):
		return CategoryTable
	case strings.Contains(desc, "tool") &&
		(strings.Contains(desc, "storage") || strings.Contains(desc, "magazine") || strings.Contains(desc, "changer")):
		return CategoryToolStor
	case strings.Contains(desc, "control"):
		return CategoryControl
	default:
		return CategoryOther
	}
}
