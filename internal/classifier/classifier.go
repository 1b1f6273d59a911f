// Package classifier resolves a merchant name to a spending category by
// scanning an ordered list of keyword rules.
package classifier

import (
	"strings"

	"masroof/internal/models"
)

// Result holds the resolved category hierarchy for a merchant. All fields
// are nil when no rule matched.
type Result struct {
	Classification *string
	MainCategory   *string
	SubCategory    *string
}

// Resolved reports whether a rule matched.
func (r Result) Resolved() bool {
	return r.Classification != nil
}

// Classify returns the category of the first rule whose keyword list
// contains a substring of merchant. Keywords are comma-separated and
// trimmed; matching is case-sensitive with no normalization. Rule order is
// authoritative: when two rules could match, the earlier one wins. The
// caller passes the current rule set, freshly read from the store, so rule
// updates are visible to the next classification immediately.
func Classify(merchant string, rules []models.CategoryRule) Result {
	if merchant == "" {
		return Result{}
	}

	for i := range rules {
		for _, keyword := range strings.Split(rules[i].MerchantKeywords, ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			if strings.Contains(merchant, keyword) {
				return Result{
					Classification: &rules[i].Classification,
					MainCategory:   &rules[i].MainCategory,
					SubCategory:    &rules[i].SubCategory,
				}
			}
		}
	}

	return Result{}
}
