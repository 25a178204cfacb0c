package recommend

import "shopReco/domain"

// Reason thresholds. Fixed constants; the rule order below is part of
// the contract because several rules can match at once.
const (
	contentStrongThreshold       = 0.6
	contentModerateThreshold     = 0.3
	popularityHighThreshold      = 0.7
	popularityModerateThreshold  = 0.4
	reasonPopularFallback        = "popular fallback"
	reasonRelatedItem            = "related item"
)

type reasonInput struct {
	anchor          domain.Product
	candidate       domain.Product
	contentScore    float64
	popularityScore float64
}

type reasonRule struct {
	match func(in reasonInput) bool
	text  string
}

// Evaluated top to bottom, first match wins.
var reasonRules = []reasonRule{
	{
		match: func(in reasonInput) bool {
			return in.anchor.Brand == in.candidate.Brand && in.contentScore >= contentStrongThreshold
		},
		text: "strong content match & same brand",
	},
	{
		match: func(in reasonInput) bool {
			return in.contentScore >= contentStrongThreshold
		},
		text: "high text similarity",
	},
	{
		match: func(in reasonInput) bool {
			return in.anchor.Category == in.candidate.Category && in.popularityScore >= popularityModerateThreshold
		},
		text: "same category & moderate popularity",
	},
	{
		match: func(in reasonInput) bool {
			return in.contentScore >= contentModerateThreshold
		},
		text: "moderate text similarity",
	},
	{
		match: func(in reasonInput) bool {
			return in.popularityScore >= popularityHighThreshold
		},
		text: "popular item",
	},
}

// Explain picks the first matching rule, falling back to a generic
// label when nothing applies.
func Explain(anchor, candidate domain.Product, contentScore, popularityScore float64) string {
	in := reasonInput{
		anchor:          anchor,
		candidate:       candidate,
		contentScore:    contentScore,
		popularityScore: popularityScore,
	}

	for _, rule := range reasonRules {
		if rule.match(in) {
			return rule.text
		}
	}
	return reasonRelatedItem
}
