package postal

import (
	"maps"
	"regexp"
	"slices"
)

// Shared rule instances. Aliased country codes point at the same *Rule so a
// pattern fix for one code fixes every alias at once.
var (
	ruleFourDigits = match(`\d{4}`)                        // NO, AU, NZ, ZA
	ruleFiveDigits = match(`\d{5}`)                        // FR, DE, IT, RS, EE, HR, TR
	ruleSixDigits  = match(`\d{6}`)                        // SG, RO
	ruleThreePlus2 = match(`\d{3} ?\d{2}`)                 // CZ, SK
	ruleFivePlus4  = matchAnchored(`\d{5}(?:[- ]\d{4})?`)  // US, MX

	// Letter classes in the UK grammar deliberately exclude letters the Royal
	// Mail never assigns in those positions. GIR 0AA is a grandfathered code.
	// The canonicalizer re-inserts the outward/inward space when the input
	// arrived without one.
	ruleUnitedKingdom = &Rule{
		re:        regexp.MustCompile(`[A-PR-UWYZ0-9][A-HK-Y0-9][AEHMNPRTVXY0-9]?[ABEHMNPRVWXY0-9]? ?[0-9][ABD-HJLN-UW-Z]{2}|GIR 0AA`),
		canonical: gbCanonical,
	}
)

// rules maps a normalized country code to its extraction rule. A map literal
// keeps duplicate keys a compile error, which is how the historical
// double definition of DK is prevented from recurring here.
var rules = map[string]*Rule{
	"HU": match(`\b\d{4}\b`),

	"CZ": ruleThreePlus2,
	"SK": ruleThreePlus2,

	// DK historically carried two competing definitions (plain four digits
	// and a DK-prefixed variant); this is the documented superset of both.
	"DK": match(`(?:DK[- ]?)?\d{4}`),

	"NO": ruleFourDigits,
	"AU": ruleFourDigits,
	"NZ": ruleFourDigits,
	"ZA": ruleFourDigits,

	"PL": match(`\d{2}[- ]\d{3}`),
	"PT": match(`\d{4}[ -]\d{3}`),
	"AZ": match(`[A-Z]{2}[ -]?\d{4}`),

	"SG": ruleSixDigits,
	"RO": ruleSixDigits,

	"LT": match(`[A-Z]{2}[ -]?\d{5}|\d{5}`),
	"BR": match(`\d{5} ?\d{3}`),
	"NL": match(`[1-9]\d{3} ?[A-Z]{2}`),

	"FR": ruleFiveDigits,
	"DE": ruleFiveDigits,
	"IT": ruleFiveDigits,
	"RS": ruleFiveDigits,
	"EE": ruleFiveDigits,
	"HR": ruleFiveDigits,
	"TR": ruleFiveDigits,

	"IN": match(`\d{6}`),

	"GB": ruleUnitedKingdom,
	"UK": ruleUnitedKingdom,

	"CA": matchAnchored(`[ABCEGHJKLMNPRSTVXY][0-9][A-Z] *[0-9][A-Z][0-9]`),

	"US": ruleFivePlus4,
	"MX": ruleFivePlus4,

	"CH": match(`[1-9]\d{3}`),
}

// noPostcodeSystem lists countries with no postcode system at all. For these
// the only valid input is an empty one, which canonicalizes to "".
var noPostcodeSystem = map[string]struct{}{
	"IE": {},
}

// Lookup returns the extraction rule for a normalized country code. A missing
// rule is a normal outcome (unknown country), not an error.
func Lookup(countryCode string) (*Rule, bool) {
	r, ok := rules[countryCode]
	return r, ok
}

// HasPostcodeSystem reports whether the country uses postcodes at all.
// Unknown countries report true; they are handled as passthrough upstream.
func HasPostcodeSystem(countryCode string) bool {
	_, none := noPostcodeSystem[countryCode]
	return !none
}

// Countries returns every country code with a defined rule, sorted.
func Countries() []string {
	return slices.Sorted(maps.Keys(rules))
}
