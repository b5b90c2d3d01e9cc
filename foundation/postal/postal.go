// Package postal normalizes and validates postal codes per country.
//
// The rule table is built once at init and never mutated, so every entry
// point is safe for concurrent use. Validation is format-only: a postcode is
// accepted when it matches the country's recognized shape, with no check
// that the code exists in a real addressing database.
package postal

import (
	"errors"
	"strings"

	"github.com/vortex-fintech/postal-lib/foundation/errx"
	"github.com/vortex-fintech/postal-lib/foundation/geo"
)

var (
	// ErrInvalidPostcode means the input does not match the recognized shape
	// for its country. It is a data-quality outcome, not a usage error.
	ErrInvalidPostcode = errors.New("invalid postcode")

	// ErrMissingArgument means a required value was neither supplied nor
	// resolvable from a source. It is a usage error and is never swallowed
	// by Format.
	ErrMissingArgument = errors.New("missing argument")
)

// Outcome tags the result of resolving one input against the rule table.
type Outcome int

const (
	// OutcomeFormatted: the input matched its country's rule; the canonical
	// form accompanies it.
	OutcomeFormatted Outcome = iota

	// OutcomeInvalid: no recognizable postcode for that country.
	OutcomeInvalid

	// OutcomeNoPostcodeSystem: the country has no postcodes; the canonical
	// form is the empty string and only empty input is acceptable.
	OutcomeNoPostcodeSystem

	// OutcomeUnknownCountry: no rule is defined; the trimmed input passes
	// through unchanged and is always considered valid.
	OutcomeUnknownCountry
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFormatted:
		return "formatted"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNoPostcodeSystem:
		return "no_postcode_system"
	case OutcomeUnknownCountry:
		return "unknown_country"
	default:
		return "unknown"
	}
}

// Resolve normalizes the country code, dispatches to its rule and reports the
// tagged outcome. The returned string is meaningful for every outcome except
// OutcomeInvalid: the canonical match, "" for countries without postcodes, or
// the trimmed passthrough for unknown countries.
func Resolve(countryCode, input string) (string, Outcome) {
	cc, _ := geo.NormalizeISO2(countryCode)

	if cc != "" && !HasPostcodeSystem(cc) {
		if strings.TrimSpace(input) == "" {
			return "", OutcomeNoPostcodeSystem
		}
		return "", OutcomeInvalid
	}

	rule, ok := Lookup(cc)
	if !ok {
		return strings.TrimSpace(input), OutcomeUnknownCountry
	}

	// Uppercase and trim exactly once here; rules never normalize themselves.
	normalized := strings.ToUpper(strings.TrimSpace(input))
	out, ok := rule.Extract(normalized)
	if !ok {
		return "", OutcomeInvalid
	}
	return out, OutcomeFormatted
}

// Format returns the canonical form of input for the given country.
//
// Countries without a postcode system format the empty input to "" and reject
// everything else. Unknown countries pass the trimmed input through
// unchanged. A non-matching input yields ErrInvalidPostcode; an empty country
// code yields ErrMissingArgument.
func Format(countryCode, input string) (string, error) {
	if strings.TrimSpace(countryCode) == "" {
		return "", errx.Argument(ErrMissingArgument, "country code")
	}

	out, outcome := Resolve(countryCode, input)
	if outcome == OutcomeInvalid {
		return "", errx.Rule(ErrInvalidPostcode, strings.TrimSpace(countryCode))
	}
	return out, nil
}

// Validate is the boolean-style sibling of Format: every negative outcome,
// including a missing argument, collapses to false. Callers that need to tell
// the reasons apart should use Format.
func Validate(countryCode, input string) (string, bool) {
	out, err := Format(countryCode, input)
	if err != nil {
		return "", false
	}
	return out, true
}
