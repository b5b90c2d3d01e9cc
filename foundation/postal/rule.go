package postal

import (
	"regexp"
	"strings"
)

// Rule is a single-country extraction rule. It holds a compiled pattern and
// an optional canonicalizer applied to the matched text. Rules are immutable
// and shared freely across goroutines and aliased country codes.
type Rule struct {
	re        *regexp.Regexp
	canonical func(match string) string
}

// Extract applies the rule to input that has already been uppercased and
// trimmed by the resolver. It returns the canonical form of the first match,
// or false when the input contains no recognizable postcode.
func (r *Rule) Extract(normalized string) (string, bool) {
	loc := r.re.FindStringIndex(normalized)
	if loc == nil {
		return "", false
	}
	out := normalized[loc[0]:loc[1]]
	if r.canonical != nil {
		out = r.canonical(out)
	}
	return out, true
}

// match builds a rule that searches for the pattern anywhere in the input.
func match(pattern string) *Rule {
	return &Rule{re: regexp.MustCompile(pattern)}
}

// matchAnchored builds a rule that must match the whole trimmed input.
// Only CA, US and MX anchor; the split is inherited behavior and kept
// per country so existing callers see the same accepted inputs.
func matchAnchored(pattern string) *Rule {
	return &Rule{re: regexp.MustCompile(`^(?:` + pattern + `)$`)}
}

// gbCanonical rewrites a UK match into outward + single space + inward form,
// so SL41EG and SL4 1EG both canonicalize to SL4 1EG. The inward code is
// always the last three characters.
func gbCanonical(m string) string {
	m = strings.ReplaceAll(m, " ", "")
	return m[:len(m)-3] + " " + m[len(m)-3:]
}
