package postal

import "github.com/vortex-fintech/postal-lib/foundation/errx"

// Capability interfaces for value objects that carry address data. A source
// opts in by implementing the accessors it naturally has; nothing here is
// probed dynamically beyond plain type assertions.
type (
	CountryCodeProvider interface{ CountryCode() string }

	PostcodeProvider interface{ Postcode() string }
	PostCodeProvider interface{ PostCode() string }
	ZipcodeProvider  interface{ Zipcode() string }
	ZipCodeProvider  interface{ ZipCode() string }
	ZipProvider      interface{ Zip() string }
)

// resolvePostcode tries the postcode accessors in fixed priority order:
// Postcode, PostCode, Zipcode, ZipCode, Zip. The first implemented accessor
// wins even when it returns an empty string, mirroring how an existing field
// with a blank value is still the field the caller meant.
func resolvePostcode(src any) (string, bool) {
	switch p := src.(type) {
	case PostcodeProvider:
		return p.Postcode(), true
	case PostCodeProvider:
		return p.PostCode(), true
	case ZipcodeProvider:
		return p.Zipcode(), true
	case ZipCodeProvider:
		return p.ZipCode(), true
	case ZipProvider:
		return p.Zip(), true
	default:
		return "", false
	}
}

func resolveCountryCode(src any) (string, bool) {
	p, ok := src.(CountryCodeProvider)
	if !ok {
		return "", false
	}
	return p.CountryCode(), true
}

// FormatSource resolves both the country code and the postcode from src and
// formats them. A source that exposes neither accessor fails with
// ErrMissingArgument immediately; that is a programmer error, not bad data.
func FormatSource(src any) (string, error) {
	cc, ok := resolveCountryCode(src)
	if !ok {
		return "", errx.Argument(ErrMissingArgument, "source has no country code accessor")
	}
	in, ok := resolvePostcode(src)
	if !ok {
		return "", errx.Argument(ErrMissingArgument, "source has no postcode accessor")
	}
	return Format(cc, in)
}

// FormatSourceInput formats an explicit postcode against the country code
// resolved from src. This is the common case of validating candidate input
// for an address object that already knows its country.
func FormatSourceInput(src any, input string) (string, error) {
	cc, ok := resolveCountryCode(src)
	if !ok {
		return "", errx.Argument(ErrMissingArgument, "source has no country code accessor")
	}
	return Format(cc, input)
}

// ValidateSource is FormatSource with every negative outcome, missing
// accessors included, collapsed to false.
func ValidateSource(src any) (string, bool) {
	out, err := FormatSource(src)
	if err != nil {
		return "", false
	}
	return out, true
}

// ValidateSourceInput is FormatSourceInput with negatives collapsed to false.
func ValidateSourceInput(src any, input string) (string, bool) {
	out, err := FormatSourceInput(src, input)
	if err != nil {
		return "", false
	}
	return out, true
}
