package postal

import (
	"slices"
	"testing"
)

func TestRuleShapes(t *testing.T) {
	tests := []struct {
		country string
		in      string
		want    string
		ok      bool
	}{
		// HU: four digits, word-bounded.
		{"HU", "1051", "1051", true},
		{"HU", "H-1051", "1051", true},
		{"HU", "10512", "", false},

		// CZ/SK: three digits, optional space, two digits.
		{"CZ", "110 00", "110 00", true},
		{"CZ", "11000", "11000", true},
		{"SK", "811 01", "811 01", true},
		{"SK", "8110", "", false},

		// DK: superset rule, optional DK prefix with optional hyphen/space.
		{"DK", "2100", "2100", true},
		{"DK", "DK-2100", "DK-2100", true},
		{"DK", "DK 2100", "DK 2100", true},
		{"DK", "DK2100", "DK2100", true},
		{"DK", "210", "", false},

		// Plain four-digit block.
		{"NO", "0150", "0150", true},
		{"AU", "2000", "2000", true},
		{"NZ", "6011", "6011", true},
		{"ZA", "8001", "8001", true},
		{"NO", "15", "", false},

		// PL: separator required.
		{"PL", "00-950", "00-950", true},
		{"PL", "00 950", "00 950", true},
		{"PL", "00950", "", false},

		// PT: separator required, space or hyphen.
		{"PT", "1000-205", "1000-205", true},
		{"PT", "1000 205", "1000 205", true},
		{"PT", "1000205", "", false},

		// AZ: two letters, optional separator, four digits.
		{"AZ", "AZ 1000", "AZ 1000", true},
		{"AZ", "AZ-1000", "AZ-1000", true},
		{"AZ", "AZ1000", "AZ1000", true},
		{"AZ", "1000", "", false},

		// SG/RO: six digits.
		{"SG", "238823", "238823", true},
		{"RO", "010011", "010011", true},
		{"SG", "23882", "", false},

		// LT: prefixed form tried first, plain five digits also accepted.
		{"LT", "LT-01100", "LT-01100", true},
		{"LT", "LT 01100", "LT 01100", true},
		{"LT", "01100", "01100", true},
		{"LT", "0110", "", false},

		// BR: five digits, optional space, three digits. Hyphen was never
		// part of the inherited shape.
		{"BR", "01310 100", "01310 100", true},
		{"BR", "01310100", "01310100", true},
		{"BR", "01310-100", "", false},

		// NL: leading digit 1-9.
		{"NL", "1012 AB", "1012 AB", true},
		{"NL", "1012AB", "1012AB", true},
		{"NL", "0012 AB", "", false},

		// Shared five-digit block.
		{"FR", "75008", "75008", true},
		{"DE", "10115", "10115", true},
		{"IT", "00184", "00184", true},
		{"RS", "11000", "11000", true},
		{"EE", "10111", "10111", true},
		{"HR", "10000", "10000", true},
		{"TR", "06100", "06100", true},
		{"FR", "7500", "", false},

		// IN: six digits.
		{"IN", "110001", "110001", true},
		{"IN", "1100", "", false},

		// GB: full grammar, space re-inserted before the inward code.
		{"GB", "SL4 1EG", "SL4 1EG", true},
		{"GB", "SL41EG", "SL4 1EG", true},
		{"GB", "EC1A 1BB", "EC1A 1BB", true},
		{"GB", "GIR 0AA", "GIR 0AA", true},
		{"GB", "12345", "", false},
		{"GB", "QQQQQ", "", false},

		// CA: anchored over the whole trimmed input.
		{"CA", "K1A 0B1", "K1A 0B1", true},
		{"CA", "K1A0B1", "K1A0B1", true},
		{"CA", "X K1A 0B1", "", false},
		{"CA", "D1A 0B1", "", false},

		// US/MX: anchored, four-digit extension needs its own separator.
		{"US", "20037", "20037", true},
		{"US", "20037-8001", "20037-8001", true},
		{"US", "20037 8001", "20037 8001", true},
		{"US", "200378001", "", false},
		{"US", "Z20037", "", false},
		{"MX", "01000", "01000", true},

		// CH: four digits, leading digit 1-9.
		{"CH", "8000", "8000", true},
		{"CH", "CH-8000", "8000", true},
		{"CH", "0800", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.in, func(t *testing.T) {
			rule, ok := Lookup(tt.country)
			if !ok {
				t.Fatalf("Lookup(%q): no rule", tt.country)
			}
			got, ok := rule.Extract(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Extract(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAliasesShareRuleInstance(t *testing.T) {
	aliases := [][]string{
		{"GB", "UK"},
		{"SG", "RO"},
		{"CZ", "SK"},
		{"US", "MX"},
		{"NO", "AU", "NZ", "ZA"},
		{"FR", "DE", "IT", "RS", "EE", "HR", "TR"},
	}

	for _, group := range aliases {
		first, ok := Lookup(group[0])
		if !ok {
			t.Fatalf("Lookup(%q): no rule", group[0])
		}
		for _, cc := range group[1:] {
			r, ok := Lookup(cc)
			if !ok {
				t.Fatalf("Lookup(%q): no rule", cc)
			}
			if r != first {
				t.Fatalf("%s and %s should share one rule instance", group[0], cc)
			}
		}
	}
}

func TestLookupUnknownCountry(t *testing.T) {
	if _, ok := Lookup("XX"); ok {
		t.Fatal("Lookup(XX) should report no rule")
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("Lookup of empty code should report no rule")
	}
}

func TestCountriesSortedAndComplete(t *testing.T) {
	got := Countries()
	if !slices.IsSorted(got) {
		t.Fatalf("Countries() not sorted: %v", got)
	}
	for _, cc := range []string{"AU", "AZ", "BR", "CA", "CH", "CZ", "DE", "DK",
		"EE", "FR", "GB", "HR", "HU", "IN", "IT", "LT", "MX", "NL", "NO", "NZ",
		"PL", "PT", "RO", "RS", "SG", "SK", "TR", "UK", "US", "ZA"} {
		if !slices.Contains(got, cc) {
			t.Fatalf("Countries() missing %s", cc)
		}
	}
}

func TestHasPostcodeSystem(t *testing.T) {
	if HasPostcodeSystem("IE") {
		t.Fatal("IE has no postcode system")
	}
	if !HasPostcodeSystem("GB") || !HasPostcodeSystem("XX") {
		t.Fatal("every other code reports a postcode system")
	}
}
