package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"postcode":  "invalid_postcode",
	"email":     "invalid_email",
	"e164":      "invalid_phone",
	"uuid4":     "invalid_uuid",
	"uuid":      "invalid_uuid",
	"url":       "invalid_url",
	"eqfield":   "field_mismatch",
	"nefield":   "field_should_differ",
	"max":       "too_long",
	"min":       "too_short",
	"gt":        "too_small",
	"lt":        "too_large",
	"len":       "invalid_length",
	"oneof":     "invalid_choice",
	"alpha":     "only_letters_allowed",
	"alphanum":  "only_letters_and_digits_allowed",
	"numeric":   "only_numbers_allowed",
	"boolean":   "invalid_boolean",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
