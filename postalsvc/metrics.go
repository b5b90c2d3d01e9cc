package postalsvc

import "time"

// Metrics receives one result per call plus its duration. Result labels are
// the postal.Outcome strings, or ResultMissingArgument for usage errors.
type Metrics interface {
	IncResult(countryCode, result string)
	ObserveDuration(d time.Duration)
}

// ResultMissingArgument labels calls rejected before any table lookup.
const ResultMissingArgument = "missing_argument"
