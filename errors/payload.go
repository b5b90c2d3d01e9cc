package errors

import "google.golang.org/protobuf/types/known/structpb"

// Payload renders the response as a protobuf Struct, for transports and audit
// sinks that carry free-form proto values rather than errdetails.
func (e ErrorResponse) Payload() (*structpb.Struct, error) {
	m := map[string]any{
		"code":    e.Code.String(),
		"message": e.Message,
	}
	if e.Reason != "" {
		m["reason"] = string(e.Reason)
	}
	if len(e.Details) > 0 {
		details := make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			details[k] = v
		}
		m["details"] = details
	}
	return structpb.NewStruct(m)
}
