package http

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dvrs00/teste-de-software/pkg/apperr"

	"github.com/goccy/go-json"
)

// fieldTarget is where one JSON property is decoded, and the message used
// when its value has the wrong shape.
type fieldTarget struct {
	dest    any
	invalid string
}

// decodeStrict decodes a JSON object property by property. Properties not
// listed in targets are rejected, and every bad property is reported.
// An empty body decodes as {}.
func decodeStrict(body []byte, targets map[string]fieldTarget) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperr.BadRequest("request body must be a JSON object.").WithError(err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []apperr.FieldError
	for _, key := range keys {
		target, ok := targets[key]
		if !ok {
			fields = append(fields, apperr.FieldError{
				Field:   key,
				Message: fmt.Sprintf("property %s should not exist.", key),
			})
			continue
		}
		if err := json.Unmarshal(raw[key], target.dest); err != nil {
			fields = append(fields, apperr.FieldError{Field: key, Message: target.invalid})
		}
	}

	if len(fields) > 0 {
		return apperr.ValidationFailed(fields...)
	}
	return nil
}
