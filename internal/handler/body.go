package handler

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"

	"github.com/MKhiriev/go-crud-api/internal/service"
	"github.com/MKhiriev/go-crud-api/models"
)

// jsonObject is a parsed request body: top-level keys with undecoded values.
type jsonObject map[string]json.RawMessage

// parseBody decodes a request body. An empty body is an empty object; any
// other non-object payload is rejected.
func parseBody(body []byte) (jsonObject, error) {
	if len(body) == 0 {
		return jsonObject{}, nil
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errInvalidJSON
	}

	obj := jsonObject{}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, errInvalidJSON
	}

	return obj, nil
}

// bind decodes the keys accepted by target. Unknown keys are ignored; a
// value of the wrong type yields an InvalidFieldError naming the first such
// key in lexical order.
func (o jsonObject) bind(target models.FieldBinder) error {
	fields := target.Fields()
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		raw, ok := o[name]
		if !ok {
			continue
		}
		if err := fields[name].UnmarshalJSON(raw); err != nil {
			return service.NewInvalidFieldError(name)
		}
	}

	return nil
}
