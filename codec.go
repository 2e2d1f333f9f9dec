package newtype

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// DecodeJSON unmarshals data into the base type and runs the full
// construction pipeline on the result, so decoded values are validated
// exactly like directly constructed ones. Extra args reach the hooks
// unchanged.
func (t *Type[B]) DecodeJSON(data []byte, args ...any) (Instance[B], error) {
	var raw B
	if err := json.Unmarshal(data, &raw); err != nil {
		return Instance[B]{}, err
	}
	return t.construct(raw, args)
}

// DecodeYAML is DecodeJSON for YAML documents.
func (t *Type[B]) DecodeYAML(data []byte, args ...any) (Instance[B], error) {
	var raw B
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Instance[B]{}, err
	}
	return t.construct(raw, args)
}

// MarshalJSON delegates to the underlying base value.
func (i Instance[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

// MarshalYAML delegates to the underlying base value.
func (i Instance[B]) MarshalYAML() (any, error) {
	return i.value, nil
}
