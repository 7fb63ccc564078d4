package dto

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/cockroachdb/errors"
)

// restrictedObject is a JSON object that keeps its fields in their original
// order when re-marshalled.
type restrictedObject []restrictedField

type restrictedField struct {
	name  string
	value json.RawMessage
}

func (o restrictedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(field.name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(field.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Restrict narrows a serialized record to a subset of its JSON fields: the
// only list is applied first (empty means all fields), then the except list
// removes from what is left. Field order of the original object is kept.
func Restrict(record any, only, except []string) (json.RawMessage, error) {
	serialized, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	fields, err := decodeObjectFields(serialized)
	if err != nil {
		return nil, err
	}

	kept := make(restrictedObject, 0, len(fields))
	for _, field := range fields {
		if len(only) > 0 && !slices.Contains(only, field.name) {
			continue
		}
		if slices.Contains(except, field.name) {
			continue
		}
		kept = append(kept, field)
	}
	return json.Marshal(kept)
}

// RestrictList applies Restrict to every record independently.
func RestrictList[T any](records []T, only, except []string) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(records))
	for i, record := range records {
		restricted, err := Restrict(record, only, except)
		if err != nil {
			return nil, err
		}
		out[i] = restricted
	}
	return out, nil
}

func decodeObjectFields(serialized []byte) (restrictedObject, error) {
	decoder := json.NewDecoder(bytes.NewReader(serialized))

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("restrict: record does not serialize to a JSON object")
	}

	var fields restrictedObject
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		name, ok := token.(string)
		if !ok {
			return nil, errors.New("restrict: unexpected token in JSON object")
		}

		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, restrictedField{name: name, value: value})
	}
	return fields, nil
}
