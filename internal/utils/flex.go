package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/salestrack/sales-api/internal/patch"
)

// Os tipos Flex aceitam tanto o valor JSON nativo quanto sua forma em string,
// que é como chegam os campos de formulário (ver DecodeBody). Set indica se o
// campo veio no payload. Valores inválidos viram *json.UnmarshalTypeError,
// que o encoding/json completa com o nome do campo.

type FlexBool struct {
	Value bool
	Set   bool
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := patch.ToBool(raw)
	if err != nil {
		return typeError(raw, reflect.TypeOf(true))
	}
	f.Value, f.Set = v, true
	return nil
}

type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	if isNull(b) || bytes.Equal(b, []byte(`""`)) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := patch.ToInt(raw)
	if err != nil {
		return typeError(raw, reflect.TypeOf(0))
	}
	f.Value, f.Set = v, true
	return nil
}

type FlexFloat struct {
	Value float64
	Set   bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	if isNull(b) || bytes.Equal(b, []byte(`""`)) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := patch.ToFloat(raw)
	if err != nil {
		return typeError(raw, reflect.TypeOf(0.0))
	}
	f.Value, f.Set = v, true
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func typeError(raw interface{}, t reflect.Type) error {
	value := "number"
	switch raw.(type) {
	case string:
		value = "string"
	case bool:
		value = "bool"
	case []interface{}:
		value = "array"
	case map[string]interface{}:
		value = "object"
	}
	return &json.UnmarshalTypeError{Value: value, Type: t}
}
