package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes a field that was omitted from one that was sent as
// null or as a string. Set is true whenever the key was present in the JSON body.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Truthy reports whether the field carries a non-empty string.
func (o OptionalString) Truthy() bool {
	return o.Set && o.Valid && o.Value != ""
}

// Ptr returns the value as a nullable string: nil when null, otherwise a copy.
func (o OptionalString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// Some returns a present, non-null OptionalString.
func Some(v string) OptionalString {
	return OptionalString{Set: true, Valid: true, Value: v}
}

// Null returns a present OptionalString holding JSON null.
func Null() OptionalString {
	return OptionalString{Set: true}
}
