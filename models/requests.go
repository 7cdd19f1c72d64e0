package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// fieldKind records which JSON type a request field arrived as.
type fieldKind uint8

const (
	kindMissing fieldKind = iota // absent from the body
	kindString                   // a JSON string
	kindFalsy                    // null, false or numeric zero
	kindOther                    // any other JSON value
)

// StringField is a request field that is expected to be a JSON string but
// remembers what was actually sent, so that a missing field and a field of
// the wrong type can be told apart during validation.
type StringField struct {
	Value string
	kind  fieldKind
}

// NewStringField returns a StringField that looks as if s was sent as a JSON
// string.
func NewStringField(s string) StringField {
	return StringField{Value: s, kind: kindString}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *StringField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = StringField{kind: kindOther}

	if len(b) == 0 {
		f.kind = kindMissing
		return nil
	}

	switch b[0] {
	case '"':
		if err := json.Unmarshal(b, &f.Value); err != nil {
			return err
		}
		f.kind = kindString
	case 'n', 'f':
		// null, false
		f.kind = kindFalsy
	case 't', '[', '{':
	default:
		n, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		if n == 0 {
			f.kind = kindFalsy
		}
	}

	return nil
}

// MarshalJSON implements [json.Marshaler]. Non-string values are written as null.
func (f StringField) MarshalJSON() ([]byte, error) {
	if f.kind != kindString {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Empty reports whether the field was absent, null, false, zero or the empty
// string.
func (f StringField) Empty() bool {
	switch f.kind {
	case kindMissing, kindFalsy:
		return true
	case kindString:
		return f.Value == ""
	default:
		return false
	}
}

// IsString reports whether the field arrived as a JSON string.
func (f StringField) IsString() bool {
	return f.kind == kindString
}

// String returns the string value, or "" for non-string fields.
func (f StringField) String() string {
	return f.Value
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username StringField `json:"username"`
	Email    StringField `json:"email"`
	Password StringField `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username StringField `json:"username"`
	Password StringField `json:"password"`
}

// UpdateProfileRequest is the body of PUT /user/profile. A password sent in
// the body is ignored.
type UpdateProfileRequest struct {
	Username StringField `json:"username"`
	Email    StringField `json:"email"`
}
