package validators

import (
	"context"
	"regexp"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-service/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	MinPasswordLength = 8
	// bcrypt only looks at the first 72 bytes
	MaxPasswordBytes  = 72
	MaxUsernameLength = 50
	MaxEmailLength    = 255
)

// emailPattern rejects Unicode separators and the BOM as whitespace, not
// only the ASCII set matched by \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// UserValidator validates registration, login and profile update requests.
//
// Rules are checked in a fixed order and the first violation wins:
// presence of every selected field, then JSON types, then formats and
// lengths.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	selected, err := selectFields(fields, map[string]models.StringField{
		FieldUsername: request.Username,
		FieldEmail:    request.Email,
		FieldPassword: request.Password,
	})
	if err != nil {
		return err
	}

	return validateFields(selected, ErrRegisterFieldsRequired)
}

func (v *UserValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	selected, err := selectFields(fields, map[string]models.StringField{
		FieldUsername: request.Username,
		FieldPassword: request.Password,
	})
	if err != nil {
		return err
	}

	// no format or length rules on login
	return checkPresenceAndTypes(selected, ErrLoginFieldsRequired)
}

func (v *UserValidator) validateUpdateProfileRequest(_ context.Context, request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	selected, err := selectFields(fields, map[string]models.StringField{
		FieldUsername: request.Username,
		FieldEmail:    request.Email,
	})
	if err != nil {
		return err
	}

	return validateFields(selected, ErrProfileFieldsRequired)
}

type namedField struct {
	name  string
	field models.StringField
}

func selectFields(fields []string, available map[string]models.StringField) ([]namedField, error) {
	selected := make([]namedField, 0, len(fields))
	for _, name := range fields {
		field, ok := available[name]
		if !ok {
			return nil, ErrUnknownField
		}
		selected = append(selected, namedField{name: name, field: field})
	}

	return selected, nil
}

func checkPresenceAndTypes(fields []namedField, errRequired error) error {
	for _, f := range fields {
		if f.field.Empty() {
			return errRequired
		}
	}

	for _, f := range fields {
		if !f.field.IsString() {
			return ErrInvalidInputTypes
		}
	}

	return nil
}

func validateFields(fields []namedField, errRequired error) error {
	if err := checkPresenceAndTypes(fields, errRequired); err != nil {
		return err
	}

	for _, f := range fields {
		value := f.field.String()

		switch f.name {
		case FieldUsername:
			if utf8.RuneCountInString(value) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldEmail:
			if !emailPattern.MatchString(value) {
				return ErrInvalidEmailFormat
			}
			if utf8.RuneCountInString(value) > MaxEmailLength {
				return ErrEmailTooLong
			}
		case FieldPassword:
			if utf16Len(value) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(value) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		}
	}

	return nil
}

// utf16Len counts UTF-16 code units, so a character outside the BMP counts
// as two towards the password minimum.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
