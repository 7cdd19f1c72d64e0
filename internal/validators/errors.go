package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Request validation errors. Their text is returned to clients as is.
var (
	ErrRegisterFieldsRequired = errors.New("Username, email, and password are required")
	ErrLoginFieldsRequired    = errors.New("Username and password are required")
	ErrProfileFieldsRequired  = errors.New("Username and email are required")
	ErrInvalidInputTypes      = errors.New("Invalid input types")
	ErrInvalidEmailFormat     = errors.New("Invalid email format")
	ErrPasswordTooShort       = errors.New("Password must be at least 8 characters long")
	ErrPasswordTooLong        = errors.New("Password must be at most 72 bytes long")
	ErrUsernameTooLong        = errors.New("Username must be at most 50 characters long")
	ErrEmailTooLong           = errors.New("Email must be at most 255 characters long")
)

var requestErrors = []error{
	ErrRegisterFieldsRequired,
	ErrLoginFieldsRequired,
	ErrProfileFieldsRequired,
	ErrInvalidInputTypes,
	ErrInvalidEmailFormat,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
	ErrUsernameTooLong,
	ErrEmailTooLong,
}

// ClientMessage returns the text of the request rule that err wraps.
// ok is false when err does not come from a request rule.
func ClientMessage(err error) (msg string, ok bool) {
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}
	return "", false
}
