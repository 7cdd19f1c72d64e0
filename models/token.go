package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with the identity it carries.
//
// SignedString holds the compact serialized form (header.payload.signature)
// handed to the client after login. UserID is the parsed "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
