// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the header is present but holds only
	// whitespace or a bare "Bearer" scheme.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// errInvalidJSON is reported when a request body cannot be decoded.
var errInvalidJSON = errors.New("invalid JSON was passed")

// errBodyTooLarge is reported when a request body exceeds the configured limit.
var errBodyTooLarge = errors.New("request entity too large")

// Messages returned to clients in the "message" field.
const (
	msgRegistered       = "User registered successfully"
	msgLoggedIn         = "Login successful"
	msgDuplicate        = "Username or email already exists"
	msgInvalidJSON      = "Invalid JSON was passed"
	msgInvalidData      = "Invalid input data"
	msgBodyTooLarge     = "Request entity too large"
	msgNoToken          = "No token provided"
	msgInvalidToken     = "Invalid or expired token"
	msgInvalidCreds     = "Invalid credentials"
	msgUserNotFound     = "User not found"
	msgTooManyRequests  = "Too many requests, please try again later."
	msgNotFound         = "Not found"
	msgRegisterFailed   = "Error registering user"
	msgLoginFailed      = "Error logging in"
	msgGetProfileFailed = "Error fetching user profile"
	msgUpdateFailed     = "Error updating user profile"
	msgStatusOK         = "ok"
)
