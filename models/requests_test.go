package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantEmpty    bool
		wantIsString bool
		wantValue    string
	}{
		{name: "missing", body: `{}`, wantEmpty: true},
		{name: "string", body: `{"username":"alice"}`, wantIsString: true, wantValue: "alice"},
		{name: "empty string", body: `{"username":""}`, wantEmpty: true, wantIsString: true},
		{name: "null", body: `{"username":null}`, wantEmpty: true},
		{name: "false", body: `{"username":false}`, wantEmpty: true},
		{name: "true", body: `{"username":true}`},
		{name: "zero", body: `{"username":0}`, wantEmpty: true},
		{name: "number", body: `{"username":42}`},
		{name: "negative float", body: `{"username":-1.5}`},
		{name: "array", body: `{"username":[]}`},
		{name: "object", body: `{"username":{"a":1}}`},
		{name: "escaped string", body: `{"username":"a\"b"}`, wantIsString: true, wantValue: `a"b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req LoginRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantEmpty, req.Username.Empty())
			assert.Equal(t, tt.wantIsString, req.Username.IsString())
			assert.Equal(t, tt.wantValue, req.Username.String())
		})
	}
}

func TestStringField_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(RegisterRequest{
		Username: NewStringField("alice"),
		Email:    NewStringField("a@b.com"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","email":"a@b.com","password":null}`, string(body))
}

func TestRegisterRequest_RoundTrip(t *testing.T) {
	in := RegisterRequest{
		Username: NewStringField("alice"),
		Email:    NewStringField("a@b.com"),
		Password: NewStringField("longenough"),
	}

	body, err := json.Marshal(in)
	require.NoError(t, err)

	var out RegisterRequest
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, in, out)
}

func TestUpdateProfileRequest_IgnoresPassword(t *testing.T) {
	var req UpdateProfileRequest
	err := json.Unmarshal([]byte(`{"username":"bob","email":"b@c.io","password":"newpassword"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "bob", req.Username.String())
	assert.Equal(t, "b@c.io", req.Email.String())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
