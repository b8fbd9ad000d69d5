package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSensitiveName(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		expected  bool
	}{
		{name: "password lowercase", fieldName: "password", expected: true},
		{name: "password exported", fieldName: "Password", expected: true},
		{name: "camelCase token", fieldName: "sessionToken", expected: true},
		{name: "PascalCase key", fieldName: "PrivateKey", expected: true},
		{name: "acronym run", fieldName: "APIKey", expected: true},
		{name: "snake_case", fieldName: "client_secret", expected: true},
		{name: "run together", fieldName: "apikey", expected: true},
		{name: "run together access token", fieldName: "accesstoken", expected: true},
		{name: "run together refresh token", fieldName: "refreshtoken", expected: true},
		{name: "run together private key", fieldName: "privatekey", expected: true},
		{name: "run together client secret", fieldName: "clientsecret", expected: true},
		{name: "passphrase", fieldName: "Passphrase", expected: true},
		{name: "credentials", fieldName: "dbCredentials", expected: true},
		{name: "salt", fieldName: "PasswordSalt", expected: true},
		{name: "pin", fieldName: "CardPIN", expected: true},
		{name: "plain host", fieldName: "Host", expected: false},
		{name: "plain port", fieldName: "Port", expected: false},
		{name: "timeout", fieldName: "ReadTimeout", expected: false},
		{name: "keyboard is one token", fieldName: "keyboard", expected: false},
		{name: "monkey is one token", fieldName: "monkey", expected: false},
		{name: "empty", fieldName: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSensitiveName(tt.fieldName),
				"IsSensitiveName(%q)", tt.fieldName)
		})
	}
}

func TestSensitive(t *testing.T) {
	type database struct {
		Host     string
		Port     int
		Password []byte
	}

	type config struct {
		Endpoint string
		APIKey   []byte
		Retries  int
		DB       database
	}

	cfg := &config{
		Endpoint: "https://api.example.com",
		APIKey:   []byte("ak-123"),
		Retries:  5,
		DB: database{
			Host:     "db.internal",
			Port:     5432,
			Password: []byte("hunter2"),
		},
	}

	apiKeyAlias := cfg.APIKey
	passwordAlias := cfg.DB.Password

	require.NoError(t, Sensitive(cfg))

	// Sensitive fields wiped, at the top level and nested.
	assert.Equal(t, make([]byte, 6), apiKeyAlias)
	assert.Equal(t, make([]byte, 7), passwordAlias)

	// Everything else keeps its value.
	assert.Equal(t, "https://api.example.com", cfg.Endpoint)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestSensitiveAggregateField(t *testing.T) {
	type login struct {
		User string
		Pass []byte
	}

	type config struct {
		Endpoint       string
		DBCredentials  login
		OldCredentials []login
	}

	require.True(t, IsSensitiveName("DBCredentials"))
	require.True(t, IsSensitiveName("OldCredentials"))

	cfg := &config{
		Endpoint:      "https://api.example.com",
		DBCredentials: login{User: "alice", Pass: []byte("hunter2")},
		OldCredentials: []login{
			{User: "bob", Pass: []byte("swordfish")},
		},
	}

	passAlias := cfg.DBCredentials.Pass
	oldAlias := cfg.OldCredentials[0].Pass

	require.NoError(t, Sensitive(cfg))

	// A sensitive-named aggregate is erased in full, not filtered by the
	// names of its own subfields.
	assert.Empty(t, cfg.DBCredentials.User)
	assert.Equal(t, make([]byte, 7), passAlias)

	assert.Len(t, cfg.OldCredentials, 1)
	assert.Empty(t, cfg.OldCredentials[0].User)
	assert.Equal(t, make([]byte, 9), oldAlias)

	assert.Equal(t, "https://api.example.com", cfg.Endpoint)
}

func TestSensitiveMisuse(t *testing.T) {
	assert.ErrorIs(t, Sensitive("not a struct"), ErrNotStructPointer)
}
