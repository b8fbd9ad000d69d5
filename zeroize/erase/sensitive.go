package erase

import (
	"strings"
	"unicode"
)

// sensitiveTokens are the name fragments that classify a field as holding
// credential material. Matching is token-based after camelCase and
// snake_case normalization, so "APIKey", "api_key", and "apikey" all match.
var sensitiveTokens = map[string]bool{
	"password":     true,
	"passwd":       true,
	"passphrase":   true,
	"secret":       true,
	"token":        true,
	"key":          true,
	"apikey":       true,
	"accesstoken":  true,
	"refreshtoken": true,
	"privatekey":   true,
	"clientsecret": true,
	"credential":   true,
	"credentials":  true,
	"auth":         true,
	"salt":         true,
	"pin":          true,
	"seed":         true,
}

// Sensitive erases only the fields of the struct at target whose names
// classify as sensitive (password, token, apiKey, and similar), recursing
// into nested structs. Non-matching fields keep their values.
//
// This is for mixed records such as configuration holding both endpoints
// and credentials. When the whole record is secret, prefer Struct, whose
// default is to erase everything.
func Sensitive(target any, opts ...StructOption) error {
	return Struct(target, append(opts, sensitiveOnly())...)
}

// IsSensitiveName reports whether a field name classifies as sensitive.
// The check is case-insensitive and handles camelCase, PascalCase, and
// snake_case: "sessionToken", "PrivateKey", and "client_secret" all match.
func IsSensitiveName(name string) bool {
	return isSensitiveName(name)
}

func isSensitiveName(name string) bool {
	tokens := splitNameTokens(name)

	for i, token := range tokens {
		if sensitiveTokens[token] {
			return true
		}

		// Catch run-together pairs such as "apikey" split as "api"+"key"
		// in the source name ("APIKey" -> "api", "key").
		if i+1 < len(tokens) && sensitiveTokens[token+tokens[i+1]] {
			return true
		}
	}

	return false
}

// splitNameTokens lowercases name and splits it on case boundaries and
// non-alphanumeric separators: "sessionAPIKey" -> ["session", "api", "key"].
func splitNameTokens(name string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(name)

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()

			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]

			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			// Boundary before "T" in "sessionToken" and before "Key" in
			// "APIKey" (upper followed by lower after an upper run).
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next)) {
				flush()
			}
		}

		current.WriteRune(unicode.ToLower(r))
	}

	flush()

	return tokens
}
